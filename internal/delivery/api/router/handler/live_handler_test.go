package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ecospot/config"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	mockUsecase "ecospot/internal/mocks/usecase"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSubscription struct {
	once sync.Once
	done chan struct{}
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{done: make(chan struct{})}
}

func (s *fakeSubscription) Cancel()               { s.once.Do(func() { close(s.done) }) }
func (s *fakeSubscription) Done() <-chan struct{} { return s.done }
func (s *fakeSubscription) Err() error            { return nil }

func startLiveServer(t *testing.T) (*httptest.Server, *mockUsecase.MockLiveUsecase) {
	liveUC := mockUsecase.NewMockLiveUsecase(t)
	h := NewLiveHandler(LiveHandlerParams{LiveUC: liveUC, Config: &config.Config{}, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/live/spots/:id", h.WatchSpot)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return srv, liveUC
}

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func TestLiveHandler_WatchSpot_StreamsSnapshots(t *testing.T) {
	srv, liveUC := startLiveServer(t)
	spotID := uuid.New()
	sub := newFakeSubscription()

	liveUC.EXPECT().WatchSpot(mock.Anything, spotID, mock.Anything).
		RunAndReturn(func(ctx context.Context, id uuid.UUID, consumer func(usecase.Snapshot[entity.RecyclingSpot])) (usecase.Subscription, error) {
			consumer(usecase.Snapshot[entity.RecyclingSpot]{Topic: "spot", Seq: 1, Data: entity.RecyclingSpot{ID: id, Name: "Bin"}})

			return sub, nil
		})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/live/spots/"+spotID.String()), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame struct {
		Type string `json:"type"`
		Seq  uint64 `json:"seq"`
		Data struct {
			ID   uuid.UUID `json:"id"`
			Name string    `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&frame))

	assert.Equal(t, frameSnapshot, frame.Type)
	assert.Equal(t, uint64(1), frame.Seq)
	assert.Equal(t, spotID, frame.Data.ID)
	assert.Equal(t, "Bin", frame.Data.Name)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not cancelled after the client left")
	}
}

func TestLiveHandler_WatchSpot_NotFoundBeforeUpgrade(t *testing.T) {
	srv, liveUC := startLiveServer(t)
	spotID := uuid.New()

	liveUC.EXPECT().WatchSpot(mock.Anything, spotID, mock.Anything).Return(nil, domainerrors.ErrSpotNotFound)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/live/spots/"+spotID.String()), nil)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLiveSession_Offer_KeepsNewest(t *testing.T) {
	sess := newLiveSession()

	sess.offer(liveFrame{Seq: 1})
	sess.offer(liveFrame{Seq: 2})
	sess.offer(liveFrame{Seq: 3})

	assert.Equal(t, uint64(3), (<-sess.frames).Seq)
	assert.Empty(t, sess.frames)
}

func TestAllowOrigin(t *testing.T) {
	check := allowOrigin([]string{"https://app.example.com"})
	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/live/spots", nil)

	assert.True(t, check(req))

	req.Header.Set("Origin", "https://app.example.com")
	assert.True(t, check(req))

	req.Header.Set("Origin", "http://api.example.com")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(req))
}
