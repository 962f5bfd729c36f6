package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"ecospot/config"
	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/entity"
	"ecospot/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	liveWriteWait      = 10 * time.Second
	livePongWait       = 60 * time.Second
	livePingPeriod     = (livePongWait * 9) / 10
	liveMaxMessageSize = 512

	frameSnapshot = "snapshot"
)

// LiveHandlerParams holds dependencies for LiveHandler, injected by Fx.
type LiveHandlerParams struct {
	fx.In

	LiveUC usecase.LiveUsecase
	Config *config.Config
	Logger *slog.Logger
}

// LiveHandler streams snapshots of spots, comments and ratings over WebSocket.
type LiveHandler struct {
	liveUC   usecase.LiveUsecase
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewLiveHandler is the constructor for LiveHandler.
func NewLiveHandler(params LiveHandlerParams) *LiveHandler {
	return &LiveHandler{
		liveUC: params.LiveUC,
		logger: params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     allowOrigin(params.Config.HTTP.AllowOrigins),
		},
	}
}

// allowOrigin accepts same-host requests, clients without an Origin header and the configured origins.
func allowOrigin(origins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || slices.Contains(origins, "*") || slices.Contains(origins, origin) {
			return true
		}
		u, err := url.Parse(origin)

		return err == nil && u.Host == r.Host
	}
}

type liveFrame struct {
	Type  string    `json:"type"`
	Topic string    `json:"topic"`
	Seq   uint64    `json:"seq"`
	At    time.Time `json:"at"`
	Data  any       `json:"data"`
}

// liveSession holds at most one pending frame. A newer snapshot replaces an unsent one.
type liveSession struct {
	frames chan liveFrame
}

func newLiveSession() *liveSession {
	return &liveSession{frames: make(chan liveFrame, 1)}
}

// offer is called only from the subscription goroutine.
func (s *liveSession) offer(frame liveFrame) {
	select {
	case s.frames <- frame:
		return
	default:
	}
	select {
	case <-s.frames:
	default:
	}
	s.frames <- frame
}

func consumeInto[T any](sess *liveSession, toData func(T) any) func(usecase.Snapshot[T]) {
	return func(snap usecase.Snapshot[T]) {
		sess.offer(liveFrame{Type: frameSnapshot, Topic: snap.Topic, Seq: snap.Seq, At: snap.At, Data: toData(snap.Data)})
	}
}

func spotsData(spots []entity.RecyclingSpot) any {
	result := make([]*spotResponse, len(spots))
	for i := range spots {
		result[i] = toSpotResponse(&spots[i])
	}

	return result
}

func spotData(spot entity.RecyclingSpot) any {
	return toSpotResponse(&spot)
}

func commentsData(comments []entity.Comment) any {
	result := make([]*commentResponse, len(comments))
	for i := range comments {
		result[i] = toCommentResponse(&comments[i])
	}

	return result
}

func ratingData(value int) any {
	return map[string]int{"rating": value}
}

// WatchSpots streams the filtered spot list.
func (h *LiveHandler) WatchSpots(c echo.Context) error {
	input, err := parseListSpots(c)
	if err != nil {
		return err
	}

	return h.stream(c, func(ctx context.Context, sess *liveSession) (usecase.Subscription, error) {
		return h.liveUC.WatchSpots(ctx, input, consumeInto(sess, spotsData))
	})
}

// WatchSpot streams a single spot.
func (h *LiveHandler) WatchSpot(c echo.Context) error {
	spotID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	return h.stream(c, func(ctx context.Context, sess *liveSession) (usecase.Subscription, error) {
		return h.liveUC.WatchSpot(ctx, spotID, consumeInto(sess, spotData))
	})
}

// WatchComments streams the comments of a spot.
func (h *LiveHandler) WatchComments(c echo.Context) error {
	spotID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	return h.stream(c, func(ctx context.Context, sess *liveSession) (usecase.Subscription, error) {
		return h.liveUC.WatchComments(ctx, spotID, consumeInto(sess, commentsData))
	})
}

// WatchMyRating streams the current user's rating of a spot.
func (h *LiveHandler) WatchMyRating(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	spotID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	return h.stream(c, func(ctx context.Context, sess *liveSession) (usecase.Subscription, error) {
		return h.liveUC.WatchUserRating(ctx, userID, spotID, consumeInto(sess, ratingData))
	})
}

// stream subscribes before the upgrade so lookup errors still reach the client as HTTP errors.
func (h *LiveHandler) stream(c echo.Context, subscribe func(context.Context, *liveSession) (usecase.Subscription, error)) error {
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	sess := newLiveSession()
	sub, err := subscribe(ctx, sess)
	if err != nil {
		return errors.WithStack(err)
	}
	defer sub.Cancel()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already replied.
		h.log(ctx).Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	go h.readPump(conn, cancel)
	h.writePump(ctx, conn, sess, sub)

	return nil
}

// readPump discards client messages and cancels the stream once the peer goes away.
func (h *LiveHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(liveMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("WebSocket read ended", slog.Any("error", err))
			}

			return
		}
	}
}

func (h *LiveHandler) writePump(ctx context.Context, conn *websocket.Conn, sess *liveSession, sub usecase.Subscription) {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame := <-sess.frames:
			if err := writeFrame(conn, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-sub.Done():
			select {
			case frame := <-sess.frames:
				if err := writeFrame(conn, frame); err != nil {
					return
				}
			default:
			}
			code, text := websocket.CloseNormalClosure, ""
			if err := sub.Err(); err != nil {
				h.log(ctx).Warn("Live feed stopped", slog.Any("error", err))
				code, text = websocket.CloseTryAgainLater, "feed stopped"
			}
			writeClose(conn, code, text)

			return
		case <-ctx.Done():
			writeClose(conn, websocket.CloseGoingAway, "")

			return
		}
	}
}

func writeFrame(conn *websocket.Conn, frame liveFrame) error {
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))

	return conn.WriteJSON(frame)
}

func writeClose(conn *websocket.Conn, code int, text string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(liveWriteWait))
}

func (h *LiveHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}
