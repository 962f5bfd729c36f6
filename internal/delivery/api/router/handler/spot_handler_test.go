package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	mockUsecase "ecospot/internal/mocks/usecase"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type spotHandlerFixtures struct {
	e         *echo.Echo
	spotUC    *mockUsecase.MockSpotUsecase
	ratingUC  *mockUsecase.MockRatingUsecase
	commentUC *mockUsecase.MockCommentUsecase
	userID    uuid.UUID
}

func createTestSpotRoutes(t *testing.T) spotHandlerFixtures {
	spotUC := mockUsecase.NewMockSpotUsecase(t)
	ratingUC := mockUsecase.NewMockRatingUsecase(t)
	commentUC := mockUsecase.NewMockCommentUsecase(t)
	h := NewSpotHandler(SpotHandlerParams{SpotUC: spotUC, RatingUC: ratingUC, CommentUC: commentUC, Logger: newDiscardLogger()})
	userID := uuid.New()

	e := newTestEcho()
	g := e.Group("/spots", asUser(userID))
	g.POST("", h.CreateSpot)
	g.GET("", h.ListSpots)
	g.GET("/:id", h.GetSpot)
	g.GET("/:id/qr", h.SpotQRCode)
	g.PUT("/:id/rating", h.RateSpot)
	g.POST("/:id/comments", h.AddComment)

	return spotHandlerFixtures{e: e, spotUC: spotUC, ratingUC: ratingUC, commentUC: commentUC, userID: userID}
}

func TestSpotHandler_CreateSpot_Success(t *testing.T) {
	fx := createTestSpotRoutes(t)
	spotID := uuid.New()

	fx.spotUC.EXPECT().
		CreateSpot(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.CreateSpotInput) bool {
			return in.Name == "Glass bank" && in.Location == entity.Location{Lat: 52.2, Lng: 21} &&
				assert.ObjectsAreEqual(entity.WasteTypes{entity.WasteTypeGlass}, in.WasteTypes)
		})).
		Return(&entity.RecyclingSpot{ID: spotID, Name: "Glass bank", WasteTypes: entity.WasteTypes{entity.WasteTypeGlass}}, nil)

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/spots",
		`{"name":"Glass bank","lat":52.2,"lng":21,"waste_types":["glass"]}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), spotID.String())
}

func TestSpotHandler_CreateSpot_UnknownWasteType(t *testing.T) {
	fx := createTestSpotRoutes(t)

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/spots", `{"name":"Bin","lat":1,"lng":1,"waste_types":["wood"]}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_WASTE_TYPE", decodeEnvelope(t, rec).Error.Code)
}

func TestSpotHandler_ListSpots_ParsesFilter(t *testing.T) {
	fx := createTestSpotRoutes(t)

	fx.spotUC.EXPECT().
		ListSpots(mock.Anything, mock.MatchedBy(func(in *usecase.ListSpotsInput) bool {
			return in.Filter.Name == "bank" && in.Filter.WasteType != nil && *in.Filter.WasteType == entity.WasteTypePaper &&
				in.Filter.RadiusKm != nil && *in.Filter.RadiusKm == 2 &&
				in.Origin != nil && *in.Origin == entity.Location{Lat: 50.06, Lng: 19.94}
		})).
		Return([]*entity.RecyclingSpot{}, nil)

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spots?name=bank&waste_type=paper&radius_km=2&lat=50.06&lng=19.94", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `[]`, string(env.Data))
	if assert.NotNil(t, env.Meta.Count) {
		assert.Zero(t, *env.Meta.Count)
	}
}

func TestSpotHandler_ListSpots_RejectsBadQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode string
	}{
		{name: "waste type", query: "waste_type=wood", wantCode: "INVALID_WASTE_TYPE"},
		{name: "radius", query: "radius_km=-1", wantCode: "VALIDATION_FAILED"},
		{name: "half location", query: "lat=50", wantCode: "INVALID_LOCATION"},
		{name: "out of range", query: "lat=91&lng=0", wantCode: "INVALID_LOCATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSpotRoutes(t)

			rec := httptest.NewRecorder()
			fx.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spots?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestSpotHandler_GetSpot_Errors(t *testing.T) {
	fx := createTestSpotRoutes(t)
	spotID := uuid.New()

	fx.spotUC.EXPECT().GetSpot(mock.Anything, spotID).Return(nil, domainerrors.ErrSpotNotFound)

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spots/"+spotID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	fx.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spots/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSpotHandler_SpotQRCode_ServesPNG(t *testing.T) {
	fx := createTestSpotRoutes(t)
	spotID := uuid.New()

	fx.spotUC.EXPECT().SpotQRCode(mock.Anything, spotID).Return([]byte("\x89PNG"), nil)

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spots/"+spotID.String()+"/qr", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestSpotHandler_RateSpot(t *testing.T) {
	fx := createTestSpotRoutes(t)
	spotID := uuid.New()

	fx.ratingUC.EXPECT().RateSpot(mock.Anything, fx.userID, spotID, 4).
		Return(&usecase.RateSpotOutput{Spot: &entity.RecyclingSpot{ID: spotID, AverageRating: 4, RatingCount: 1}, Rating: 4, FirstTime: true}, nil)
	fx.ratingUC.EXPECT().RateSpot(mock.Anything, fx.userID, spotID, 9).Return(nil, domainerrors.ErrInvalidRating)

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, jsonRequest(http.MethodPut, "/spots/"+spotID.String()+"/rating", `{"value":4}`))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"first_time":true`)

	rec = httptest.NewRecorder()
	fx.e.ServeHTTP(rec, jsonRequest(http.MethodPut, "/spots/"+spotID.String()+"/rating", `{"value":9}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RATING", decodeEnvelope(t, rec).Error.Code)
}

func TestSpotHandler_AddComment_BlankText(t *testing.T) {
	fx := createTestSpotRoutes(t)

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/spots/"+uuid.NewString()+"/comments", `{"text":"  "}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}
