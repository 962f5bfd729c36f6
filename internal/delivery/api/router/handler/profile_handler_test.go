package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecospot/internal/domain/entity"
	mockUsecase "ecospot/internal/mocks/usecase"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProfileRoutes(t *testing.T) (*echo.Echo, *mockUsecase.MockProfileUsecase, uuid.UUID) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: newDiscardLogger()})
	userID := uuid.New()

	e := newTestEcho()
	g := e.Group("/profile", asUser(userID))
	g.PUT("/location", h.UpdateLocation)
	g.PUT("/image", h.UploadProfileImage)
	g.GET("/location-settings", h.LocationSettings)

	return e, profileUC, userID
}

func TestProfileHandler_UpdateLocation(t *testing.T) {
	e, profileUC, userID := setupProfileRoutes(t)
	loc := entity.Location{Lat: 50.06, Lng: 19.94}

	profileUC.EXPECT().UpdateLocation(mock.Anything, userID, loc).Return(&entity.User{ID: userID, Location: &loc}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPut, "/profile/location", `{"lat":50.06,"lng":19.94}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"lat":50.06`)
}

func TestProfileHandler_UpdateLocation_Invalid(t *testing.T) {
	for _, body := range []string{`{"lng":19.94}`, `{"lat":95,"lng":0}`} {
		e, _, _ := setupProfileRoutes(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, jsonRequest(http.MethodPut, "/profile/location", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "INVALID_LOCATION", decodeEnvelope(t, rec).Error.Code, body)
	}
}

func TestProfileHandler_UploadProfileImage(t *testing.T) {
	e, profileUC, userID := setupProfileRoutes(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	profileUC.EXPECT().
		UploadProfileImage(mock.Anything, userID, mock.MatchedBy(func(img *usecase.ImageUpload) bool {
			return bytes.Equal(img.Data, []byte("\x89PNG\r\n\x1a\n"))
		})).
		Return("https://cdn/me.png", nil)

	req := httptest.NewRequest(http.MethodPut, "/profile/image", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn/me.png")
}

func TestProfileHandler_LocationSettings(t *testing.T) {
	e, profileUC, _ := setupProfileRoutes(t)

	profileUC.EXPECT().LocationSettings().Return(usecase.LocationSettings{UpdateInterval: 15 * time.Second, HighAccuracy: true})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/location-settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"update_interval_seconds":15,"high_accuracy":true}`, string(decodeEnvelope(t, rec).Data))
}
