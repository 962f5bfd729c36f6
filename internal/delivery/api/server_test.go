package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecospot/config"
	deliverycontext "ecospot/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.AllowOrigins = []string{"https://app.ecospot.example"}
	cfg.ApplyDefaults()

	return cfg
}

func TestNewEcho_CORSPreflight(t *testing.T) {
	e := NewEcho(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/api/v1/spots", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/spots", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.ecospot.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, "Authorization")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.ecospot.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), echo.HeaderAuthorization)
}

func TestNewEcho_RequestIDAndErrorEnvelope(t *testing.T) {
	e := NewEcho(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{"error":{"code":"HTTP_ERROR","message":"Not Found"},"meta":{"request_id":"req-42"}}`, rec.Body.String())
}

func TestNewEcho_BodyLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.HTTP.MaxRequestBodySize = "1KB"
	e := NewEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/echo", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 2048))))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
