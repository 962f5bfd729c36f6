package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/entity"
	mockUsecase "ecospot/internal/mocks/usecase"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthRoutes(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)

	return e, userUC
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e, userUC := setupAuthRoutes(t)
	userID := uuid.New()

	userUC.EXPECT().
		RegisterUser(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterUserInput) bool {
			return in.Email == "ada@example.com" && in.FullName == "Ada" && in.ProfileImage == nil
		})).
		Return(&usecase.RegisterOutput{User: &entity.User{ID: userID, FullName: "Ada", Email: "ada@example.com"}}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/auth/register",
		`{"full_name":"Ada","phone":"+48 600 100 200","email":"ada@example.com","password":"secret1"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e, _ := setupAuthRoutes(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/auth/register", `{"full_name":" ","phone":"1","email":"nope","password":"x"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"FullName": "notblank", "Email": "email"}, env.Error.Details)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, userUC := setupAuthRoutes(t)

	userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_Logout_NoContent(t *testing.T) {
	e, userUC := setupAuthRoutes(t)

	userUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "rt"}).Return(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/auth/logout", `{"refresh_token":"rt"}`))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
