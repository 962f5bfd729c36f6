package handler

import (
	"log/slog"
	"net/http"

	"ecospot/internal/delivery/api/response"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const imageField = "image"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC, logger: params.Logger}
}

// UpdateLocationRequest is a location report of the mobile client.
type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

// FCMTokenRequest carries the device push token.
type FCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"notblank"`
}

// GetProfile returns the current user.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateLocation stores the current location of the user.
func (h *ProfileHandler) UpdateLocation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrInvalidLocation
	}

	user, err := h.profileUC.UpdateLocation(c.Request().Context(), userID, entity.Location{Lat: *req.Lat, Lng: *req.Lng})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// SaveFCMToken replaces the push token of the user's device.
func (h *ProfileHandler) SaveFCMToken(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req FCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.profileUC.SaveFCMToken(c.Request().Context(), userID, req.FCMToken); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadProfileImage stores a multipart "image" file as the profile image.
func (h *ProfileHandler) UploadProfileImage(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile(imageField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("image file is required")
	}
	image, err := readImage(fh)
	if err != nil {
		return err
	}

	url, err := h.profileUC.UploadProfileImage(c.Request().Context(), userID, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"profile_image_url": url})
}

// LocationSettings returns how often the client should report its location.
func (h *ProfileHandler) LocationSettings(c echo.Context) error {
	return response.Success(c, http.StatusOK, toLocationSettingsResponse(h.profileUC.LocationSettings()))
}
