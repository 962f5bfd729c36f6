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

// SpotHandlerParams holds dependencies for SpotHandler, injected by Fx.
type SpotHandlerParams struct {
	fx.In

	SpotUC    usecase.SpotUsecase
	RatingUC  usecase.RatingUsecase
	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// SpotHandler serves recycling spots with their ratings and comments.
type SpotHandler struct {
	spotUC    usecase.SpotUsecase
	ratingUC  usecase.RatingUsecase
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewSpotHandler is the constructor for SpotHandler.
func NewSpotHandler(params SpotHandlerParams) *SpotHandler {
	return &SpotHandler{
		spotUC:    params.SpotUC,
		ratingUC:  params.RatingUC,
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// CreateSpotRequest is the body of a new spot.
type CreateSpotRequest struct {
	Name        string   `json:"name" validate:"notblank,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	Lat         *float64 `json:"lat" validate:"required"`
	Lng         *float64 `json:"lng" validate:"required"`
	WasteTypes  []string `json:"waste_types"`
}

// RateRequest is a star rating.
type RateRequest struct {
	Value int `json:"value"`
}

// CommentRequest is a comment body.
type CommentRequest struct {
	Text string `json:"text" validate:"notblank"`
}

// CreateSpot adds a recycling spot.
func (h *SpotHandler) CreateSpot(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateSpotRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid spot input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	wasteTypes := make(entity.WasteTypes, 0, len(req.WasteTypes))
	for _, raw := range req.WasteTypes {
		wt, ok := entity.ParseWasteType(raw)
		if !ok {
			return domainerrors.ErrInvalidWasteType.WithDetails(raw)
		}
		wasteTypes = append(wasteTypes, wt)
	}

	spot, err := h.spotUC.CreateSpot(c.Request().Context(), userID, &usecase.CreateSpotInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    entity.Location{Lat: *req.Lat, Lng: *req.Lng},
		WasteTypes:  wasteTypes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSpotResponse(spot))
}

// ListSpots returns the spots matching the query filter.
func (h *SpotHandler) ListSpots(c echo.Context) error {
	input, err := parseListSpots(c)
	if err != nil {
		return err
	}

	spots, err := h.spotUC.ListSpots(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toSpotResponses(spots))
}

// GetSpot returns one spot.
func (h *SpotHandler) GetSpot(c echo.Context) error {
	spotID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	spot, err := h.spotUC.GetSpot(c.Request().Context(), spotID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSpotResponse(spot))
}

// SpotQRCode returns the printable PNG QR code of a spot.
func (h *SpotHandler) SpotQRCode(c echo.Context) error {
	spotID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.spotUC.SpotQRCode(c.Request().Context(), spotID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// RateSpot records the user's rating of a spot.
func (h *SpotHandler) RateSpot(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	spotID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req RateRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid rating input")
	}

	output, err := h.ratingUC.RateSpot(c.Request().Context(), userID, spotID, req.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"spot":       toSpotResponse(output.Spot),
		"rating":     output.Rating,
		"first_time": output.FirstTime,
	})
}

// GetMyRating returns the user's rating of a spot, 0 when unrated.
func (h *SpotHandler) GetMyRating(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	spotID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	value, err := h.ratingUC.GetUserRating(c.Request().Context(), userID, spotID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"rating": value})
}

// AddComment appends a comment to a spot.
func (h *SpotHandler) AddComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	spotID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentUC.AddComment(c.Request().Context(), userID, spotID, req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentResponse(comment))
}

// ListComments returns a spot's comments, oldest first.
func (h *SpotHandler) ListComments(c echo.Context) error {
	spotID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.commentUC.ListComments(c.Request().Context(), spotID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toCommentResponses(comments))
}
