package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// readImage loads an uploaded file. The request body limit bounds its size.
func readImage(fh *multipart.FileHeader) (*usecase.ImageUpload, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}

	return &usecase.ImageUpload{ContentType: fh.Header.Get(echo.HeaderContentType), Data: data}, nil
}

// parseListSpots reads the optional filter of a spot listing from the query string:
// name, waste_type, author, radius_km and the caller's lat/lng.
func parseListSpots(c echo.Context) (*usecase.ListSpotsInput, error) {
	input := &usecase.ListSpotsInput{
		Filter: entity.SpotFilter{
			Name:   c.QueryParam("name"),
			Author: c.QueryParam("author"),
		},
	}

	if raw := c.QueryParam("waste_type"); raw != "" {
		wt, ok := entity.ParseWasteType(raw)
		if !ok {
			return nil, domainerrors.ErrInvalidWasteType.WithDetails(raw)
		}
		input.Filter.WasteType = &wt
	}

	if raw := c.QueryParam("radius_km"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid radius_km")
		}
		input.Filter.RadiusKm = &radius
	}

	lat, lng := c.QueryParam("lat"), c.QueryParam("lng")
	if lat != "" || lng != "" {
		var origin entity.Location
		if err := echo.QueryParamsBinder(c).
			MustFloat64("lat", &origin.Lat).
			MustFloat64("lng", &origin.Lng).
			BindError(); err != nil {
			return nil, domainerrors.ErrInvalidLocation
		}
		if !origin.Valid() {
			return nil, domainerrors.ErrInvalidLocation
		}
		input.Origin = &origin
	}

	return input, nil
}
