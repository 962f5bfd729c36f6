// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"time"

	"ecospot/internal/domain/entity"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
)

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type userResponse struct {
	ID                uuid.UUID         `json:"id"`
	FullName          string            `json:"full_name"`
	Phone             string            `json:"phone,omitempty"`
	Email             string            `json:"email"`
	ProfileImageURL   string            `json:"profile_image_url,omitempty"`
	Points            int               `json:"points"`
	Location          *locationResponse `json:"location,omitempty"`
	LocationUpdatedAt *time.Time        `json:"location_updated_at,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

func toUserResponse(u *entity.User) *userResponse {
	resp := &userResponse{
		ID:                u.ID,
		FullName:          u.FullName,
		Phone:             u.Phone,
		Email:             u.Email,
		ProfileImageURL:   u.ProfileImageURL,
		Points:            u.Points,
		LocationUpdatedAt: u.LocationUpdatedAt,
		CreatedAt:         u.CreatedAt,
	}
	if u.Location != nil {
		resp.Location = &locationResponse{Lat: u.Location.Lat, Lng: u.Location.Lng}
	}

	return resp
}

type spotResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Location      locationResponse `json:"location"`
	WasteTypes    []string         `json:"waste_types"`
	AuthorID      uuid.UUID        `json:"author_id"`
	AuthorName    string           `json:"author_name"`
	AverageRating float64          `json:"average_rating"`
	RatingCount   int              `json:"rating_count"`
	CreatedAt     time.Time        `json:"created_at"`
}

func toSpotResponse(s *entity.RecyclingSpot) *spotResponse {
	return &spotResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Location:      locationResponse{Lat: s.Location.Lat, Lng: s.Location.Lng},
		WasteTypes:    s.WasteTypes.ToStrings(),
		AuthorID:      s.AuthorID,
		AuthorName:    s.AuthorName,
		AverageRating: s.AverageRating,
		RatingCount:   s.RatingCount,
		CreatedAt:     s.CreatedAt,
	}
}

func toSpotResponses(spots []*entity.RecyclingSpot) []*spotResponse {
	result := make([]*spotResponse, len(spots))
	for i, s := range spots {
		result[i] = toSpotResponse(s)
	}

	return result
}

type commentResponse struct {
	ID         uuid.UUID `json:"id"`
	SpotID     uuid.UUID `json:"spot_id"`
	Text       string    `json:"text"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func toCommentResponse(c *entity.Comment) *commentResponse {
	return &commentResponse{
		ID:         c.ID,
		SpotID:     c.SpotID,
		Text:       c.Text,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		CreatedAt:  c.CreatedAt,
	}
}

func toCommentResponses(comments []*entity.Comment) []*commentResponse {
	result := make([]*commentResponse, len(comments))
	for i, c := range comments {
		result[i] = toCommentResponse(c)
	}

	return result
}

type loginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *userResponse `json:"user"`
}

type locationSettingsResponse struct {
	UpdateIntervalSeconds int  `json:"update_interval_seconds"`
	HighAccuracy          bool `json:"high_accuracy"`
}

func toLocationSettingsResponse(s usecase.LocationSettings) *locationSettingsResponse {
	return &locationSettingsResponse{
		UpdateIntervalSeconds: int(s.UpdateInterval / time.Second),
		HighAccuracy:          s.HighAccuracy,
	}
}
