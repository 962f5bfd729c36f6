package errors

import "net/http"

// Identity
var (
	ErrEmailAlreadyInUse   = define(http.StatusConflict, "EMAIL_ALREADY_IN_USE", "This email address is already in use")
	ErrWeakPassword        = define(http.StatusBadRequest, "WEAK_PASSWORD", "Password is too weak, it must be at least 6 characters long")
	ErrInvalidEmail        = define(http.StatusBadRequest, "INVALID_EMAIL", "Email address is not valid")
	ErrInvalidCredentials  = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Wrong email or password")
	ErrRefreshTokenInvalid = define(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Refresh token is invalid or expired")
	ErrUnauthorized        = define(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrForbidden           = define(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrUserNotFound        = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
)

// Recycling spots, ratings and locations
var (
	ErrSpotNotFound     = define(http.StatusNotFound, "SPOT_NOT_FOUND", "Recycling spot doesn't exist")
	ErrInvalidRating    = define(http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
	ErrInvalidWasteType = define(http.StatusBadRequest, "INVALID_WASTE_TYPE", "Unknown waste type")
	ErrInvalidLocation  = define(http.StatusBadRequest, "INVALID_LOCATION", "Location coordinates are out of range")
)

// Profile images
var (
	ErrImageTooLarge    = define(http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "Profile image is too large")
	ErrUnsupportedImage = define(http.StatusUnsupportedMediaType, "UNSUPPORTED_IMAGE", "Profile image must be an image file")
)

// ErrValidationFailed covers malformed input that has no dedicated code.
var ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
