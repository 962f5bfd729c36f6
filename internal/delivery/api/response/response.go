// Package response renders the JSON envelope shared by every API endpoint:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "ecospot/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// CodeInvalidInput is returned when a request body or query cannot be bound.
const CodeInvalidInput = "INVALID_INPUT"

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
	// Count is set for list responses only.
	Count *int `json:"count,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// List returns 200 with the items and their count. A nil slice is rendered as [].
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	m := meta(c)
	count := len(items)
	m.Count = &count

	return c.JSON(http.StatusOK, SuccessResponse{Data: items, Meta: m})
}

// Error returns an error response. Details are dropped for server and auth errors.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// InvalidInput returns 400 for a body or query that could not be bound.
func InvalidInput(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidInput, message, nil)
}
