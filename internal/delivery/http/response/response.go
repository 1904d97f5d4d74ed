// Package response writes the status envelopes every endpoint answers with.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Envelope is the body of every API response. Failures never carry a cause,
// so clients cannot tell a bad password from a missing record.
type Envelope struct {
	Status  string `json:"status"`
	Content any    `json:"content,omitempty"`
}

// Success answers 200 with content, omitted when nil.
func Success(c echo.Context, content any) error {
	return c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Content: content})
}

// Failure answers with the generic failure body.
func Failure(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, Envelope{Status: StatusFailure})
}

// Usage answers a plain-text description of an endpoint.
func Usage(c echo.Context, text string) error {
	return c.String(http.StatusOK, text)
}
