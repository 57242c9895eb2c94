package apperrors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is a user-visible notice with an HTTP status. Every failed
// dashboard action maps to exactly one of these; nothing is retried or
// queued, and no request error is fatal to the process.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// JSON returns the error as a JSON string.
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// The dashboard's error taxonomy: a requested document that does not
// exist, a read/write that failed in transit, and a refused destructive
// action (e.g. deleting a category that still has products).
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrConflict       = New(http.StatusConflict, "Conflict", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrUpstream       = New(http.StatusBadGateway, "Upstream store error", nil)
)

// NotFound wraps err as a not-found notice with a specific message.
func NotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

// Transport wraps a failed store or upload call. The action is aborted;
// the user has to re-invoke it.
func Transport(message string, err error) *Error {
	return New(http.StatusBadGateway, message, err)
}

// Constraint is a refused destructive action, surfaced as a specific
// notice before the destructive call is issued.
func Constraint(message string) *Error {
	return New(http.StatusConflict, message, nil)
}

// Middleware converts errors attached to the gin context into JSON
// notices.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			appErr, ok := err.(*Error)
			if !ok {
				appErr = New(http.StatusInternalServerError, "Internal server error", err)
			}
			c.JSON(appErr.Code, appErr)
			c.Abort()
		}
	}
}
