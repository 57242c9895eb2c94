package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestLoggerPropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestLogger())

	var got string
	r.GET("/ping", func(c *gin.Context) {
		got = getRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	if got != "req-123" {
		t.Fatalf("expected request id req-123 in the request context, got %q", got)
	}
}

func TestRequestLoggerGeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestLogger())

	var got string
	r.GET("/ping", func(c *gin.Context) {
		got = getRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if got == "" || got == "unknown" {
		t.Fatalf("expected a generated request id, got %q", got)
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	if got := getRequestID(context.Background()); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
}
