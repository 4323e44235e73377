package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestJSONErrorUsesRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(LoggerKey, zap.New(core).With(zap.String("requestId", "req-42")))
		c.Next()
	})
	r.GET("/", func(c *gin.Context) {
		JSONError(c, http.StatusUnprocessableEntity, "invalid input", "bad reference")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}

	entries := logs.FilterMessage("invalid input").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["requestId"]; got != "req-42" {
		t.Fatalf("requestId = %v", got)
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("level = %s", entries[0].Level)
	}
}

func TestErrorHandlerLogsPanicWithRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Set(LoggerKey, zap.New(core).With(zap.String("requestId", "req-7")))
		c.Next()
	})
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	entries := logs.FilterMessage("Unhandled panic").All()
	if len(entries) != 1 || entries[0].ContextMap()["requestId"] != "req-7" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestLoggerFromFallsBackToGlobal(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if LoggerFrom(c) != zap.L() {
		t.Fatalf("expected global logger")
	}
	if LoggerFrom(nil) != zap.L() {
		t.Fatalf("expected global logger for nil context")
	}
}
