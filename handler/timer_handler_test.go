package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"main/config"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func setupTimerRouter(t *testing.T, cfg config.TimerConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := usecase.NewTimerManager(cfg, nil)
	timerHandler := NewTimerHandler(manager)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	router.GET("/timer", timerHandler.GetTimerState)
	router.POST("/timer/start", timerHandler.StartTimer)
	router.POST("/timer/pause", timerHandler.PauseTimer)
	router.POST("/timer/reset", timerHandler.ResetTimer)
	return router
}

func timerRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope.Data
}

func TestTimerEndpoints(t *testing.T) {
	cfg := config.TimerConfig{
		WorkDuration:  25 * time.Minute,
		BreakDuration: 5 * time.Minute,
	}
	router := setupTimerRouter(t, cfg)

	t.Run("InitialStateIsIdle", func(t *testing.T) {
		w := timerRequest(router, http.MethodGet, "/timer", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		snap := decodeSnapshot(t, w)
		if snap["state"] != "idle" || snap["phase"] != "work" {
			t.Fatalf("unexpected initial snapshot: %v", snap)
		}
	})

	t.Run("StartWorkWithoutSubjectRejected", func(t *testing.T) {
		w := timerRequest(router, http.MethodPost, "/timer/start", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("StartWithSubjectRuns", func(t *testing.T) {
		w := timerRequest(router, http.MethodPost, "/timer/start", `{"subject":"Math"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		snap := decodeSnapshot(t, w)
		if snap["state"] != "running" || snap["remaining_seconds"] != float64(1500) {
			t.Fatalf("unexpected snapshot after start: %v", snap)
		}
	})

	t.Run("DoubleStartConflicts", func(t *testing.T) {
		w := timerRequest(router, http.MethodPost, "/timer/start", `{"subject":"Math"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("PauseAndReset", func(t *testing.T) {
		w := timerRequest(router, http.MethodPost, "/timer/pause", "")
		if w.Code != http.StatusOK {
			t.Fatalf("pause: expected 200, got %d: %s", w.Code, w.Body.String())
		}
		snap := decodeSnapshot(t, w)
		if snap["state"] != "paused" {
			t.Fatalf("unexpected snapshot after pause: %v", snap)
		}

		w = timerRequest(router, http.MethodPost, "/timer/reset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("reset: expected 200, got %d", w.Code)
		}
		snap = decodeSnapshot(t, w)
		if snap["state"] != "idle" || snap["remaining_seconds"] != float64(1500) {
			t.Fatalf("unexpected snapshot after reset: %v", snap)
		}
	})

	t.Run("PauseWhileIdleConflicts", func(t *testing.T) {
		w := timerRequest(router, http.MethodPost, "/timer/pause", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})
}
