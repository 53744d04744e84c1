package middleware

import (
	"lms_backend/internal/config"
	"lms_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIdentity(t *testing.T) {
	cfg := &config.IdentityConfig{Learner: "Learner User", Instructor: "Instructor Doe"}
	r := gin.New()
	r.Use(Identity(cfg))
	r.GET("/who", func(c *gin.Context) {
		c.String(http.StatusOK, util.GetLearnerFromContext(c)+"|"+util.GetInstructorFromContext(c))
	})

	tests := []struct {
		name       string
		learner    string
		instructor string
		want       string
	}{
		{"defaults", "", "", "Learner User|Instructor Doe"},
		{"headers", "alice", "Prof X", "alice|Prof X"},
		{"blank header falls back", "   ", "Prof X", "Learner User|Prof X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tt.learner != "" {
				req.Header.Set(util.LearnerHeader, tt.learner)
			}
			if tt.instructor != "" {
				req.Header.Set(util.InstructorHeader, tt.instructor)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Body.String() != tt.want {
				t.Errorf("identity = %q, want %q", w.Body.String(), tt.want)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(util.RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(util.RequestIDHeader)
	if generated == "" || generated != w.Body.String() {
		t.Errorf("generated request id header %q, body %q", generated, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(util.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(util.RequestIDHeader); got != "abc-123" {
		t.Errorf("propagated request id = %q, want abc-123", got)
	}
}
