package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORS(t *testing.T) {
	origins := NewOriginSet([]string{"http://localhost:5173"})
	r := newRouter(CORS(origins))

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{"allowed origin", http.MethodGet, "http://localhost:5173", http.StatusOK, "http://localhost:5173"},
		{"unknown origin", http.MethodGet, "http://evil.example", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "http://localhost:5173", http.StatusNoContent, "http://localhost:5173"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/ok", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}

func TestOriginSet_Replace(t *testing.T) {
	s := NewOriginSet([]string{"http://a.example"})
	s.Replace([]string{"http://b.example"})

	if s.Allowed("http://a.example") {
		t.Error("old origin still allowed after Replace")
	}
	if !s.Allowed("http://b.example") {
		t.Error("new origin not allowed after Replace")
	}
}

func TestRateLimiter(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	r := newRouter(RateLimiter(done, 2, time.Hour))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first two requests = %v, want 200", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", codes[2])
	}
}

func TestVisitorStore_Sweep(t *testing.T) {
	s := newVisitorStore(time.Second)
	now := time.Now()
	s.visitors["stale"] = &visitor{lastSeen: now.Add(-2 * time.Minute)}
	s.visitors["fresh"] = &visitor{lastSeen: now.Add(-10 * time.Second)}

	s.sweep(now)

	if _, ok := s.visitors["stale"]; ok {
		t.Error("stale visitor not removed")
	}
	if _, ok := s.visitors["fresh"]; !ok {
		t.Error("fresh visitor removed")
	}
}

func TestVisitorStore_CleanupStopsOnDone(t *testing.T) {
	s := newVisitorStore(time.Second)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		s.cleanup(done, time.Millisecond)
		close(exited)
	}()

	close(done)
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine still running after done was closed")
	}
}
