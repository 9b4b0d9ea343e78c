package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"misteri/pkg/config"
	"misteri/pkg/logger"
)

type routeHandler struct {
	path   string
	status int
}

func (h routeHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(h.path, func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(h.status)
	})
}

type healthRoutes struct{}

func (healthRoutes) RegisterRoutes(router *httprouter.Router) {
	ok := func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) { w.WriteHeader(http.StatusOK) }
	router.GET("/health", ok)
	router.GET("/ready", ok)
}

type countingCloser struct {
	closed int
}

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		Log:               logger.Discard(),
		RequestTimeout:    time.Second,
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
		ShutdownTimeout:   time.Second,
	}
}

func TestApplication_Routes(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRequests = 0

	a := NewApplication(cfg)
	a.SetApp(healthRoutes{},
		routeHandler{path: "/api/v1/categories", status: http.StatusOK},
		routeHandler{path: "/api/v1/profiles/:login", status: http.StatusAccepted},
	)
	defer a.stopBackground()

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/api/v1/categories", http.StatusOK},
		{"/api/v1/profiles/octocat", http.StatusAccepted},
		{"/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestApplication_RateLimitSkipsHealth(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(healthRoutes{}, routeHandler{path: "/api/v1/categories", status: http.StatusOK})
	defer a.stopBackground()

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("health call %d limited: %d", i, rec.Code)
		}
	}

	var last int
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third API call status = %d, want 429", last)
	}
}

func TestApplication_RateLimitIgnoresForwardedForByDefault(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(healthRoutes{}, routeHandler{path: "/api/v1/categories", status: http.StatusOK})
	defer a.stopBackground()

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third API call status = %d, want 429", last)
	}
}

func TestApplication_RateLimitTrustProxy(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitTrustProxy = true

	a := NewApplication(cfg)
	a.SetApp(healthRoutes{}, routeHandler{path: "/api/v1/categories", status: http.StatusOK})
	defer a.stopBackground()

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("call %d status = %d, want 200", i, rec.Code)
		}
	}
}

func TestApplication_ClosesResources(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(healthRoutes{})

	c := &countingCloser{}
	a.OnShutdown("events", c)
	a.stopBackground()

	if c.closed != 1 {
		t.Errorf("closed %d times, want 1", c.closed)
	}
}
