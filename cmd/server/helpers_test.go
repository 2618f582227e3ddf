package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/taskboard/internal/config"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// newTestConfig returns a valid configuration with the documented defaults.
func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8000,
			LogLevel:        "debug",
			ShutdownTimeout: 2 * time.Second,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
		Metrics: config.MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// newTestApp builds an application and returns it along with an httptest
// server serving its router.
func newTestApp(t *testing.T, cfg *config.Config) (*application, *httptest.Server) {
	t.Helper()
	l, _ := logger.NewTestLogger(t)

	app, err := newApplication(cfg, l)
	require.NoError(t, err)

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return app, srv
}

// doJSON issues a request against srv and returns the response.
func doJSON(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}
