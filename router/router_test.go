package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/joeydtaylor/hemtt/controllers"
	"github.com/joeydtaylor/hemtt/middleware/logger"
	"github.com/joeydtaylor/hemtt/middleware/metrics"
	"github.com/joeydtaylor/hemtt/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	p, err := project.Parse("name = \"Router\"\nprefix = \"rt\"\nfiles = [\"b.txt\", \"a.txt\", \"a.txt\"]\n")
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	m := metrics.ProvideMetrics()
	return BuildRouter(BuildDeps{
		LogMW:       logger.ProvideMiddleware(zap.New(core)),
		Metrics:     m,
		Controllers: controllers.New(p, m, fstest.MapFS{}),
	}), logs
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	h, logs := newRouter(t)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/", http.StatusOK, "Router (rt)"},
		{"/ping", http.StatusOK, "."},
		{"/project", http.StatusOK, `"prefix":"rt"`},
		{"/project/files", http.StatusOK, `["a.txt","b.txt"]`},
		{"/project/headers", http.StatusOK, `{}`},
		{"/project/version", http.StatusOK, `"git_hash":8`},
		{"/project/hemtt", http.StatusOK, `"executable":"arma3_x64"`},
		{"/project/signing", http.StatusOK, `"version":3`},
		{"/nope", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(h, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
	assert.NotZero(t, logs.Len())
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newRouter(t)
	get(h, "/project/files")

	rec := get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `hemtt_http_requests_total{method="GET",route="/project/files",status="200"} 1`), body)
	assert.Contains(t, body, "hemtt_project_resolved_files 2")
}
