package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/joeydtaylor/hemtt/project"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLoad(t *testing.T) {
	m := ProvideMetrics()

	m.ObserveLoad(nil)
	m.ObserveLoad(nil)
	m.ObserveLoad(&project.ValidationError{Field: "prefix", Reason: "prefix cannot be empty"})
	m.ObserveLoad(&project.IOError{Path: "x", Err: errors.New("gone")})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.loads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("io")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.loads.WithLabelValues("parse")))
}

func TestObserveResolvedFiles(t *testing.T) {
	m := ProvideMetrics()
	m.ObserveResolvedFiles(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.resolvedFiles))
	m.ObserveResolvedFiles(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolvedFiles))
}

func TestCollect_UsesRoutePattern(t *testing.T) {
	m := ProvideMetrics()
	r := chi.NewRouter()
	r.Use(m.Collect())
	r.Get("/project/{section}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	for _, p := range []string{"/project/files", "/project/headers", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/project/{section}", "202")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLoad(nil)
		m.ObserveLoad(errors.New("boom"))
		m.ObserveResolvedFiles(3)
	})

	called := false
	h := m.Collect()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Exposes(t *testing.T) {
	m := ProvideMetrics()
	m.ObserveLoad(nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hemtt_project_loads_total{result="ok"} 1`)
}
