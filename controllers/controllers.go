package controllers

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/joeydtaylor/hemtt/middleware/metrics"
	"github.com/joeydtaylor/hemtt/project"
)

// Controller serves read-only views of the loaded project.
type Controller struct {
	project *project.Project
	metrics *metrics.Metrics
	fsys    fs.FS // nil probes the working directory
}

func ProvideController(p *project.Project, m *metrics.Metrics) *Controller {
	return New(p, m, nil)
}

func New(p *project.Project, m *metrics.Metrics, fsys fs.FS) *Controller {
	return &Controller{project: p, metrics: m, fsys: fsys}
}

func (c *Controller) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%s (%s)\n", c.project.Name(), c.project.Prefix())
}

func (c *Controller) Project(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.project, http.StatusOK)
}

// Files resolves the file list on every request; the tree may change
// between builds.
func (c *Controller) Files(w http.ResponseWriter, r *http.Request) {
	var files []string
	if c.fsys != nil {
		files = c.project.ResolveFiles(c.fsys)
	} else {
		files = c.project.Files()
	}
	if files == nil {
		files = []string{}
	}
	c.metrics.ObserveResolvedFiles(len(files))
	writeJSON(w, files, http.StatusOK)
}

func (c *Controller) Headers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.project.Headers(), http.StatusOK)
}

func (c *Controller) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.project.Version(), http.StatusOK)
}

func (c *Controller) Hemtt(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.project.Hemtt(), http.StatusOK)
}

func (c *Controller) Signing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.project.Signing(), http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
