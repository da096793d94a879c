// router/router.go
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/hemtt/controllers"
	"github.com/joeydtaylor/hemtt/middleware/logger"
	hmetrics "github.com/joeydtaylor/hemtt/middleware/metrics"
)

type BuildDeps struct {
	LogMW       logger.Middleware
	Metrics     *hmetrics.Metrics
	Controllers *controllers.Controller
}

func BuildRouter(d BuildDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))
	r.Use(d.Metrics.Collect(), d.LogMW.Middleware())
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	c := d.Controllers
	r.Get("/", c.Index)
	r.Route("/project", func(r chi.Router) {
		r.Get("/", c.Project)
		r.Get("/files", c.Files)
		r.Get("/headers", c.Headers)
		r.Get("/version", c.Version)
		r.Get("/hemtt", c.Hemtt)
		r.Get("/signing", c.Signing)
	})
	return r
}
