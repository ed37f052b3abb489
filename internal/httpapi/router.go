// Package httpapi exposes the rdmanage services as a JSON API under /api.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/alexanderramin/rdmanage/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Options configures NewRouter. A nil Metrics disables instrumentation and
// the metrics endpoint.
type Options struct {
	Logger      *slog.Logger
	Metrics     *Metrics
	MetricsPath string
}

type api struct {
	svcs   *service.Services
	logger *slog.Logger
}

// NewRouter builds the HTTP handler for every API route.
func NewRouter(svcs *service.Services, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	a := &api{svcs: svcs, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(instrument(opts.Metrics))
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, opts.Metrics.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", a.listProducts)
			r.Post("/", a.createProduct)
			r.Get("/{id}", a.getProduct)
			r.Put("/{id}", a.updateProduct)
			r.Delete("/{id}", a.deleteProduct)
		})
		r.Route("/modules", func(r chi.Router) {
			r.Get("/", a.listModules)
			r.Post("/", a.createModule)
			r.Get("/{id}", a.getModule)
			r.Put("/{id}", a.updateModule)
			r.Delete("/{id}", a.deleteModule)
		})
		r.Route("/requirements", func(r chi.Router) {
			r.Get("/", a.listRequirements)
			r.Post("/", a.createRequirement)
			r.Get("/{id}", a.getRequirement)
			r.Put("/{id}", a.updateRequirement)
			r.Delete("/{id}", a.deleteRequirement)
		})
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", a.listTasks)
			r.Post("/", a.createTask)
			r.Get("/{id}", a.getTask)
			r.Put("/{id}", a.updateTask)
			r.Delete("/{id}", a.deleteTask)
		})
		r.Route("/versions", func(r chi.Router) {
			r.Get("/", a.listVersions)
			r.Post("/", a.createVersion)
			r.Get("/{id}", a.getVersion)
			r.Put("/{id}", a.updateVersion)
			r.Delete("/{id}", a.deleteVersion)
		})
		r.Route("/dicts", func(r chi.Router) {
			r.Get("/", a.listDicts)
			r.Post("/", a.createDict)
			r.Get("/{id}", a.getDict)
			r.Put("/{id}", a.updateDict)
			r.Delete("/{id}", a.deleteDict)
		})
		r.Post("/import", a.importProduct)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusNotFound, KindNotFound, "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, KindValidation, "method not allowed")
	})
	return r
}
