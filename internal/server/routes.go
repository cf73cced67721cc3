package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KaramelBytes/pitwall-cli/internal/logger"
)

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/viewer", s.handleViewer)
		r.Post("/viewer/upload", s.handleUpload)

		r.Route("/f1", func(r chi.Router) {
			r.Get("/drivers", s.handleDrivers)
			r.Get("/drivers/{query}", s.handleProfile)
			r.Get("/drivers/{query}/portrait", s.handlePortrait)
			r.Get("/trends", s.handleTrends)
			r.Get("/compare", s.handleCompare)
			r.Post("/reload", s.handleReload)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNotFound)
	})
	return r
}

// observe logs and counts every request by its route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		s.metrics.ObserveRequest(route, r.Method, status, elapsed)
		s.log.Info(r.Context(), "request",
			logger.String("method", r.Method),
			logger.String("route", route),
			logger.Int("status", status),
			logger.String("request_id", middleware.GetReqID(r.Context())),
			logger.Any("elapsed", elapsed))
	})
}
