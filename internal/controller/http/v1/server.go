package v1

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/damage_assessor/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(
	cfg config.HTTP,
	log *slog.Logger,
	submitter Submitter,
	finder Finder,
	reports ReportGenerator,
) (*Server, error) {
	pages, err := NewPages(log, submitter, finder)
	if err != nil {
		return nil, fmt.Errorf("failed to load pages: %w", err)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(NewUploadsHandler(log, submitter, finder, reports), pages),
		},
	}, nil
}

func NewRouter(h *UploadsHandler, pages *Pages) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", h.Upload)
		r.Get("/uploads", h.List)
		r.Get("/uploads.csv", h.ExportCSV)
		r.Get("/uploads/{upload_id}", h.Get)
	})

	r.Get("/", pages.Index)
	r.Get("/upload", pages.UploadForm)
	r.Post("/upload", pages.SubmitUpload)
	r.Get("/uploads", pages.Uploads)
	r.Get("/uploads/{upload_id}", pages.Report)
	r.Get("/uploads/{upload_id}/report.pdf", h.ReportPDF)

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
