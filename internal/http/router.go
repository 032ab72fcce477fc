package http

import (
	"net/http"

	"dcjobs/internal/config"
	"dcjobs/internal/directory"
	"dcjobs/internal/http/handler"
	mw "dcjobs/internal/http/middleware"
	"dcjobs/internal/job"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.RequestTimeout))

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	dirSvc := &directory.Service{DB: db}
	ah := &handler.AuthHandler{Svc: dirSvc}
	r.Post("/auth/signin", ah.SignIn)

	lh := &handler.LookupHandler{Svc: dirSvc}
	r.Get("/codes", lh.Codes)
	r.Get("/users", lh.Users)

	jobSvc := &job.Service{DB: db}
	jh := &handler.JobHandler{Svc: jobSvc}

	r.Route("/jobs", func(r chi.Router) {
		r.Post("/", jh.Create)
		r.Get("/", jh.List)

		r.Get("/search", jh.Search)
		r.Get("/stats", jh.Stats)
		r.Get("/export", jh.Export)

		r.Get("/{id}", jh.Get)
		r.Put("/{id}", jh.AdminUpdate)
		r.Put("/{id}/update", jh.DetailUpdate)
		r.Delete("/{id}", jh.Delete)
	})

	return r
}
