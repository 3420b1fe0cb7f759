package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/signupguard/pkg/logger"
)

// NewRouter mounts every page, fragment and API route of h.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/register", http.StatusSeeOther)
	})

	r.Route("/register", func(r chi.Router) {
		r.Get("/", h.RegisterPage)
		r.Post("/", h.RegisterSubmit)
		r.Post("/fields/{field}", h.RegisterField)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", h.ProfilePage)
		r.Route("/fields/{field}", func(r chi.Router) {
			r.Post("/", h.ProfileField)
			r.Post("/edit", h.ProfileEdit)
			r.Post("/cancel", h.ProfileCancel)
			r.Post("/save", h.ProfileSave)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/fields/{field}/evaluate", h.APIEvaluateField)
		r.Post("/passwords/match", h.APIPasswordsMatch)
		r.Post("/submit", h.APISubmit)
	})

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.DebugContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
