package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signupguard/pkg/logger"
	"github.com/dmitrymomot/signupguard/pkg/signup"
)

// Handler serves the registration and profile pages and the evaluation API.
// It keeps no per-user state: every request carries the current field values.
type Handler struct {
	eval      *signup.Evaluator
	log       *slog.Logger
	scriptURL string
}

// Option configures a Handler.
type Option func(*Handler)

// WithEvaluator sets the evaluator used for every request.
func WithEvaluator(e *signup.Evaluator) Option {
	return func(h *Handler) {
		if e != nil {
			h.eval = e
		}
	}
}

// WithLogger sets the request logger. Nil discards logs.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithScriptURL sets the Datastar client bundle referenced by the pages.
func WithScriptURL(url string) Option {
	return func(h *Handler) { h.scriptURL = url }
}

// NewHandler returns a Handler using the default evaluator.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		eval: signup.NewEvaluator(),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("web"))
	return h
}

// fieldParam resolves the {field} URL parameter.
func fieldParam(r *http.Request) (signup.Field, error) {
	return signup.ParseField(chi.URLParam(r, "field"))
}

// fail maps handler errors to status codes for the HTML endpoints.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, signup.ErrUnknownField), errors.Is(err, ErrNotEditable):
		status = http.StatusNotFound
	case errors.Is(err, ErrBadSignals):
		status = http.StatusBadRequest
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.log.Log(r.Context(), level, "request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		logger.Error(err),
	)
	http.Error(w, http.StatusText(status), status)
}

// renderFailed logs a failure after the response has started.
func (h *Handler) renderFailed(r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "render failed", slog.String("path", r.URL.Path), logger.Error(err))
}

func criteriaCount(results []signup.CriterionResult) (passed, total int) {
	for _, r := range results {
		if r.Satisfied {
			passed++
		}
	}
	return passed, len(results)
}
