package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	dataStarAcceptHeader = "text/event-stream"
	dataStarQueryParam   = "datastar"
)

// IsDataStar reports whether r was issued by the Datastar client and expects
// server-sent patches rather than a full HTML document.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), dataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(dataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// patch sends each component as its own element patch for Datastar
// requests; elements are matched by id. Plain requests receive the
// components concatenated as an HTML fragment.
func patch(w http.ResponseWriter, r *http.Request, components ...templ.Component) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, c := range components {
			if err := sse.PatchElementTempl(c); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, c := range components {
		if err := c.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// patchWithSignals is patch followed by a signal update. Plain requests
// ignore the signals.
func patchWithSignals(w http.ResponseWriter, r *http.Request, signals any, components ...templ.Component) error {
	if !IsDataStar(r) {
		return patch(w, r, components...)
	}
	sse := datastar.NewSSE(w, r)
	for _, c := range components {
		if err := sse.PatchElementTempl(c); err != nil {
			return err
		}
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}

// page renders a full document with the given status.
func page(w http.ResponseWriter, r *http.Request, status int, c templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return c.Render(r.Context(), w)
}
