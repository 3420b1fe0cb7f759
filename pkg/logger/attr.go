package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Criteria summarises live feedback as passed/total counts.
func Criteria(passed, total int) slog.Attr {
	return slog.Group("criteria",
		slog.Int("passed", passed),
		slog.Int("total", total),
	)
}

// Decision records a submit gate outcome. firstFailure is omitted when empty.
func Decision(allowed bool, firstFailure string, violations int) slog.Attr {
	attrs := []any{slog.Bool("allowed", allowed), slog.Int("violations", violations)}
	if firstFailure != "" {
		attrs = append(attrs, slog.String("first_failure", firstFailure))
	}
	return slog.Group("decision", attrs...)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
