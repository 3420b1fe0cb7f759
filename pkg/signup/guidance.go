package signup

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed guidance.yaml
var defaultGuidanceYAML []byte

// Guidance maps each field's criteria to the text rendered beside them.
type Guidance map[Field]map[Criterion]string

var defaultGuidance = sync.OnceValue(func() Guidance {
	g, err := LoadGuidance(bytes.NewReader(defaultGuidanceYAML))
	if err != nil {
		panic(fmt.Errorf("signup: embedded guidance: %w", err))
	}
	return g
})

// DefaultGuidance returns a copy of the embedded guidance catalogue.
func DefaultGuidance() Guidance {
	return defaultGuidance().Clone()
}

// LoadGuidance decodes a YAML catalogue keyed by field then criterion.
// Every key must name a known field and one of its criteria.
func LoadGuidance(r io.Reader) (Guidance, error) {
	var raw map[string]map[string]string
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidGuidance, err)
	}

	g := make(Guidance, len(raw))
	for name, entries := range raw {
		field, err := ParseField(name)
		if err != nil {
			return nil, err
		}
		if g[field] == nil {
			g[field] = make(map[Criterion]string, len(entries))
		}
		for key, text := range entries {
			c := Criterion(key)
			if !hasCriterion(field, c) {
				return nil, fmt.Errorf("%w: %s.%s", ErrUnknownCriterion, field, key)
			}
			g[field][c] = text
		}
	}
	return g, nil
}

// Clone returns a deep copy of g.
func (g Guidance) Clone() Guidance {
	out := make(Guidance, len(g))
	for f, entries := range g {
		out[f] = maps.Clone(entries)
	}
	return out
}

// Merge returns a copy of g with every entry of override applied on top.
func (g Guidance) Merge(override Guidance) Guidance {
	out := g.Clone()
	for f, entries := range override {
		if out[f] == nil {
			out[f] = make(map[Criterion]string, len(entries))
		}
		maps.Copy(out[f], entries)
	}
	return out
}

// Text returns the guidance for a field criterion, or fallback when none is set.
func (g Guidance) Text(field Field, c Criterion, fallback string) string {
	if text, ok := g[field][c]; ok && text != "" {
		return text
	}
	return fallback
}
