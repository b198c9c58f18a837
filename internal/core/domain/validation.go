package domain

import "strings"

// FieldError describes a single rejected field and the reason, in the
// language of the API surface.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// ValidationError aggregates every field that failed validation. Handlers
// render it as a structured 422 response; it is the contract the caller
// depends on, not just a boolean.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Campo+": "+f.Mensaje)
	}
	return "datos inválidos: " + strings.Join(msgs, "; ")
}
