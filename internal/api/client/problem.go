package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ProblemError is an error response from the serve API. The server answers
// failures with application/problem+json; bodies that are not a problem
// document keep only the status and the raw text.
type ProblemError struct {
	Status int            `json:"status"`
	Title  string         `json:"title,omitempty"`
	Detail string         `json:"detail,omitempty"`
	Errors []ProblemField `json:"errors,omitempty"`
}

// ProblemField is one validation failure inside a problem document.
type ProblemField struct {
	Message  string `json:"message,omitempty"`
	Location string `json:"location,omitempty"`
	Value    any    `json:"value,omitempty"`
}

func (e *ProblemError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "server returned %d", e.Status)
	if e.Title != "" {
		b.WriteString(" " + e.Title)
	}
	if e.Detail != "" {
		b.WriteString(": " + e.Detail)
	}
	for _, f := range e.Errors {
		b.WriteString("; " + f.Location + " " + f.Message)
	}
	return b.String()
}

// IsStatus reports whether err is a ProblemError with the given status.
func IsStatus(err error, status int) bool {
	var pe *ProblemError
	return errors.As(err, &pe) && pe.Status == status
}

func decodeProblem(status int, contentType string, raw []byte) *ProblemError {
	pe := &ProblemError{}
	trimmed := strings.TrimSpace(string(raw))
	if isJSON(contentType) || strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal(raw, pe); err != nil {
			pe = &ProblemError{Detail: trimmed}
		}
	} else {
		pe.Detail = trimmed
	}
	// The status line wins over a missing or stale body field.
	pe.Status = status
	if pe.Title == "" {
		pe.Title = http.StatusText(status)
	}
	return pe
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(contentType, "application/problem+json") ||
		strings.HasPrefix(contentType, "application/json")
}
