package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	apiclient "github.com/donaldgifford/avito-client/internal/api/client"
)

// statusHints explains server statuses that have one usual cause.
var statusHints = map[int]string{
	http.StatusTooManyRequests:    "the daily Avito call budget is spent; see `avitoctl quota`",
	http.StatusServiceUnavailable: "the server cannot obtain an Avito token; check its client_id and client_secret",
	http.StatusBadGateway:         "Avito rejected or failed the upstream call",
	http.StatusNotFound:           "see `avitoctl jobs list` for scheduled jobs",
}

// printError writes err for a terminal user. Problem responses are shown as
// status, detail and any field errors, followed by a hint when one applies.
func printError(w io.Writer, err error) {
	var pe *apiclient.ProblemError
	if !errors.As(err, &pe) {
		fmt.Fprintln(w, "Error:", err)
		return
	}

	fmt.Fprintf(w, "Error: %s (HTTP %d)\n", pe.Title, pe.Status)
	if pe.Detail != "" {
		fmt.Fprintf(w, "  %s\n", pe.Detail)
	}
	for _, f := range pe.Errors {
		fmt.Fprintf(w, "  %s: %s\n", f.Location, f.Message)
	}
	if hint, ok := statusHints[pe.Status]; ok {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
