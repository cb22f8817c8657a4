package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// withoutSchema drops the $schema link huma adds to response bodies.
func withoutSchema(t *testing.T, body []byte) string {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	delete(m, "$schema")

	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}
