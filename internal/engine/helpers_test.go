package engine

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/donaldgifford/avito-client/internal/avito"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAvito is a minimal Avito API for account 100. Routes not registered
// by the test answer 404.
type fakeAvito struct {
	mux *http.ServeMux

	mu    sync.Mutex
	calls []string
}

func newFakeAvito(t *testing.T) (*fakeAvito, *httptest.Server) {
	t.Helper()

	f := &fakeAvito{mux: http.NewServeMux()}
	f.handle("POST /token", `{"access_token":"t","expires_in":86400,"token_type":"Bearer"}`)
	f.handle("GET /core/v1/accounts/self", `{"id":100,"name":"Shop"}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls = append(f.calls, r.Method+" "+r.URL.RequestURI())
		f.mu.Unlock()
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAvito) handle(pattern, body string) {
	f.handleStatus(pattern, http.StatusOK, body)
}

func (f *fakeAvito) handleStatus(pattern string, status int, body string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// called returns the requests seen so far, excluding token and self info.
func (f *fakeAvito) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		if c == "POST /token" || c == "GET /core/v1/accounts/self" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func newTestClient(srv *httptest.Server) *avito.Client {
	return avito.New(
		avito.WithBaseURL(srv.URL),
		avito.WithCredentials("client-1", "secret"),
	)
}
