package avito_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/donaldgifford/avito-client/internal/avito"
)

const (
	selfJSON    = `{"id":100,"name":"Test Shop","email":"shop@example.com"}`
	expiredJSON = `{"result":{"message":"access token expired","status":false}}`
)

// tokenJSON returns a valid token endpoint response.
func tokenJSON(token string) []byte {
	return []byte(fmt.Sprintf(
		`{"access_token":%q,"expires_in":86400,"token_type":"Bearer"}`,
		token,
	))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// tokenIssuer serves the token endpoint, handing out token-1, token-2, ...
type tokenIssuer struct {
	calls atomic.Int32
}

func (ti *tokenIssuer) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	n := ti.calls.Add(1)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(tokenJSON(fmt.Sprintf("token-%d", n)))
}

// newServer routes /token to issuer and everything else to api.
func newServer(t *testing.T, issuer http.Handler, api http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/token" {
			issuer.ServeHTTP(w, r)
			return
		}
		api(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server, opts ...avito.Option) *avito.Client {
	base := []avito.Option{
		avito.WithBaseURL(srv.URL),
		avito.WithCredentials("test-id", "test-secret"),
	}
	return avito.New(append(base, opts...)...)
}
