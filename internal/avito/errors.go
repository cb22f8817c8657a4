package avito

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnbound is returned by Send when a descriptor has no live client.
	ErrUnbound = errors.New("method is not bound to a client")

	// ErrNoCredentials is wrapped in an AuthError when a token is needed but
	// the client has neither a token nor client credentials.
	ErrNoCredentials = errors.New("no client credentials configured")

	errNotJSON = errors.New("response is not valid JSON")
)

// TransportError reports a failure below the API envelope: the request could
// not be sent, the body could not be read, or the body was not the JSON the
// service promises. StatusCode is zero for network failures.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("avito transport error: %v", e.Err)
	}
	return fmt.Sprintf("avito transport error (status %d): %v: %s", e.StatusCode, e.Err, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a well-formed {"error": {...}} envelope returned by the service.
type APIError struct {
	StatusCode int
	Code       *int
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == nil {
		return fmt.Sprintf("avito API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("avito API error (status %d): %d %s", e.StatusCode, *e.Code, e.Message)
}

// ExpiredTokenError is the {"result": {"message", "status"}} envelope the
// service uses to signal that the bearer token is no longer accepted.
type ExpiredTokenError struct {
	StatusCode int
	Message    string
	Status     bool
}

func (e *ExpiredTokenError) Error() string {
	return fmt.Sprintf("avito token rejected (status %d): %s", e.StatusCode, e.Message)
}

// AuthError reports that acquiring or refreshing the bearer token failed.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("avito auth failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

type errorEnvelope struct {
	Error            json.RawMessage `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

type errorBody struct {
	Code    *int   `json:"code"`
	Message string `json:"message"`
}

type expiredEnvelope struct {
	Result *struct {
		Message *string `json:"message"`
		Status  bool    `json:"status"`
	} `json:"result"`
}

// failureDecoder tries to interpret a non-200 JSON body. It returns nil when
// the body does not have the shape it understands.
type failureDecoder func(status int, body []byte) error

// failureChain is tried in order; the first decoder that recognizes the
// body wins. Anything left over becomes a TransportError.
var failureChain = []failureDecoder{
	decodeAPIError,
	decodeExpiredToken,
}

func decodeAPIError(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Error) == 0 ||
		string(env.Error) == "null" {
		return nil
	}

	var obj errorBody
	if err := json.Unmarshal(env.Error, &obj); err == nil {
		return &APIError{StatusCode: status, Code: obj.Code, Message: obj.Message}
	}

	// The token endpoint uses the OAuth shape: {"error": "...", "error_description": "..."}.
	var msg string
	if err := json.Unmarshal(env.Error, &msg); err != nil {
		return nil
	}
	if env.ErrorDescription != "" {
		msg += ": " + env.ErrorDescription
	}
	return &APIError{StatusCode: status, Message: msg}
}

func decodeExpiredToken(status int, body []byte) error {
	var env expiredEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Result == nil ||
		env.Result.Message == nil {
		return nil
	}
	return &ExpiredTokenError{
		StatusCode: status,
		Message:    *env.Result.Message,
		Status:     env.Result.Status,
	}
}

// decodeResponse turns a raw response into either a decoded value in out or
// one of the typed errors.
func decodeResponse(status int, body []byte, out any) error {
	if !json.Valid(body) {
		return &TransportError{StatusCode: status, Body: string(body), Err: errNotJSON}
	}

	if status != http.StatusOK {
		for _, decode := range failureChain {
			if err := decode(status, body); err != nil {
				return err
			}
		}
		return &TransportError{
			StatusCode: status,
			Body:       string(body),
			Err:        errors.New("unrecognized error response"),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{
			StatusCode: status,
			Body:       string(body),
			Err:        fmt.Errorf("decoding response: %w", err),
		}
	}
	return nil
}

// isTokenRejection reports whether err means the bearer token was not
// accepted and a refresh is worth one retry.
func isTokenRejection(err error) bool {
	var expired *ExpiredTokenError
	if errors.As(err, &expired) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return tokenMessage(apiErr.Message)
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) && transportErr.StatusCode != 0 {
		return tokenMessage(transportErr.Body)
	}

	return false
}

func tokenMessage(msg string) bool {
	m := strings.ToLower(strings.TrimSpace(msg))
	return strings.Contains(m, "access token expired") ||
		strings.HasPrefix(m, "unauthorized_") ||
		strings.Contains(m, "invalid access token")
}
