package avito

import (
	"context"
	"encoding/json"
	"net/http"
)

// Encoding selects how a descriptor's fields are serialized into the
// request body.
type Encoding int

const (
	// EncodingForm sends application/x-www-form-urlencoded bodies.
	EncodingForm Encoding = iota
	// EncodingJSON sends application/json bodies.
	EncodingJSON
	// EncodingMultipart sends multipart/form-data bodies built by the
	// descriptor's Multipart method.
	EncodingMultipart
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingForm:
		return "form"
	case EncodingJSON:
		return "json"
	case EncodingMultipart:
		return "multipart"
	default:
		return "unknown"
	}
}

// Method describes one API operation whose successful response decodes
// into T. Path may be computed from the descriptor's own fields. Building a
// descriptor has no side effects and validates nothing; the server is the
// authority on field values.
type Method[T any] interface {
	Path() string
	HTTPMethod() string
	Encoding() Encoding
	responseType() T
}

// Returns pins a descriptor's response type at compile time and supplies
// the defaults every descriptor starts from: POST with a form body. It also
// embeds Object so descriptors can be bound to a client.
type Returns[T any] struct {
	Object
}

// HTTPMethod returns POST. GET descriptors override it.
func (Returns[T]) HTTPMethod() string { return http.MethodPost }

// Encoding returns EncodingForm. JSON and multipart descriptors override it.
func (Returns[T]) Encoding() Encoding { return EncodingForm }

func (Returns[T]) responseType() (zero T) { return zero }

// RawPayload is the response type for operations whose payload has no
// fixed shape. Keys map to undecoded JSON values.
type RawPayload map[string]json.RawMessage

// MultipartMethod is implemented by descriptors using EncodingMultipart.
type MultipartMethod interface {
	Multipart() (*MultipartBody, error)
}

// BoundMethod is a descriptor that carries its own client reference,
// typically produced by a follow-up on a decoded object.
type BoundMethod[T any] interface {
	Method[T]
	Client() *Client
}

// Send executes m on the client it is bound to. It returns ErrUnbound when
// m has no live client.
func Send[T any](ctx context.Context, m BoundMethod[T]) (T, error) {
	c := m.Client()
	if c == nil {
		var zero T
		return zero, ErrUnbound
	}
	return Call[T](ctx, c, m)
}

type endpoint interface {
	Path() string
	HTTPMethod() string
	Encoding() Encoding
}
