package avito

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/google/go-querystring/query"
)

// defaulter is implemented by descriptors whose zero-valued fields have a
// wire default (for example a grant type). withDefaults returns a filled-in
// copy and leaves the descriptor itself unchanged.
type defaulter interface {
	withDefaults() any
}

// encodeBody serializes m according to its encoding. GET descriptors send
// no body.
func encodeBody(m endpoint) (io.Reader, string, error) {
	if m.HTTPMethod() == http.MethodGet {
		return http.NoBody, "", nil
	}

	var payload any = m
	if d, ok := m.(defaulter); ok {
		payload = d.withDefaults()
	}

	switch m.Encoding() {
	case EncodingJSON:
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling JSON body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil

	case EncodingMultipart:
		mm, ok := m.(MultipartMethod)
		if !ok {
			return nil, "", errors.New("multipart encoding requires a Multipart method")
		}
		mb, err := mm.Multipart()
		if err != nil {
			return nil, "", err
		}
		return mb.encode()

	default:
		values, err := query.Values(payload)
		if err != nil {
			return nil, "", fmt.Errorf("encoding form body: %w", err)
		}
		return strings.NewReader(values.Encode()), "application/x-www-form-urlencoded", nil
	}
}

// MultipartBody is a multipart/form-data request body.
type MultipartBody struct {
	Fields []FormField
	Files  []FileField
}

// FormField is a plain multipart field.
type FormField struct {
	Name  string
	Value string
}

// FileField is a file part of a multipart body.
type FileField struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

func (m *MultipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("writing field %q: %w", f.Name, err)
		}
	}

	for _, f := range m.Files {
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(
			`form-data; name="%s"; filename="%s"`,
			escapeQuotes(f.FieldName), escapeQuotes(f.FileName),
		))
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("creating part %q: %w", f.FieldName, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("writing part %q: %w", f.FieldName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
