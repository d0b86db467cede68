// Package openapi converts documents to and from Swagger 2.0 (OpenAPI 2.0) JSON.
package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"github.com/getkin/kin-openapi/openapi2"
)

// MediaType identifies the Swagger JSON representation of a document.
const MediaType = "application/openapi+json"

// requiredKeys must be present at the top level of a Swagger object.
var requiredKeys = []string{"info", "paths"}

var _ domain.Codec = (*Codec)(nil)

// Codec loads and dumps documents as Swagger 2.0 JSON.
type Codec struct {
	encoder Encoder
	decoder Decoder
	indent  string
}

// Option configures a Codec.
type Option func(*Codec)

// WithIndent makes Dump emit indented JSON.
func WithIndent(indent string) Option {
	return func(c *Codec) {
		c.indent = indent
	}
}

// WithDefaultScheme sets the scheme used by Load when the input names none.
func WithDefaultScheme(scheme string) Option {
	return func(c *Codec) {
		c.decoder.DefaultScheme = scheme
	}
}

// WithCollisionHandler registers a callback for operations overwritten during Dump.
func WithCollisionHandler(fn func(Collision)) Option {
	return func(c *Codec) {
		c.encoder.OnCollision = fn
	}
}

// WithKeyClashHandler registers a callback for links dropped during Load
// because a tag group holds the same key.
func WithKeyClashHandler(fn func(KeyClash)) Option {
	return func(c *Codec) {
		c.decoder.OnKeyClash = fn
	}
}

// NewCodec creates a new Swagger codec.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// MediaType returns the media type handled by the codec.
func (c *Codec) MediaType() string {
	return MediaType
}

// Load parses Swagger JSON into a document.
func (c *Codec) Load(data []byte, baseURL string) (*domain.Document, error) {
	// encoding/json substitutes U+FFFD for invalid bytes instead of failing.
	if !utf8.Valid(data) {
		return nil, &domain.ParseError{Kind: domain.MalformedInput, Message: "input is not valid UTF-8"}
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &domain.ParseError{Kind: domain.MalformedInput, Message: "malformed JSON", Cause: err}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &domain.ParseError{Kind: domain.InvalidDocumentShape, Message: "top level node must be a document"}
	}

	for _, key := range requiredKeys {
		if _, ok := obj[key]; !ok {
			return nil, &domain.ParseError{
				Kind:    domain.InvalidDocumentShape,
				Message: fmt.Sprintf("missing required key %q", key),
			}
		}
	}

	var spec openapi2.T
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, &domain.ParseError{Kind: domain.InvalidDocumentShape, Message: "not a Swagger 2.0 object", Cause: err}
	}

	return c.decoder.Decode(&spec, baseURL), nil
}

// Dump encodes doc as Swagger JSON. The output is deterministic.
func (c *Codec) Dump(doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("nil document")
	}

	swagger := c.encoder.Encode(doc)

	if c.indent != "" {
		return json.MarshalIndent(swagger, "", c.indent)
	}

	return json.Marshal(swagger)
}
