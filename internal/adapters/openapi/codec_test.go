package openapi

import (
	"testing"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"github.com/GabrielNunesIT/openapi-codec/internal/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleDocument() *domain.Document {
	doc := &domain.Document{URL: "https://api.example.com/", Title: "Example API"}

	doc.SetLink("simple_link", &domain.Link{URL: "/simple_link/", Description: "example link"})

	doc.SetGroupLink("location", "query", &domain.Link{URL: "/location/query/", Fields: []domain.Field{
		{Name: "a", Description: "example field", Required: true},
		{Name: "b"},
	}})
	doc.SetGroupLink("location", "form", &domain.Link{URL: "/location/form/", Action: "post", Fields: []domain.Field{
		{Name: "a", Description: "example field", Required: true},
		{Name: "b"},
	}})
	doc.SetGroupLink("location", "body", &domain.Link{URL: "/location/body/", Action: "post", Fields: []domain.Field{
		{Name: "example", Location: "body", Description: "example field"},
	}})
	doc.SetGroupLink("location", "path", &domain.Link{URL: "/location/path/{id}/", Fields: []domain.Field{
		{Name: "id", Location: "path", Required: true},
	}})

	doc.SetGroupLink("encoding", "multipart", &domain.Link{URL: "/encoding/multipart/", Action: "post", Encoding: domain.EncodingMultipart, Fields: []domain.Field{
		{Name: "a", Required: true},
		{Name: "b"},
	}})
	doc.SetGroupLink("encoding", "multipart-body", &domain.Link{URL: "/encoding/multipart-body/", Action: "post", Encoding: domain.EncodingMultipart, Fields: []domain.Field{
		{Name: "example", Location: "body"},
	}})
	doc.SetGroupLink("encoding", "urlencoded", &domain.Link{URL: "/encoding/urlencoded/", Action: "post", Encoding: domain.EncodingURLEncoded, Fields: []domain.Field{
		{Name: "a", Required: true},
		{Name: "b"},
	}})
	doc.SetGroupLink("encoding", "urlencoded-body", &domain.Link{URL: "/encoding/urlencoded-body/", Action: "post", Encoding: domain.EncodingURLEncoded, Fields: []domain.Field{
		{Name: "example", Location: "body"},
	}})
	doc.SetGroupLink("encoding", "upload", &domain.Link{URL: "/encoding/upload/", Action: "post", Encoding: domain.EncodingOctetStream, Fields: []domain.Field{
		{Name: "example", Location: "body", Required: true},
	}})

	return doc
}

func TestCodecMediaType(t *testing.T) {
	assert.Equal(t, "application/openapi+json", NewCodec().MediaType())
}

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec()

	content, err := codec.Dump(exampleDocument())
	require.NoError(t, err)

	doc, err := codec.Load(content, "")
	require.NoError(t, err)

	assert.Equal(t, "Example API", doc.Title)
	assert.Equal(t, "https://api.example.com/", doc.URL)

	tests := []struct {
		keys []string
		want *domain.Link
	}{
		{
			keys: []string{"simple_link"},
			want: &domain.Link{
				URL:         "https://api.example.com/simple_link/",
				Action:      "get",
				Description: "example link",
			},
		},
		{
			keys: []string{"location", "query"},
			want: &domain.Link{
				URL:    "https://api.example.com/location/query/",
				Action: "get",
				Fields: []domain.Field{
					{Name: "a", Location: "query", Description: "example field", Required: true},
					{Name: "b", Location: "query"},
				},
			},
		},
		{
			keys: []string{"location", "path"},
			want: &domain.Link{
				URL:    "https://api.example.com/location/path/{id}/",
				Action: "get",
				Fields: []domain.Field{
					{Name: "id", Location: "path", Required: true},
				},
			},
		},
		{
			keys: []string{"location", "form"},
			want: &domain.Link{
				URL:      "https://api.example.com/location/form/",
				Action:   "post",
				Encoding: domain.EncodingJSON,
				Fields: []domain.Field{
					{Name: "a", Location: "form", Required: true, Description: "example field"},
					{Name: "b", Location: "form"},
				},
			},
		},
		{
			keys: []string{"location", "body"},
			want: &domain.Link{
				URL:      "https://api.example.com/location/body/",
				Action:   "post",
				Encoding: domain.EncodingJSON,
				Fields: []domain.Field{
					{Name: "example", Location: "body", Description: "example field"},
				},
			},
		},
		{
			keys: []string{"encoding", "multipart"},
			want: &domain.Link{
				URL:      "https://api.example.com/encoding/multipart/",
				Action:   "post",
				Encoding: domain.EncodingMultipart,
				Fields: []domain.Field{
					{Name: "a", Location: "form", Required: true},
					{Name: "b", Location: "form"},
				},
			},
		},
		{
			keys: []string{"encoding", "urlencoded"},
			want: &domain.Link{
				URL:      "https://api.example.com/encoding/urlencoded/",
				Action:   "post",
				Encoding: domain.EncodingURLEncoded,
				Fields: []domain.Field{
					{Name: "a", Location: "form", Required: true},
					{Name: "b", Location: "form"},
				},
			},
		},
		{
			keys: []string{"encoding", "upload"},
			want: &domain.Link{
				URL:      "https://api.example.com/encoding/upload/",
				Action:   "post",
				Encoding: domain.EncodingOctetStream,
				Fields: []domain.Field{
					{Name: "example", Location: "body", Required: true},
				},
			},
		},
		{
			// Swagger has no form data in the body, the field stays a body field.
			keys: []string{"encoding", "multipart-body"},
			want: &domain.Link{
				URL:      "https://api.example.com/encoding/multipart-body/",
				Action:   "post",
				Encoding: domain.EncodingMultipart,
				Fields: []domain.Field{
					{Name: "example", Location: "body"},
				},
			},
		},
		{
			keys: []string{"encoding", "urlencoded-body"},
			want: &domain.Link{
				URL:      "https://api.example.com/encoding/urlencoded-body/",
				Action:   "post",
				Encoding: domain.EncodingURLEncoded,
				Fields: []domain.Field{
					{Name: "example", Location: "body"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.keys[len(tt.keys)-1], func(t *testing.T) {
			got := doc.Link(tt.keys...)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Decoding an encoded document preserves effective values, not raw declarations.
func TestCodecRoundTripPreservesEffectiveValues(t *testing.T) {
	codec := NewCodec()
	original := exampleDocument()

	content, err := codec.Dump(original)
	require.NoError(t, err)
	decoded, err := codec.Load(content, "")
	require.NoError(t, err)

	for _, ref := range original.Links() {
		keys := []string{ref.Name}
		if ref.Group != "" {
			keys = []string{ref.Group, ref.Name}
		}

		got := decoded.Link(keys...)
		require.NotNil(t, got, "missing %v", keys)

		want := inference.Resolve(ref.Link)
		have := inference.Resolve(got)

		assert.Equal(t, want.Method, have.Method, "%v method", keys)
		assert.Equal(t, want.Encoding, have.Encoding, "%v encoding", keys)
		assert.ElementsMatch(t, want.Fields, have.Fields, "%v fields", keys)
	}
}

func TestCodecDumpIsDeterministic(t *testing.T) {
	codec := NewCodec(WithIndent("  "))

	first, err := codec.Dump(exampleDocument())
	require.NoError(t, err)
	second, err := codec.Dump(exampleDocument())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCodecDumpNilDocument(t *testing.T) {
	_, err := NewCodec().Dump(nil)
	assert.Error(t, err)
}

func TestCodecCollisionHandler(t *testing.T) {
	var got []Collision
	codec := NewCodec(WithCollisionHandler(func(c Collision) { got = append(got, c) }))

	doc := &domain.Document{}
	doc.SetLink("first", &domain.Link{URL: "/same/"})
	doc.SetLink("second", &domain.Link{URL: "/same/", Action: "GET"})

	_, err := codec.Dump(doc)
	require.NoError(t, err)

	assert.Equal(t, []Collision{{Path: "/same/", Method: "get", Replaced: "first", Replacement: "second"}}, got)
}

func TestCodecKeyClashHandler(t *testing.T) {
	var got []KeyClash
	codec := NewCodec(WithKeyClashHandler(func(c KeyClash) { got = append(got, c) }))

	doc, err := codec.Load([]byte(`{
		"swagger": "2.0",
		"info": {"title": "T"},
		"paths": {
			"/a/": {"get": {"operationId": "list", "tags": ["users"], "responses": {}}},
			"/b/": {"post": {"operationId": "users", "responses": {}}}
		}
	}`), "")
	require.NoError(t, err)

	assert.NotNil(t, doc.Link("users", "list"))
	assert.Equal(t, []KeyClash{{Key: "users", URL: "/b/", Method: "post"}}, got)
}

func TestCodecLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
	}{
		{"malformed JSON", `{"swagger": `, domain.ErrMalformedInput},
		{"not JSON at all", `swagger: "2.0"`, domain.ErrMalformedInput},
		{"top level array", `[1, 2, 3]`, domain.ErrInvalidShape},
		{"top level string", `"swagger"`, domain.ErrInvalidShape},
		{"missing paths", `{"swagger": "2.0", "info": {"title": "T"}}`, domain.ErrInvalidShape},
		{"missing info", `{"swagger": "2.0", "paths": {}}`, domain.ErrInvalidShape},
		{"paths of wrong type", `{"swagger": "2.0", "info": {"title": "T"}, "paths": []}`, domain.ErrInvalidShape},
		{"invalid UTF-8", "{\"swagger\": \"2.0\", \"info\": {\"title\": \"\xff\"}, \"paths\": {}}", domain.ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewCodec().Load([]byte(tt.input), "")
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, domain.ErrParse)
			assert.ErrorIs(t, err, tt.kind)

			var parseErr *domain.ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestCodecLoadBaseURL(t *testing.T) {
	codec := NewCodec()
	doc, err := codec.Load([]byte(`{
		"swagger": "2.0",
		"info": {"title": "T", "version": ""},
		"paths": {"/users/": {"get": {"operationId": "list", "responses": {}}}}
	}`), "https://api.example.com/")
	require.NoError(t, err)

	link := doc.Link("list")
	require.NotNil(t, link)
	assert.Equal(t, "https://api.example.com/users/", link.URL)
}

func TestCodecEmptyDocumentRoundTrip(t *testing.T) {
	codec := NewCodec()

	content, err := codec.Dump(&domain.Document{Title: "Empty"})
	require.NoError(t, err)

	doc, err := codec.Load(content, "")
	require.NoError(t, err)
	assert.Equal(t, "Empty", doc.Title)
	assert.Empty(t, doc.Content)
}
