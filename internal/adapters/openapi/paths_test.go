package openapi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathKey(t *testing.T) {
	base, err := url.Parse("https://api.example.com/v1/")
	require.NoError(t, err)

	tests := []struct {
		name string
		base *url.URL
		link string
		want string
	}{
		{"absolute url", base, "https://api.example.com/users/", "/users/"},
		{"absolute path", base, "/users/", "/users/"},
		{"relative path", base, "users/", "/v1/users/"},
		{"path template", base, "/users/{id}/", "/users/{id}/"},
		{"empty link url", base, "", "/v1/"},
		{"no base", nil, "/users/", "/users/"},
		{"no base and empty url", nil, "", "/"},
		{"unparseable url", base, "http://[::1", "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathKey(tt.base, tt.link))
		})
	}
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "/users/", joinURL("", "/users/"))
	assert.Equal(t, "https://api.example.com/users/", joinURL("https://api.example.com/", "/users/"))
	assert.Equal(t, "https://api.example.com/v2/pet/{petId}", joinURL("https://api.example.com/v2", "/pet/{petId}"))
}

func TestResponseStatus(t *testing.T) {
	assert.Equal(t, "201", responseStatus("post"))
	assert.Equal(t, "204", responseStatus("delete"))
	assert.Equal(t, "200", responseStatus("get"))
	assert.Equal(t, "200", responseStatus("put"))
	assert.Equal(t, "200", responseStatus("patch"))
}

func TestLocationIn(t *testing.T) {
	for location, in := range map[string]string{
		"query":  "query",
		"path":   "path",
		"form":   "formData",
		"body":   "body",
		"header": "header",
	} {
		assert.Equal(t, in, locationToIn(location))
		assert.Equal(t, location, inToLocation(in))
	}
}

func TestOperationID(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"get", "/users/{id}/", "get_users_id"},
		{"post", "/users/", "post_users"},
		{"get", "/", "get"},
		{"delete", "/store/order/{orderId}", "delete_store_order_orderId"},
		{"put", "/a-b.c/d", "put_a_b_c_d"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, operationID(tt.method, tt.path))
		})
	}
}
