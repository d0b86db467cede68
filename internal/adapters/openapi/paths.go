package openapi

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
)

const (
	inQuery    = "query"
	inPath     = "path"
	inFormData = "formData"
	inBody     = "body"

	typeString   = "string"
	typeObject   = "object"
	formatBinary = "binary"

	// dataParameter names the body parameter that aggregates JSON form fields.
	dataParameter = "data"
)

// methodOrder is the order in which the decoder visits the operations of a path.
var methodOrder = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPost,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodHead,
	http.MethodPatch,
}

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// pathKey returns the Swagger path of a link URL, resolved against base.
// URLs that do not parse are used verbatim.
func pathKey(base *url.URL, linkURL string) string {
	ref, err := url.Parse(linkURL)
	if err != nil {
		return linkURL
	}

	if base != nil {
		ref = base.ResolveReference(ref)
	}

	if ref.Path == "" {
		return "/"
	}

	return ref.Path
}

// joinURL appends a Swagger path to a base URL without escaping path templates.
func joinURL(base, path string) string {
	if base == "" {
		return path
	}

	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// responseStatus returns the status code advertised for a method.
func responseStatus(method string) string {
	switch method {
	case "post":
		return "201"
	case "delete":
		return "204"
	default:
		return "200"
	}
}

// locationToIn translates a field location into a Swagger "in" value.
// Locations are identical except form -> formData.
func locationToIn(location string) string {
	if location == domain.LocationForm {
		return inFormData
	}

	return location
}

// inToLocation reverses locationToIn.
func inToLocation(in string) string {
	if in == inFormData {
		return domain.LocationForm
	}

	return in
}

// operationID synthesizes an id for operations that declare none,
// e.g. ("get", "/users/{id}/") -> "get_users_id".
func operationID(method, path string) string {
	slug := strings.NewReplacer("{", "", "}", "").Replace(path)
	slug = strings.Trim(nonAlphanumeric.ReplaceAllString(slug, "_"), "_")

	if slug == "" {
		return method
	}

	return method + "_" + slug
}
