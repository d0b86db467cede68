// Package inference resolves the effective method, field locations and
// request encoding of a link from its partial declarations.
package inference

import (
	"strings"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
)

const defaultMethod = "get"

// ResolvedField is a field whose location has been inferred.
type ResolvedField struct {
	Name        string
	Required    bool
	Location    string
	Description string
}

// Resolved holds the effective values of a link.
type Resolved struct {
	Method   string
	Encoding string
	Fields   []ResolvedField
}

// Method returns the lowercase HTTP method for action, "get" when unset.
func Method(action string) string {
	method := strings.ToLower(strings.TrimSpace(action))
	if method == "" {
		return defaultMethod
	}

	return method
}

// defaultLocation is the location of a field that declares none: query for
// get and delete, form otherwise.
func defaultLocation(method string) string {
	switch method {
	case "get", "delete":
		return domain.LocationQuery
	default:
		return domain.LocationForm
	}
}

// effectiveEncoding applies the encoding rules: links carrying form or body
// fields default to JSON, and a declared encoding is dropped when there is
// nothing to encode.
func effectiveEncoding(declared string, hasBody bool) string {
	switch {
	case declared == "" && hasBody:
		return domain.EncodingJSON
	case declared != "" && !hasBody:
		return ""
	default:
		return declared
	}
}

// Resolve computes method, encoding and field locations of link in one pass.
func Resolve(link *domain.Link) Resolved {
	method := Method(link.Action)
	fields := make([]ResolvedField, 0, len(link.Fields))
	hasBody := false

	for _, f := range link.Fields {
		loc := f.Location
		if loc == "" {
			loc = defaultLocation(method)
		}
		hasBody = hasBody || CarriesBody(loc)

		fields = append(fields, ResolvedField{
			Name:        f.Name,
			Required:    f.Required,
			Location:    loc,
			Description: f.Description,
		})
	}

	return Resolved{
		Method:   method,
		Encoding: effectiveEncoding(link.Encoding, hasBody),
		Fields:   fields,
	}
}

// CarriesBody reports whether a field at location travels in the request body.
func CarriesBody(location string) bool {
	return location == domain.LocationForm || location == domain.LocationBody
}

// IsFormEncoding reports whether encoding sends fields as individual form parts.
func IsFormEncoding(encoding string) bool {
	return encoding == domain.EncodingMultipart || encoding == domain.EncodingURLEncoded
}
