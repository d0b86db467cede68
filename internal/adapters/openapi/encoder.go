package openapi

import (
	"net/url"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"github.com/GabrielNunesIT/openapi-codec/internal/inference"
)

// Collision reports a link that replaced an earlier operation on the same
// path and method.
type Collision struct {
	Path        string
	Method      string
	Replaced    string // operationId of the overwritten operation
	Replacement string // operationId of the operation that won
}

// Encoder converts documents into Swagger 2.0 objects.
type Encoder struct {
	// OnCollision is called whenever a later link overwrites an operation.
	// The later link always wins; the callback only observes.
	OnCollision func(Collision)
}

// Encode builds the Swagger object of doc.
func (e *Encoder) Encode(doc *domain.Document) *domain.Swagger {
	swagger := &domain.Swagger{
		Swagger: domain.SwaggerVersion,
		Info: domain.Info{
			Title:   doc.Title,
			Version: "",
		},
		Paths: make(domain.Paths),
	}

	base, err := url.Parse(doc.URL)
	if err == nil {
		swagger.Host = base.Host
		if base.Scheme != "" {
			swagger.Schemes = []string{base.Scheme}
		}
	}

	for _, ref := range doc.Links() {
		resolved := inference.Resolve(ref.Link)
		path := pathKey(base, ref.Link.URL)

		item, ok := swagger.Paths[path]
		if !ok {
			item = make(domain.PathItem)
			swagger.Paths[path] = item
		}

		op := e.operation(ref, resolved)

		if prev, exists := item[resolved.Method]; exists && e.OnCollision != nil {
			e.OnCollision(Collision{
				Path:        path,
				Method:      resolved.Method,
				Replaced:    prev.OperationID,
				Replacement: op.OperationID,
			})
		}

		item[resolved.Method] = op
	}

	return swagger
}

func (e *Encoder) operation(ref domain.LinkRef, resolved inference.Resolved) *domain.Operation {
	op := &domain.Operation{
		OperationID: ref.Name,
		Description: ref.Link.Description,
		Responses: map[string]domain.Response{
			responseStatus(resolved.Method): {Description: ""},
		},
		Parameters: parameters(resolved),
	}

	if resolved.Encoding != "" {
		op.Consumes = []string{resolved.Encoding}
	}

	if ref.Group != "" {
		op.Tags = []string{ref.Group}
	}

	return op
}

// parameters partitions the resolved fields of a link into Swagger parameters.
// Form fields of non form encodings are folded into a single "data" body
// parameter appended after the others.
func parameters(resolved inference.Resolved) []domain.Parameter {
	params := make([]domain.Parameter, 0, len(resolved.Fields))
	properties := make(map[string]domain.Property)
	var required []string

	for _, f := range resolved.Fields {
		switch f.Location {
		case domain.LocationForm:
			if inference.IsFormEncoding(resolved.Encoding) {
				params = append(params, stringParameter(f))
				continue
			}

			properties[f.Name] = domain.Property{Description: f.Description}
			if f.Required {
				required = append(required, f.Name)
			}
		case domain.LocationBody:
			schema := &domain.Schema{}
			if resolved.Encoding == domain.EncodingOctetStream {
				schema = &domain.Schema{Type: typeString, Format: formatBinary}
			}

			params = append(params, domain.Parameter{
				Name:        f.Name,
				Required:    f.Required,
				In:          inBody,
				Description: f.Description,
				Schema:      schema,
			})
		default:
			params = append(params, stringParameter(f))
		}
	}

	if len(properties) > 0 {
		params = append(params, domain.Parameter{
			Name:     dataParameter,
			Required: len(required) > 0,
			In:       inBody,
			Schema: &domain.Schema{
				Type:       typeObject,
				Properties: properties,
				Required:   required,
			},
		})
	}

	return params
}

func stringParameter(f inference.ResolvedField) domain.Parameter {
	return domain.Parameter{
		Name:        f.Name,
		Required:    f.Required,
		In:          locationToIn(f.Location),
		Description: f.Description,
		Type:        typeString,
	}
}
