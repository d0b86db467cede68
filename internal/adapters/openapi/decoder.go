package openapi

import (
	"net/url"
	"sort"
	"strings"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"github.com/GabrielNunesIT/openapi-codec/internal/inference"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"
)

const defaultScheme = "http"

// KeyClash reports a decoded link dropped because an untagged operation id
// and a tag name claimed the same document key. The tag group keeps the key.
type KeyClash struct {
	Key    string
	URL    string
	Method string
}

// Decoder converts Swagger 2.0 objects into documents.
type Decoder struct {
	// DefaultScheme is used when neither the Swagger object nor the base URL
	// name a scheme. Empty means "http".
	DefaultScheme string

	// OnKeyClash is called for every link dropped in favor of a tag group.
	OnKeyClash func(KeyClash)
}

// Decode builds the document described by spec. baseURL is the fallback
// location of the API when spec has no host.
func (d *Decoder) Decode(spec *openapi2.T, baseURL string) *domain.Document {
	base := d.baseURL(spec, baseURL)
	doc := &domain.Document{
		URL:   base,
		Title: spec.Info.Title,
	}

	paths := make([]string, 0, len(spec.Paths))
	for path := range spec.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := spec.Paths[path]
		if item == nil {
			continue
		}

		for _, method := range methodOrder {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}

			action := strings.ToLower(method)
			id := op.OperationID
			if id == "" {
				id = operationID(action, path)
			}

			link := &domain.Link{
				URL:         joinURL(base, path),
				Action:      action,
				Description: op.Description,
				Fields:      fields(item.Parameters, op.Parameters),
			}
			link.Encoding = encoding(spec, op, link)

			if len(op.Tags) > 0 && op.Tags[0] != "" {
				d.addGroupLink(doc, op.Tags[0], id, link)
			} else {
				d.addLink(doc, id, link)
			}
		}
	}

	return doc
}

func (d *Decoder) addLink(doc *domain.Document, key string, link *domain.Link) {
	if doc.Group(key) != nil {
		d.clash(key, link)
		return
	}

	doc.SetLink(key, link)
}

func (d *Decoder) addGroupLink(doc *domain.Document, group, name string, link *domain.Link) {
	if prev := doc.Link(group); prev != nil {
		d.clash(group, prev)
	}

	doc.SetGroupLink(group, name, link)
}

func (d *Decoder) clash(key string, dropped *domain.Link) {
	if d.OnKeyClash != nil {
		d.OnKeyClash(KeyClash{Key: key, URL: dropped.URL, Method: dropped.Action})
	}
}

// baseURL derives the absolute API root from host, schemes and basePath.
func (d *Decoder) baseURL(spec *openapi2.T, fallback string) string {
	if spec.Host == "" {
		return fallback
	}

	scheme := d.DefaultScheme
	if u, err := url.Parse(fallback); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}
	if len(spec.Schemes) > 0 && spec.Schemes[0] != "" {
		scheme = spec.Schemes[0]
	}
	if scheme == "" {
		scheme = defaultScheme
	}

	basePath := spec.BasePath
	if basePath == "" {
		basePath = "/"
	}

	return scheme + "://" + spec.Host + basePath
}

// encoding picks the declared media type of an operation, falling back to
// the document-wide consumes list for links that carry a body.
func encoding(spec *openapi2.T, op *openapi2.Operation, link *domain.Link) string {
	if len(op.Consumes) > 0 {
		return op.Consumes[0]
	}

	if len(spec.Consumes) == 0 {
		return ""
	}

	for _, f := range link.Fields {
		if inference.CarriesBody(f.Location) {
			return spec.Consumes[0]
		}
	}

	return ""
}

// fields reconstructs link fields from path-level and operation parameters.
// Operation parameters override path-level ones with the same name and location.
func fields(shared, own openapi2.Parameters) []domain.Field {
	var result []domain.Field

	overridden := make(map[string]bool, len(own))
	for _, p := range own {
		if p != nil {
			overridden[p.In+"/"+p.Name] = true
		}
	}

	for _, p := range shared {
		if p == nil || overridden[p.In+"/"+p.Name] {
			continue
		}
		result = append(result, parameterFields(p)...)
	}

	for _, p := range own {
		if p == nil {
			continue
		}
		result = append(result, parameterFields(p)...)
	}

	return result
}

func parameterFields(p *openapi2.Parameter) []domain.Field {
	// References are not resolved.
	if p.Ref != "" {
		return nil
	}

	if p.In != inBody {
		return []domain.Field{{
			Name:        p.Name,
			Required:    p.Required,
			Location:    inToLocation(p.In),
			Description: p.Description,
		}}
	}

	if schema := objectSchema(p.Schema); schema != nil {
		return propertyFields(schema)
	}

	return []domain.Field{{
		Name:        p.Name,
		Required:    p.Required,
		Location:    domain.LocationBody,
		Description: p.Description,
	}}
}

// objectSchema returns the schema of a body parameter when it is an object
// with properties, i.e. the shape the encoder gives aggregated form fields.
func objectSchema(ref *openapi2.SchemaRef) *openapi2.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}

	schema := ref.Value
	if !schema.Type.Is(openapi3.TypeObject) || len(schema.Properties) == 0 {
		return nil
	}

	return schema
}

// propertyFields expands an object schema into one form field per property,
// ordered by property name.
func propertyFields(schema *openapi2.Schema) []domain.Field {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]domain.Field, 0, len(names))
	for _, name := range names {
		var description string
		if prop := schema.Properties[name]; prop != nil && prop.Value != nil {
			description = prop.Value.Description
		}

		result = append(result, domain.Field{
			Name:        name,
			Required:    required[name],
			Location:    domain.LocationForm,
			Description: description,
		})
	}

	return result
}
