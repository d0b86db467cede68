// Package docfile reads and writes documents in the Core JSON layout.
//
// A document file is a mapping with a "_type: document" marker, a "_meta"
// mapping holding url and title, and one key per top-level entry. Links are
// mappings marked "_type: link"; any other mapping is a group of links.
// Key order is preserved in both directions. YAML and JSON are accepted on
// read since JSON is valid YAML.
package docfile

import (
	"fmt"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"go.yaml.in/yaml/v4"
)

const (
	typeKey      = "_type"
	metaKey      = "_meta"
	typeDocument = "document"
	typeLink     = "link"
)

type metaRecord struct {
	URL   string `yaml:"url,omitempty"`
	Title string `yaml:"title,omitempty"`
}

type linkRecord struct {
	Type        string        `yaml:"_type"`
	URL         string        `yaml:"url,omitempty"`
	Action      string        `yaml:"action,omitempty"`
	Encoding    string        `yaml:"encoding,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Fields      []fieldRecord `yaml:"fields,omitempty"`
}

type fieldRecord struct {
	Name        string `yaml:"name"`
	Required    bool   `yaml:"required,omitempty"`
	Location    string `yaml:"location,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Read parses a document file.
func Read(data []byte) (*domain.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &domain.ParseError{Kind: domain.MalformedInput, Message: "malformed document file", Cause: err}
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, shapeError("empty document file")
		}
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return nil, shapeError("top level node must be a document")
	}

	doc := &domain.Document{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]

		switch key {
		case typeKey:
			if value.Value != typeDocument {
				return nil, shapeError(fmt.Sprintf("top level _type is %q, want %q", value.Value, typeDocument))
			}
		case metaKey:
			var meta metaRecord
			if err := value.Decode(&meta); err != nil {
				return nil, &domain.ParseError{Kind: domain.InvalidDocumentShape, Message: "invalid _meta", Cause: err}
			}
			doc.URL = meta.URL
			doc.Title = meta.Title
		default:
			if err := readEntry(doc, key, value); err != nil {
				return nil, err
			}
		}
	}

	return doc, nil
}

func readEntry(doc *domain.Document, key string, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return shapeError(fmt.Sprintf("entry %q must be a link or a group", key))
	}

	if nodeType(node) == typeLink {
		link, err := readLink(key, node)
		if err != nil {
			return err
		}
		doc.SetLink(key, link)
		return nil
	}

	if t := nodeType(node); t != "" {
		return shapeError(fmt.Sprintf("entry %q has unsupported _type %q", key, t))
	}

	group := &domain.Group{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, value := node.Content[i].Value, node.Content[i+1]
		if value.Kind != yaml.MappingNode || nodeType(value) != typeLink {
			return shapeError(fmt.Sprintf("entry %q.%q must be a link", key, name))
		}

		link, err := readLink(key+"."+name, value)
		if err != nil {
			return err
		}
		group.Set(name, link)
	}

	doc.SetGroup(key, group)

	return nil
}

func readLink(path string, node *yaml.Node) (*domain.Link, error) {
	var rec linkRecord
	if err := node.Decode(&rec); err != nil {
		return nil, &domain.ParseError{Kind: domain.InvalidDocumentShape, Message: fmt.Sprintf("invalid link %q", path), Cause: err}
	}

	link := &domain.Link{
		URL:         rec.URL,
		Action:      rec.Action,
		Encoding:    rec.Encoding,
		Description: rec.Description,
	}

	seen := make(map[string]bool, len(rec.Fields))
	for _, f := range rec.Fields {
		if f.Name == "" {
			return nil, shapeError(fmt.Sprintf("link %q has a field without a name", path))
		}
		if seen[f.Name] {
			return nil, shapeError(fmt.Sprintf("link %q has duplicate field %q", path, f.Name))
		}
		seen[f.Name] = true

		link.Fields = append(link.Fields, domain.Field{
			Name:        f.Name,
			Required:    f.Required,
			Location:    f.Location,
			Description: f.Description,
		})
	}

	return link, nil
}

// nodeType returns the _type marker of a mapping node, or "".
func nodeType(node *yaml.Node) string {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == typeKey {
			return node.Content[i+1].Value
		}
	}

	return ""
}

func shapeError(msg string) error {
	return &domain.ParseError{Kind: domain.InvalidDocumentShape, Message: msg}
}
