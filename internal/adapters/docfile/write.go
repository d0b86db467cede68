package docfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"go.yaml.in/yaml/v4"
)

// Output formats accepted by Write.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Option configures Write.
type Option func(*writer)

type writer struct {
	indent string
}

// WithIndent sets the indentation used for JSON output. An empty indent
// produces compact JSON.
func WithIndent(indent string) Option {
	return func(w *writer) {
		w.indent = indent
	}
}

// Write serializes doc in the given format, keeping entry, link and field
// order. Empty attributes are omitted.
func Write(doc *domain.Document, format string, opts ...Option) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("document is nil")
	}

	w := &writer{indent: "  "}
	for _, opt := range opts {
		opt(w)
	}

	root := documentNode(doc)

	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		return yaml.Marshal(root)
	case FormatJSON:
		var buf bytes.Buffer
		if err := writeJSON(&buf, root); err != nil {
			return nil, err
		}
		if w.indent == "" {
			return buf.Bytes(), nil
		}

		var out bytes.Buffer
		if err := json.Indent(&out, buf.Bytes(), "", w.indent); err != nil {
			return nil, err
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}

func documentNode(doc *domain.Document) *yaml.Node {
	root := mappingNode()
	appendPair(root, typeKey, stringNode(typeDocument))

	meta := mappingNode()
	appendString(meta, "url", doc.URL)
	appendString(meta, "title", doc.Title)
	appendPair(root, metaKey, meta)

	for _, e := range doc.Content {
		switch n := e.Node.(type) {
		case *domain.Link:
			appendPair(root, e.Key, linkNode(n))
		case *domain.Group:
			group := mappingNode()
			for _, nl := range n.Links {
				appendPair(group, nl.Name, linkNode(nl.Link))
			}
			appendPair(root, e.Key, group)
		}
	}

	return root
}

func linkNode(link *domain.Link) *yaml.Node {
	node := mappingNode()
	appendPair(node, typeKey, stringNode(typeLink))
	appendString(node, "url", link.URL)
	appendString(node, "action", link.Action)
	appendString(node, "encoding", link.Encoding)
	appendString(node, "description", link.Description)

	if len(link.Fields) == 0 {
		return node
	}

	fields := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, f := range link.Fields {
		field := mappingNode()
		appendString(field, "name", f.Name)
		if f.Required {
			appendPair(field, "required", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
		}
		appendString(field, "location", f.Location)
		appendString(field, "description", f.Description)
		fields.Content = append(fields.Content, field)
	}
	appendPair(node, "fields", fields)

	return node
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func appendPair(node *yaml.Node, key string, value *yaml.Node) {
	node.Content = append(node.Content, stringNode(key), value)
}

func appendString(node *yaml.Node, key, value string) {
	if value == "" {
		return
	}
	appendPair(node, key, stringNode(value))
}

// writeJSON writes a node tree built by documentNode as compact JSON,
// keeping mapping key order.
func writeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, node.Content[i]); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		if node.Tag == "!!bool" {
			buf.WriteString(node.Value)
			return nil
		}
		encoded, err := json.Marshal(node.Value)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	default:
		return fmt.Errorf("unexpected node kind %v", node.Kind)
	}

	return nil
}
