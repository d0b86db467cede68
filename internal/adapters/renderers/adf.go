package renderers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
)

const adfFormat = "confluence"

// ADFRenderer renders documents as Atlassian Document Format (ADF) for Confluence.
type ADFRenderer struct{}

// NewADFRenderer creates a new ADF renderer.
func NewADFRenderer() *ADFRenderer {
	return &ADFRenderer{}
}

// Format returns the output format name.
func (r *ADFRenderer) Format() string {
	return adfFormat
}

// ADF node types.
type adfDocument struct {
	Version int       `json:"version"`
	Type    string    `json:"type"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Attrs   *adfAttrs `json:"attrs,omitempty"`
	Content []adfNode `json:"content,omitempty"`
	Text    string    `json:"text,omitempty"`
	Marks   []adfMark `json:"marks,omitempty"`
}

type adfAttrs struct {
	Level int `json:"level,omitempty"`
}

type adfMark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Render writes doc as ADF JSON.
func (r *ADFRenderer) Render(doc *domain.Document, output io.Writer) error {
	adf := &adfDocument{
		Version: 1,
		Type:    "doc",
		Content: []adfNode{},
	}

	adf.Content = append(adf.Content, r.heading(documentTitle(doc), 1))
	if doc.URL != "" {
		adf.Content = append(adf.Content, adfNode{
			Type: "paragraph",
			Content: []adfNode{
				{Type: "text", Text: "Base URL: "},
				r.linkText(doc.URL),
			},
		})
	}

	for _, s := range sections(doc) {
		adf.Content = append(adf.Content, r.heading(s.title, 2))

		for _, ep := range s.endpoints {
			adf.Content = append(adf.Content, r.endpointNodes(ep)...)
		}
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(adf); err != nil {
		return fmt.Errorf("failed to encode ADF: %w", err)
	}

	return nil
}

func (r *ADFRenderer) heading(text string, level int) adfNode {
	return adfNode{
		Type:  "heading",
		Attrs: &adfAttrs{Level: level},
		Content: []adfNode{
			{Type: "text", Text: text},
		},
	}
}

func (r *ADFRenderer) paragraph(text string) adfNode {
	return adfNode{
		Type: "paragraph",
		Content: []adfNode{
			{Type: "text", Text: text},
		},
	}
}

func (r *ADFRenderer) codeText(text string) adfNode {
	return adfNode{
		Type: "text",
		Text: text,
		Marks: []adfMark{
			{Type: "code"},
		},
	}
}

func (r *ADFRenderer) linkText(url string) adfNode {
	return adfNode{
		Type: "text",
		Text: url,
		Marks: []adfMark{
			{Type: "link", Attrs: map[string]any{"href": url}},
		},
	}
}

func (r *ADFRenderer) endpointNodes(ep endpoint) []adfNode {
	nodes := []adfNode{
		r.heading(ep.name, 3),
		{
			Type: "paragraph",
			Content: []adfNode{
				{Type: "text", Text: formatMethod(ep.resolved.Method), Marks: []adfMark{{Type: "strong"}}},
				{Type: "text", Text: " "},
				r.codeText(ep.url),
			},
		},
	}

	if ep.description != "" {
		nodes = append(nodes, r.paragraph(ep.description))
	}

	if ep.resolved.Encoding != "" {
		nodes = append(nodes, adfNode{
			Type: "paragraph",
			Content: []adfNode{
				{Type: "text", Text: "Encoding: "},
				r.codeText(ep.resolved.Encoding),
			},
		})
	}

	if len(ep.resolved.Fields) > 0 {
		nodes = append(nodes, r.heading("Fields", 4))
		nodes = append(nodes, r.fieldList(ep))
	}

	// Divider between endpoints
	nodes = append(nodes, adfNode{Type: "rule"})

	return nodes
}

func (r *ADFRenderer) fieldList(ep endpoint) adfNode {
	items := make([]adfNode, 0, len(ep.resolved.Fields))

	for _, f := range ep.resolved.Fields {
		text := fmt.Sprintf(" (%s)", f.Location)
		if f.Description != "" {
			text += ": " + f.Description
		}
		if f.Required {
			text += " (required)"
		}

		items = append(items, adfNode{
			Type: "listItem",
			Content: []adfNode{
				{
					Type: "paragraph",
					Content: []adfNode{
						r.codeText(f.Name),
						{Type: "text", Text: text},
					},
				},
			},
		})
	}

	return adfNode{
		Type:    "bulletList",
		Content: items,
	}
}
