package renderers

import (
	"fmt"
	"io"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const docxFormat = "docx"

// DocxRenderer renders documents as Word (DOCX) files.
type DocxRenderer struct{}

// NewDocxRenderer creates a new DOCX renderer.
func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// Format returns the output format name.
func (r *DocxRenderer) Format() string {
	return docxFormat
}

// Render writes doc in DOCX format.
func (r *DocxRenderer) Render(doc *domain.Document, output io.Writer) error {
	document, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	r.addTitle(document, doc)

	for _, s := range sections(doc) {
		r.addSection(document, s)
	}

	if err := document.Write(output); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (r *DocxRenderer) addTitle(document *docx.RootDoc, doc *domain.Document) {
	_, _ = document.AddHeading(documentTitle(doc), 0) // Level 0 = Title style
	if doc.URL != "" {
		document.AddParagraph(fmt.Sprintf("Base URL: %s", doc.URL))
	}
	document.AddEmptyParagraph()
}

func (r *DocxRenderer) addSection(document *docx.RootDoc, s section) {
	_, _ = document.AddHeading(s.title, 1)

	for _, ep := range s.endpoints {
		r.addEndpoint(document, ep)
	}
}

func (r *DocxRenderer) addEndpoint(document *docx.RootDoc, ep endpoint) {
	_, _ = document.AddHeading(ep.name, 2)
	document.AddParagraph(fmt.Sprintf("%s %s", formatMethod(ep.resolved.Method), ep.url))

	if ep.description != "" {
		document.AddParagraph(ep.description)
	}

	if ep.resolved.Encoding != "" {
		document.AddParagraph(fmt.Sprintf("Encoding: %s", ep.resolved.Encoding))
	}

	if len(ep.resolved.Fields) > 0 {
		_, _ = document.AddHeading("Fields", 3)

		for _, f := range ep.resolved.Fields {
			document.AddParagraph(fmt.Sprintf("• %s", formatField(f)))
		}
	}

	document.AddEmptyParagraph()
}
