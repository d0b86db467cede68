// Package renderers provides human readable renderings of documents in various formats.
package renderers

import (
	"fmt"
	"strings"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"github.com/GabrielNunesIT/openapi-codec/internal/inference"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultSection holds the links stored directly under the document.
const defaultSection = "Default"

type section struct {
	name      string
	title     string
	endpoints []endpoint
}

type endpoint struct {
	name        string
	url         string
	description string
	resolved    inference.Resolved
}

// sections groups the links of doc for rendering. Top-level links come first
// under the default section, followed by one section per group in document
// order. Empty groups are skipped.
func sections(doc *domain.Document) []section {
	var (
		result []section
		index  = make(map[string]int)
	)

	for _, ref := range doc.Links() {
		i, ok := index[ref.Group]
		if !ok {
			name := ref.Group
			if name == "" {
				name = defaultSection
			}

			i = len(result)
			index[ref.Group] = i
			result = append(result, section{name: name, title: sectionTitle(name)})
		}

		result[i].endpoints = append(result[i].endpoints, endpoint{
			name:        ref.Name,
			url:         ref.Link.URL,
			description: ref.Link.Description,
			resolved:    inference.Resolve(ref.Link),
		})
	}

	return result
}

// sectionTitle turns a group key such as "user_accounts" into "User Accounts".
func sectionTitle(name string) string {
	words := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.English, cases.NoLower).String(words)
}

// formatMethod returns a styled method string.
func formatMethod(method string) string {
	return strings.ToUpper(method)
}

// formatField returns a one line description of a field.
func formatField(f inference.ResolvedField) string {
	required := ""
	if f.Required {
		required = " (required)"
	}

	if f.Description == "" {
		return fmt.Sprintf("%s (%s)%s", f.Name, f.Location, required)
	}

	return fmt.Sprintf("%s (%s): %s%s", f.Name, f.Location, f.Description, required)
}

// formatEncoding returns the request encoding, or "None" for bodiless links.
func formatEncoding(encoding string) string {
	if encoding == "" {
		return "None"
	}

	return encoding
}

func documentTitle(doc *domain.Document) string {
	if doc.Title == "" {
		return "API Reference"
	}

	return doc.Title
}
