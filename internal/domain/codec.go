package domain

import "io"

// Codec converts between a document and a serialized representation.
type Codec interface {
	// MediaType returns the media type of the serialized form.
	MediaType() string

	// Load decodes data into a document. baseURL is used to resolve link URLs
	// when the data does not carry a host of its own.
	Load(data []byte, baseURL string) (*Document, error)

	// Dump encodes a document.
	Dump(doc *Document) ([]byte, error)
}

// Renderer defines the interface for human readable document renderers.
type Renderer interface {
	// Render writes doc to output in the target format.
	Render(doc *Document, output io.Writer) error

	// Format returns the output format name (e.g., "pdf", "docx").
	Format() string
}
