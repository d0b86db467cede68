package domain

// SwaggerVersion is the only Swagger version the codec emits.
const SwaggerVersion = "2.0"

// Swagger is the root of an encoded Swagger 2.0 document.
type Swagger struct {
	Swagger string   `json:"swagger"`
	Info    Info     `json:"info"`
	Host    string   `json:"host"`
	Schemes []string `json:"schemes,omitempty"`
	Paths   Paths    `json:"paths"`
}

// Info carries the API title. Version is always empty, documents have no version.
type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// Paths maps a URL path to its operations.
type Paths map[string]PathItem

// PathItem maps a lowercase HTTP method to an operation.
type PathItem map[string]*Operation

// Operation represents an HTTP operation on a path.
type Operation struct {
	OperationID string              `json:"operationId,omitempty"`
	Description string              `json:"description"`
	Tags        []string            `json:"tags,omitempty"`
	Consumes    []string            `json:"consumes,omitempty"`
	Responses   map[string]Response `json:"responses"`
	Parameters  []Parameter         `json:"parameters"`
}

// Parameter represents a request parameter.
// Type is set for query, path and formData parameters, Schema for body parameters.
type Parameter struct {
	Name        string  `json:"name"`
	Required    bool    `json:"required"`
	In          string  `json:"in"` // query, path, formData, body
	Description string  `json:"description"`
	Type        string  `json:"type,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
}

// Response represents an API response.
type Response struct {
	Description string `json:"description"`
}

// Schema represents the JSON schema of a body parameter.
type Schema struct {
	Type       string              `json:"type,omitempty"`
	Format     string              `json:"format,omitempty"`
	Properties map[string]Property `json:"properties,omitempty"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes one member of an object schema.
type Property struct {
	Description string `json:"description"`
}
