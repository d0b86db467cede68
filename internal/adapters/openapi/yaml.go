package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/GabrielNunesIT/openapi-codec/internal/domain"
	"go.yaml.in/yaml/v4"
)

// ToJSON returns data as JSON. Input that is already JSON is returned as is;
// otherwise it is parsed as YAML and re-encoded.
func ToJSON(data []byte) ([]byte, error) {
	if json.Valid(data) {
		return data, nil
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &domain.ParseError{Kind: domain.MalformedInput, Message: "malformed JSON or YAML", Cause: err}
	}

	out, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		// YAML values such as .nan have no JSON form.
		return nil, &domain.ParseError{Kind: domain.MalformedInput, Message: "YAML not representable as JSON", Cause: err}
	}

	return out, nil
}

// normalizeYAML converts mapping keys to strings. YAML allows non-string
// keys, such as unquoted status codes, which JSON does not.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeYAML(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalizeYAML(item)
		}
		return val
	default:
		return val
	}
}
