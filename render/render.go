// Package render marshals and validates OpenAPI documents.
package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	kin "github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when rendered document fails validation.
var ErrInvalidDocument = errors.New("invalid OpenAPI document")

// Format is a document serialization format.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ContentType returns HTTP content type of format.
func (f Format) ContentType() string {
	if f == YAML {
		return "application/yaml"
	}

	return "application/json"
}

// ParseFormat parses format name, "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q, json or yaml expected", s)
	}
}

// Marshal renders spec in format.
//
// YAML keeps property order of JSON representation.
func Marshal(spec any, f Format) ([]byte, error) {
	j, err := json.MarshalIndent(spec, "", " ")
	if err != nil {
		return nil, err
	}

	if f != YAML {
		return j, nil
	}

	var node yaml.Node

	if err := yaml.Unmarshal(j, &node); err != nil {
		return nil, fmt.Errorf("decode JSON as YAML: %w", err)
	}

	resetStyle(&node)

	return yaml.Marshal(&node)
}

func resetStyle(n *yaml.Node) {
	n.Style = 0

	for _, c := range n.Content {
		resetStyle(c)
	}
}

// Validate checks document structure.
func Validate(ctx context.Context, data []byte) error {
	loader := kin.NewLoader()

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return nil
}

// Handler serves spec in format, spec is marshaled on every request.
func Handler(spec any, f Format) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		document, err := Marshal(spec, f)
		if err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)

			return
		}

		rw.Header().Set("Content-Type", f.ContentType())

		_, err = rw.Write(document)
		if err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
		}
	})
}
