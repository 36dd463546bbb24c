// SPDX-License-Identifier: MIT
// Package: zagreb/graphio
//
// schema.go — JSON Schema gate for untrusted GraphDoc payloads.

package graphio

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// GraphDocSchema is the JSON Schema of a GraphDoc. It checks shape only;
// range, self-loop and duplicate rules are enforced by ToGraph.
const GraphDocSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["vertices", "edges"],
  "additionalProperties": false,
  "properties": {
    "vertices": {"type": "integer", "minimum": 1},
    "edges": {
      "type": "array",
      "items": {
        "type": "array",
        "minItems": 2,
        "maxItems": 2,
        "items": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

var graphDocSchema = mustSchema(GraphDocSchema)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("graphio: invalid built-in schema: %v", err))
	}

	return s
}

// ValidateJSON checks raw JSON against GraphDocSchema. Violations are
// joined into one ErrInvalidDocument error.
func ValidateJSON(data []byte) error {
	res, err := graphDocSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("ValidateJSON: %v: %w", err, ErrInvalidDocument)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}

	return fmt.Errorf("ValidateJSON: %s: %w", strings.Join(msgs, "; "), ErrInvalidDocument)
}
