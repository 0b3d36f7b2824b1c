// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import (
	"encoding/json"
	"fmt"
)

func init() {
	register(Info{
		Name:        "JSONLoader",
		Category:    "Flux Nodes / Json",
		Description: "Parse a JSON string; arrays yield one value per element.",
	})
}

// JSONLoaderInput is the host-supplied request for JSONLoader.
type JSONLoaderInput struct {
	// JSON is any JSON document.
	JSON string
}

// JSONLoaderOutput carries the parsed values as JSON text.
type JSONLoaderOutput struct {
	Strings []string
}

// JSONLoader parses a JSON document. A top-level array produces one output
// string per element; any other value produces a single string. Every
// element is rendered as compact JSON text.
type JSONLoader struct{}

// Execute parses the document and renders its elements.
func (JSONLoader) Execute(_ Context, in JSONLoaderInput) (JSONLoaderOutput, error) {
	var value any
	if err := json.Unmarshal([]byte(in.JSON), &value); err != nil {
		return JSONLoaderOutput{}, fmt.Errorf("parse json: %w", err)
	}

	elements := []any{value}
	if array, ok := value.([]any); ok {
		elements = array
	}

	out := make([]string, 0, len(elements))
	for _, element := range elements {
		text, err := json.Marshal(element)
		if err != nil {
			return JSONLoaderOutput{}, fmt.Errorf("render json value: %w", err)
		}
		out = append(out, string(text))
	}
	return JSONLoaderOutput{Strings: out}, nil
}
