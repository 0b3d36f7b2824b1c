// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(Info{
		Name:        "JSONPointer",
		Category:    "Flux Nodes / Json",
		Description: "Extract a value from a JSON document using RFC 6901 pointer notation.",
	})
}

// JSONPointerInput is the host-supplied request for JSONPointer.
type JSONPointerInput struct {
	// Path is an RFC 6901 JSON pointer, e.g. "/items/0/name".
	Path string

	// JSON is the document to extract from.
	JSON string
}

// JSONPointerOutput carries the extracted value.
type JSONPointerOutput struct {
	String string
}

// JSONPointer resolves a JSON pointer against a parsed document. A null or
// unresolved pointer yields an empty string rather than an error; string
// values are returned unquoted, anything else as compact JSON text.
type JSONPointer struct{}

// Execute parses the document and resolves the pointer.
func (JSONPointer) Execute(_ Context, in JSONPointerInput) (JSONPointerOutput, error) {
	var doc any
	if err := json.Unmarshal([]byte(in.JSON), &doc); err != nil {
		return JSONPointerOutput{}, fmt.Errorf("parse json: %w", err)
	}

	value, ok := resolvePointer(doc, in.Path)
	if !ok || value == nil {
		return JSONPointerOutput{}, nil
	}
	if s, isString := value.(string); isString {
		return JSONPointerOutput{String: s}, nil
	}

	text, err := json.Marshal(value)
	if err != nil {
		return JSONPointerOutput{}, fmt.Errorf("render json value: %w", err)
	}
	return JSONPointerOutput{String: string(text)}, nil
}

// resolvePointer walks an RFC 6901 pointer through decoded JSON. The empty
// pointer selects the whole document; a non-empty pointer must start with
// "/". The second return is false when any step fails to resolve.
func resolvePointer(doc any, pointer string) (any, bool) {
	if pointer == "" {
		return doc, true
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, false
	}

	current := doc
	for _, token := range strings.Split(pointer[1:], "/") {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")

		switch node := current.(type) {
		case map[string]any:
			next, ok := node[token]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}
