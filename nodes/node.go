// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nodes implements the pipeline nodes executed by a visual
// node-graph host.
//
// Each node is a plain struct whose Execute method maps a validated input
// struct to an output struct or an error. Host-side concerns (node
// registration protocol, input marshaling, graph lifecycle) stay outside
// this library; the Catalog only describes what exists.
package nodes

import "github.com/google/uuid"

// Info describes a node to the host catalog.
type Info struct {
	Name        string
	Category    string
	Description string
}

var catalog []Info

func register(info Info) {
	catalog = append(catalog, info)
}

// Catalog lists every node in registration order.
func Catalog() []Info {
	return append([]Info(nil), catalog...)
}

// Context carries per-execution state supplied by the host.
type Context struct {
	// ID identifies one node execution so hosts can correlate outputs and
	// errors across a graph run.
	ID uuid.UUID

	// WorkDir is the base directory for relative paths in filesystem nodes.
	WorkDir string
}

// NewContext stamps a fresh execution context rooted at workDir.
func NewContext(workDir string) Context {
	return Context{ID: uuid.New(), WorkDir: workDir}
}
