// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import (
	"fmt"
	"os"
)

func init() {
	register(Info{
		Name:        "RenameFile",
		Category:    "Flux Nodes / Utility",
		Description: "Rename a file.",
	})
}

// RenameFileInput is the host-supplied request for RenameFile.
type RenameFileInput struct {
	From string
	To   string
}

// RenameFileOutput echoes the new path.
type RenameFileOutput struct {
	Output string
}

// RenameFile renames a file in place.
type RenameFile struct{}

// Execute renames the file and echoes the destination path.
func (RenameFile) Execute(_ Context, in RenameFileInput) (RenameFileOutput, error) {
	if err := os.Rename(in.From, in.To); err != nil {
		return RenameFileOutput{}, fmt.Errorf("rename file: %w", err)
	}
	return RenameFileOutput{Output: in.To}, nil
}
