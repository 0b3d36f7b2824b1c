// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func init() {
	register(Info{
		Name:        "MoveFile",
		Category:    "Flux Nodes / Utility",
		Description: "Move a file into a directory, creating the directory as needed.",
	})
}

// MoveFileInput is the host-supplied request for MoveFile.
type MoveFileInput struct {
	// File is the source file path.
	File string

	// MoveTo is the destination directory.
	MoveTo string
}

// MoveFileOutput reports the final destination path.
type MoveFileOutput struct {
	Output string
}

// MoveFile moves a file into a destination directory, keeping its base
// name. Missing destination directories are created first.
type MoveFile struct{}

// Execute creates the destination directory, moves the file and reports
// where it ended up.
func (MoveFile) Execute(_ Context, in MoveFileInput) (MoveFileOutput, error) {
	name := filepath.Base(in.File)
	if in.File == "" || name == "." || name == string(filepath.Separator) {
		return MoveFileOutput{}, errors.New("source path has no filename")
	}

	if err := os.MkdirAll(in.MoveTo, 0o755); err != nil {
		return MoveFileOutput{}, fmt.Errorf("create destination directory: %w", err)
	}

	destination := filepath.Join(in.MoveTo, name)
	if err := os.Rename(in.File, destination); err != nil {
		return MoveFileOutput{}, fmt.Errorf("move file: %w", err)
	}
	return MoveFileOutput{Output: destination}, nil
}
