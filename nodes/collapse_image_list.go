// Copyright 2026 The Fluxnodes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodes

import "github.com/fluxgraph/fluxnodes/tensor"

func init() {
	register(Info{
		Name:        "CollapseImageList",
		Category:    "Flux Nodes / Utility",
		Description: "Collapse a list of image lists into a single flat list.",
	})
}

// CollapseImageListInput is the host-supplied request for CollapseImageList.
type CollapseImageListInput struct {
	Images [][]*tensor.Tensor
}

// CollapseImageListOutput carries the flattened list.
type CollapseImageListOutput struct {
	Images []*tensor.Tensor
}

// CollapseImageList flattens nested image lists, preserving order.
type CollapseImageList struct{}

// Execute concatenates the inner lists in order.
func (CollapseImageList) Execute(_ Context, in CollapseImageListInput) (CollapseImageListOutput, error) {
	n := 0
	for _, list := range in.Images {
		n += len(list)
	}
	out := make([]*tensor.Tensor, 0, n)
	for _, list := range in.Images {
		out = append(out, list...)
	}
	return CollapseImageListOutput{Images: out}, nil
}
