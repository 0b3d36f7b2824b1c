// Package main provides the fluxnodes CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	"github.com/fluxgraph/fluxnodes/imageio"
	"github.com/fluxgraph/fluxnodes/resize"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("fluxnodes %s\n", version)
	case "resize":
		if err := runResize(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "fluxnodes: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("fluxnodes - pipeline node library for visual node-graph hosts")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                       Show version")
	fmt.Println("  resize [flags] <in> <out>     Resize an image file")
}

func runResize(args []string) error {
	fs := flag.NewFlagSet("resize", flag.ExitOnError)
	width := fs.Int("width", 0, "target width in pixels")
	height := fs.Int("height", 0, "target height in pixels")
	kernelName := fs.String("kernel", "lanczos3", "interpolation kernel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: fluxnodes resize -width W -height H [-kernel K] <in> <out>")
	}

	kernel, err := resize.ParseKernel(*kernelName)
	if err != nil {
		return err
	}

	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := imageio.Decode(in)
	if err != nil {
		return err
	}
	t, err := imageio.ToTensor(img)
	if err != nil {
		return err
	}

	res, err := resize.New().Resize(resize.Request{
		Image:  t,
		Width:  *width,
		Height: *height,
		Kernel: kernel,
	})
	if err != nil {
		return err
	}

	out, err := imageio.ToImageAt(res.Image, 0)
	if err != nil {
		return err
	}
	return imaging.Save(out, fs.Arg(1))
}
