// mkicons renders the extension's placeholder icons (16, 32, 48 and
// 128 px) as PNGs. Usage: go run ./cmd/mkicons [outdir]
// The output directory defaults to assets/icons.
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/g1mliii/URL-Notes/internal/icon"
	"github.com/g1mliii/URL-Notes/internal/paths"
)

func main() {
	dir := paths.IconsDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := run(dir, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run writes one PNG per supported size into dir. A failure on a single
// icon is reported and the remaining sizes are still attempted; only an
// unusable output directory aborts the run.
func run(dir string, out io.Writer) error {
	if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
		return fmt.Errorf("create icons directory: %w", err)
	}

	for _, size := range icon.Sizes {
		name := paths.IconFileName(size)
		if err := writeIcon(filepath.Join(dir, name), size); err != nil {
			fmt.Fprintf(out, "✗ Failed to create %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "✓ Created %s\n", name)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	fmt.Fprintf(out, "\nIcons saved to: %s\n", abs)
	return nil
}

func writeIcon(path string, size int) error {
	img, err := icon.Draw(size)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return paths.AtomicWrite(path, buf.Bytes())
}
