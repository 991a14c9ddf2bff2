// png.go — PNG file writer.
package generator

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// ErrWrite marks every failure to encode or persist the output image.
var ErrWrite = errors.New("write failed")

// EncodePNG encodes img to w. Opaque images are written as 8-bit RGB.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: encode PNG: %w", ErrWrite, err)
	}
	return nil
}

// WritePNG encodes img to a PNG file at the given path, replacing any
// existing file.
func WritePNG(output string, img image.Image) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrWrite, output, err)
	}
	defer f.Close()

	if err := EncodePNG(f, img); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrWrite, output, err)
	}
	return nil
}
