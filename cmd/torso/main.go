// torso — Synthetic test-slide generator.
//
// Usage:
//
//	torso
//
// Writes webdriver_torso_slide.png to the working directory: a white
// 768x512 frame with two or three random rectangles and a caption naming a
// random frame number. Takes no flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xob0t/torso/pkg/generator"
)

func main() {
	report(os.Stderr, run(generator.DefaultConfig()))
}

func run(cfg generator.Config) error {
	cfg.Log = os.Stdout

	fmt.Printf("Generating: %s\n", cfg.Output)
	slide, err := generator.Generate(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Image saved successfully: %s (frame #%d)\n", cfg.Output, slide.Frame)
	return nil
}

// report prints a failure to w. main returns normally afterwards, so a
// failed run exits like any other.
func report(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
