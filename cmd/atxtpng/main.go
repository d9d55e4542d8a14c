//go:build gtxt

package main

import "os"
import "fmt"
import "flag"
import "math"
import "image"
import "image/png"
import "image/color"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/atxt"

// Must be compiled with '-tags gtxt'

// Renders text into a PNG file, one line per size, and optionally dumps
// the glyph atlas next to it. Useful to inspect glyph placement without
// a window:
//   go run -tags gtxt github.com/tinne26/atxt/cmd/atxtpng -text "Hello" -out hello.png

type appConfig struct {
	text string
	sizes []uint16
	out string
	atlasOut string
	fontPaths []string
}

func parseAppConfig(args []string) (appConfig, error) {
	var config appConfig
	flags := flag.NewFlagSet("atxtpng", flag.ContinueOnError)
	flags.StringVar(&config.text, "text", "The quick brown fox", "text to render")
	flags.StringVar(&config.out, "out", "atxt.png", "output png path")
	flags.StringVar(&config.atlasOut, "atlas", "", "if not empty, path where the atlas will be dumped as png")
	minSize := flags.Uint("min", 12, "smallest text size in pixels")
	maxSize := flags.Uint("max", 48, "biggest text size in pixels")
	err := flags.Parse(args)
	if err != nil { return config, err }

	if *minSize == 0 || *maxSize < *minSize || *maxSize > math.MaxUint16 {
		return config, fmt.Errorf("invalid size range [%d, %d]", *minSize, *maxSize)
	}
	for size := *minSize; size <= *maxSize; size += (size + 3)/4 {
		config.sizes = append(config.sizes, uint16(size))
	}
	config.fontPaths = flags.Args()
	return config, nil
}

func render(fonts *atxt.Fonts, config appConfig) *image.RGBA {
	const pad = 8
	var width, height float32
	for _, size := range config.sizes {
		dims := fonts.Measure(config.text, size)
		if dims.Width > width { width = dims.Width }
		height += float32(size)*1.25
	}

	bounds := image.Rect(0, 0, int(math.Ceil(float64(width))) + 2*pad, int(math.Ceil(float64(height))) + 2*pad)
	target := image.NewRGBA(bounds)
	background := color.RGBA{ 250, 246, 238, 255 }
	for i := 0; i < len(target.Pix); i += 4 {
		target.Pix[i + 0], target.Pix[i + 1] = background.R, background.G
		target.Pix[i + 2], target.Pix[i + 3] = background.B, background.A
	}

	y := float32(pad)
	for _, size := range config.sizes {
		fonts.DrawText(target, config.text, pad, y, size, color.RGBA{ 40, 24, 16, 255 })
		y += float32(size)*1.25
	}
	return target
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil { return err }
	err = png.Encode(file, img)
	if err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func main() {
	config, err := parseAppConfig(os.Args[1 : ])
	if err != nil {
		fmt.Fprintf(os.Stderr, "atxtpng: %s\n", err)
		os.Exit(2)
	}

	fonts := atxt.NewDefaultFonts()
	if len(config.fontPaths) == 0 {
		err = fonts.LoadFontBytes(goregular.TTF)
	}
	for _, path := range config.fontPaths {
		err = fonts.LoadFontFromPath(path)
		if err != nil { break }
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "atxtpng: %s\n", err)
		os.Exit(1)
	}

	err = writePNG(config.out, render(fonts, config))
	if err == nil && config.atlasOut != "" {
		err = writePNG(config.atlasOut, fonts.Atlas().Image())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "atxtpng: %s\n", err)
		os.Exit(1)
	}
	width, height := fonts.Atlas().Size()
	fmt.Printf("%d glyphs cached, atlas %dx%d (%.1f%% used)\n",
		fonts.CachedGlyphs(), width, height, fonts.Atlas().Utilization()*100)
}
