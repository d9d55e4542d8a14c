//go:build gtxt

package main

import "testing"
import "image/color"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/atxt"

func TestParseAppConfig(t *testing.T) {
	config, err := parseAppConfig([]string{ "-min", "10", "-max", "20", "-text", "hi" })
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if config.text != "hi" { t.Fatalf("unexpected text %q", config.text) }
	expected := []uint16{ 10, 13, 17 }
	if len(config.sizes) != len(expected) { t.Fatalf("expected sizes %v, got %v", expected, config.sizes) }
	for i := range expected {
		if config.sizes[i] != expected[i] { t.Fatalf("expected sizes %v, got %v", expected, config.sizes) }
	}

	_, err = parseAppConfig([]string{ "-min", "30", "-max", "20" })
	if err == nil { t.Fatal("expected error for inverted range") }
}

func TestRender(t *testing.T) {
	fonts := atxt.NewDefaultFonts()
	err := fonts.LoadFontBytes(goregular.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	img := render(fonts, appConfig{ text: "Hello", sizes: []uint16{ 16, 32 } })
	background := color.RGBA{ 250, 246, 238, 255 }
	inked := 0
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y) != background { inked += 1 }
		}
	}
	if inked == 0 { t.Fatal("expected some pixels to be drawn") }
	if fonts.CachedGlyphs() != 8 { t.Fatalf("expected 8 cached glyphs, got %d", fonts.CachedGlyphs()) }
}
