//go:build !gtxt

package main

import "os"
import "fmt"
import "flag"
import "math"
import "time"
import "log/slog"
import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/atxt"

// A stopwatch (or countdown) drawn with atxt. Fonts are loaded in the
// order given, so later fonts are only used for characters missing in
// the previous ones. Without font arguments, Go Regular is used:
//   go run github.com/tinne26/atxt/cmd/atxtview -size 96 path/to/font.ttf
//
// Controls: [Space] pauses, [R] resets, clicking toggles the anchor
// the text is drawn from (the gray line marks the anchor y).

type appConfig struct {
	size uint16
	countdown time.Duration
	verbose bool
	fontPaths []string
}

func parseAppConfig(args []string) (appConfig, error) {
	var config appConfig
	var size uint
	flags := flag.NewFlagSet("atxtview", flag.ContinueOnError)
	flags.UintVar(&size, "size", 72, "text size in pixels")
	flags.DurationVar(&config.countdown, "countdown", 0, "count down from the given duration instead of up")
	flags.BoolVar(&config.verbose, "v", false, "log font loading and glyph caching to stderr")
	err := flags.Parse(args)
	if err != nil { return config, err }

	if size == 0 || size > math.MaxUint16 {
		return config, fmt.Errorf("invalid size %d", size)
	}
	if config.countdown < 0 {
		return config, fmt.Errorf("invalid countdown %s", config.countdown)
	}
	config.size = uint16(size)
	config.fontPaths = flags.Args()
	return config, nil
}

type Game struct {
	fonts *atxt.Fonts
	config appConfig
	elapsed time.Duration
	paused bool
	anchor atxt.DrawFrom
}

func (self *Game) Layout(winWidth, winHeight int) (int, int) {
	scale := ebiten.DeviceScaleFactor()
	canvasWidth  := int(math.Ceil(float64(winWidth)*scale))
	canvasHeight := int(math.Ceil(float64(winHeight)*scale))
	return canvasWidth, canvasHeight
}

func (self *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) { self.paused = !self.paused }
	if inpututil.IsKeyJustPressed(ebiten.KeyR) { self.elapsed = 0 }
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if self.anchor == atxt.DrawFromTopLeft {
			self.anchor = atxt.DrawFromBottomLeft
		} else {
			self.anchor = atxt.DrawFromTopLeft
		}
	}

	if !self.paused {
		self.elapsed += time.Second/time.Duration(ebiten.TPS())
	}
	return nil
}

func (self *Game) Draw(canvas *ebiten.Image) {
	canvas.Fill(color.RGBA{ 24, 20, 28, 255 })
	bounds := canvas.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// anchor line
	lineColor := color.RGBA{ 64, 64, 72, 255 }
	canvas.SubImage(image.Rect(0, h/2, w, h/2 + 1)).(*ebiten.Image).Fill(lineColor)

	// timer, horizontally centered
	label := self.timerLabel()
	dims := self.fonts.Measure(label, self.config.size)
	textColor := color.RGBA{ 240, 232, 216, 255 }
	if self.paused { textColor = color.RGBA{ 160, 152, 140, 255 } }
	params := atxt.TextParams{
		Text: label,
		X: (float32(w) - dims.Width)/2,
		Y: float32(h/2),
		Size: self.config.size,
		Color: textColor,
		Draw: self.anchor,
	}
	self.fonts.DrawTextEx(canvas, params)

	// info, right aligned at the bottom
	anchorName := "top-left"
	if self.anchor == atxt.DrawFromBottomLeft { anchorName = "bottom-left" }
	info := fmt.Sprintf("[Space] pause  [R] reset  [Click] anchor: %s | %d glyphs | %.2fFPS",
		anchorName, self.fonts.CachedGlyphs(), ebiten.ActualFPS())
	infoParams := atxt.DefaultTextParams()
	infoParams.Text = info
	infoParams.Size = 14
	infoDims := self.fonts.Measure(info, infoParams.Size)
	infoParams.X = float32(w) - infoDims.Width - 8
	infoParams.Y = float32(h) - 8
	infoParams.Draw = atxt.DrawFromBottomLeft
	self.fonts.DrawTextEx(canvas, infoParams)
}

func (self *Game) timerLabel() string {
	shown := self.elapsed
	if self.config.countdown > 0 {
		shown = self.config.countdown - self.elapsed
		if shown < 0 { shown = 0 }
	}
	minutes := int(shown/time.Minute)
	seconds := int((shown % time.Minute)/time.Second)
	centis  := int((shown % time.Second)/(10*time.Millisecond))
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

func loadFonts(config appConfig) (*atxt.Fonts, error) {
	fonts := atxt.NewDefaultFonts()
	if len(config.fontPaths) == 0 {
		return fonts, fonts.LoadFontBytes(goregular.TTF)
	}
	for _, path := range config.fontPaths {
		err := fonts.LoadFontFromPath(path)
		if err != nil { return nil, err }
	}
	return fonts, nil
}

func main() {
	config, err := parseAppConfig(os.Args[1 : ])
	if err != nil {
		fmt.Fprintf(os.Stderr, "atxtview: %s\n", err)
		os.Exit(2)
	}
	if config.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: slog.LevelDebug })
		atxt.SetLogger(slog.New(handler))
	}

	fonts, err := loadFonts(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atxtview: %s\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("atxt/cmd/atxtview")
	ebiten.SetWindowSize(640, 360)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err = ebiten.RunGame(&Game{ fonts: fonts, config: config })
	if err != nil {
		fmt.Fprintf(os.Stderr, "atxtview: %s\n", err)
		os.Exit(1)
	}
}
