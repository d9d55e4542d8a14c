package atxt

import "bytes"
import "context"
import "strings"
import "testing"
import "log/slog"

func TestLogger(t *testing.T) {
	if Logger() == nil { t.Fatal("expected a default logger") }
	if Logger().Enabled(context.Background(), slog.LevelError) { t.Fatal("default logger must be silent") }

	var buffer bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{ Level: slog.LevelDebug })))
	defer SetLogger(nil)

	fonts := NewDefaultFonts()
	fonts.AddFace(newLatinFakeFace())
	fonts.CacheGlyph('A', 20)
	fonts.CacheGlyph('?', 20)

	output := buffer.String()
	if !strings.Contains(output, "glyph cached") { t.Fatalf("missing debug record in:\n%s", output) }
	if !strings.Contains(output, "character missing in all fonts") { t.Fatalf("missing warn record in:\n%s", output) }

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) { t.Fatal("SetLogger(nil) must restore the silent logger") }
}
