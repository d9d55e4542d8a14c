package font

import "errors"
import "strings"

// Sentinel errors used to classify a [LoadError].
var (
	// ErrMalformedFont is reported when the font data can't be decoded:
	// empty data, corrupt tables, broken gzip streams and similar.
	ErrMalformedFont = errors.New("font: malformed font data")

	// ErrUnsupportedFont is reported when the data looks like a font but
	// uses a format or feature that can't be handled (font collections,
	// WOFF containers, unknown file extensions, etc.).
	ErrUnsupportedFont = errors.New("font: unsupported font format")
)

// A LoadError is returned when a font can't be loaded. Use errors.Is
// with [ErrMalformedFont] or [ErrUnsupportedFont] to tell the cause apart.
// The underlying parser error, if any, is also reachable through
// errors.Is and errors.As.
type LoadError struct {
	Path string // empty when the font was parsed from raw bytes
	Kind error  // ErrMalformedFont or ErrUnsupportedFont
	Err  error  // underlying cause, may be nil
}

func (self *LoadError) Error() string {
	var msg strings.Builder
	msg.WriteString(self.Kind.Error())
	if self.Path != "" {
		msg.WriteString(" '")
		msg.WriteString(self.Path)
		msg.WriteString("'")
	}
	if self.Err != nil {
		msg.WriteString(": ")
		msg.WriteString(self.Err.Error())
	}
	return msg.String()
}

func (self *LoadError) Unwrap() []error {
	if self.Err == nil { return []error{self.Kind} }
	return []error{self.Kind, self.Err}
}

func malformed(err error) *LoadError {
	return &LoadError{Kind: ErrMalformedFont, Err: err}
}

func unsupported(err error) *LoadError {
	return &LoadError{Kind: ErrUnsupportedFont, Err: err}
}

// sfnt doesn't export typed errors. Its errUnsupported* values all read
// "sfnt: unsupported ..." (e.g. "sfnt: unsupported number of tables",
// "sfnt: unsupported cmap encodings", "sfnt: unsupported CFF version"),
// while broken data reads "sfnt: invalid ...". TestClassifySfntErrors
// fails if that wording changes.
func classifyParseError(err error) *LoadError {
	if strings.Contains(err.Error(), "unsupported") {
		return unsupported(err)
	}
	return malformed(err)
}
