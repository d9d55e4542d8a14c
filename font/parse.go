package font

import "os"
import "io"
import "io/fs"
import "bytes"
import "errors"
import "strings"
import "compress/gzip"

import "golang.org/x/image/font/sfnt"

var errEmptyData = errors.New("empty font data")
var errCollection = errors.New("font collections are not supported, extract a single font first")
var errWOFF = errors.New("WOFF containers are not supported")
var errExtension = errors.New("expected .ttf, .otf, .ttf.gz or .otf.gz extension")

// Parses a .ttf or .otf font from the given bytes, which may also be
// gzipped. The scale is a hint of the size in pixels per em the font
// will be used at (see [NewFont]).
//
// The bytes must not be modified while the font is in use. When in
// doubt, pass a copy.
//
// Errors are always of type [*LoadError].
func ParseBytes(fontBytes []byte, scale float32) (*Font, error) {
	if len(fontBytes) == 0 { return nil, malformed(errEmptyData) }

	if isGzipped(fontBytes) {
		var err error
		fontBytes, err = gunzip(fontBytes)
		if err != nil { return nil, malformed(err) }
		if len(fontBytes) == 0 { return nil, malformed(errEmptyData) }
	}

	switch magic(fontBytes) {
	case "ttcf":
		return nil, unsupported(errCollection)
	case "wOFF", "wOF2":
		return nil, unsupported(errWOFF)
	}

	sfntFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, classifyParseError(err) }
	return NewFont(sfntFont, scale), nil
}

// Parses the font at the given path. Supported extensions are .ttf,
// .otf, .ttf.gz and .otf.gz.
//
// Decoding errors are returned as [*LoadError] with the Path field set.
// File system errors (e.g. [fs.ErrNotExist]) are returned as they are.
func ParseFromPath(path string, scale float32) (*Font, error) {
	if !hasValidFontExtension(path) {
		return nil, &LoadError{Path: path, Kind: ErrUnsupportedFont, Err: errExtension}
	}

	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFileAndClose(file, path, scale)
}

// Same as [ParseFromPath](), but for filesystems. This is mainly
// provided to support [embed.FS] and embedded fonts.
func ParseFromFS(filesys fs.FS, path string, scale float32) (*Font, error) {
	if !hasValidFontExtension(path) {
		return nil, &LoadError{Path: path, Kind: ErrUnsupportedFont, Err: errExtension}
	}

	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseFileAndClose(file, path, scale)
}

// ---- helpers ----

func parseFileAndClose(file io.ReadCloser, path string, scale float32) (*Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }

	font, err := ParseBytes(fontBytes, scale)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) { loadErr.Path = path }
		return nil, err
	}
	return font, nil
}

func isGzipped(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1F && data[1] == 0x8B
}

func gunzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil { return nil, err }
	unzipped, err := io.ReadAll(reader)
	if err != nil {
		_ = reader.Close()
		return nil, err
	}
	return unzipped, reader.Close()
}

func magic(data []byte) string {
	if len(data) < 4 { return "" }
	return string(data[0 : 4])
}

// Whether font path ends in .ttf, .otf, .ttf.gz or .otf.gz.
func hasValidFontExtension(path string) bool {
	path = strings.TrimSuffix(path, ".gz")
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path) - 4] == '.'
}
