package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Resolver is the narrow capability the diagnostic core depends on: turn
// some concrete reference into a resolved (path, text) pair. One adapter
// exists per reference kind; the core never sees the difference.
type Resolver interface {
	Resolve() (Source, error)
}

// NotFoundError reports a path reference that could not be read.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source %q not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// DecodeError reports source bytes that do not decode to UTF-8 text.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source %q is not valid text: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("source %q is not valid UTF-8", e.Path)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ErrUnsupported reports a source reference of a kind no adapter handles.
var ErrUnsupported = errors.New("unsupported source reference: expected text, a path, a reader, or a path-to-text mapping")

// Inline resolves raw text. An empty Name resolves under InlinePath.
type Inline struct {
	Name string
	Text string
}

func (in Inline) Resolve() (Source, error) {
	path := in.Name
	if path == "" {
		path = InlinePath
	}
	if !utf8.ValidString(in.Text) {
		return Source{}, &DecodeError{Path: path}
	}
	return Source{Path: path, Text: in.Text}, nil
}

// File resolves a filesystem path, normalizing BOM and CRLF and
// transcoding UTF-16 content when a byte-order mark announces it.
type File struct {
	Path string
}

func (f File) Resolve() (Source, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(f.Path)
	if err != nil {
		return Source{}, &NotFoundError{Path: f.Path, Err: err}
	}
	return decode(f.Path, content)
}

// Reader resolves a readable stream under the given name.
type Reader struct {
	Name string
	R    io.Reader
}

func (r Reader) Resolve() (Source, error) {
	name := r.Name
	if name == "" {
		name = InlinePath
	}
	content, err := io.ReadAll(r.R)
	if err != nil {
		return Source{}, &NotFoundError{Path: name, Err: err}
	}
	return decode(name, content)
}

// FromMap turns a path-to-text mapping into inline resolvers, ordered by
// path for determinism (Go maps carry no insertion order to preserve).
func FromMap(m map[string]string) []Resolver {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	out := make([]Resolver, len(paths))
	for i, p := range paths {
		out[i] = Inline{Name: p, Text: m[p]}
	}
	return out
}

// ResolverFor maps a dynamic reference onto its adapter: a string or byte
// slice becomes inline text, an io.Reader a stream, and an existing
// Resolver passes through. Mappings go through FromMap since they expand
// to several sources.
func ResolverFor(v any) (Resolver, error) {
	switch ref := v.(type) {
	case Resolver:
		return ref, nil
	case string:
		return Inline{Text: ref}, nil
	case []byte:
		return Inline{Text: string(ref)}, nil
	case io.Reader:
		return Reader{R: ref}, nil
	default:
		return nil, fmt.Errorf("%w (got %T)", ErrUnsupported, v)
	}
}

// decode normalizes raw bytes into UTF-8 text: UTF-16 input with a BOM is
// transcoded, a UTF-8 BOM is stripped, CRLF pairs collapse to LF, and
// anything that still is not valid UTF-8 fails with DecodeError.
func decode(path string, content []byte) (Source, error) {
	if hasUTF16BOM(content) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		transcoded, _, err := transform.Bytes(dec, content)
		if err != nil {
			return Source{}, &DecodeError{Path: path, Err: err}
		}
		content = transcoded
	} else {
		content, _ = removeBOM(content)
	}
	content, _ = normalizeCRLF(content)
	if !utf8.Valid(content) {
		return Source{}, &DecodeError{Path: path}
	}
	return Source{Path: path, Text: string(content)}, nil
}

func hasUTF16BOM(content []byte) bool {
	if len(content) < 2 {
		return false
	}
	return (content[0] == 0xFF && content[1] == 0xFE) ||
		(content[0] == 0xFE && content[1] == 0xFF)
}
