// Package source resolves diagnostic inputs into (path, text) pairs and
// keeps the ordered source list a report hands to the renderer.
package source

// InlinePath is the path assigned to sources built from raw text.
const InlinePath = "<string>"

// Source is a resolved (path identifier, text) pair. Text is immutable by
// convention: nothing in this module writes to it after resolution.
type Source struct {
	Path string
	Text string
}

// List is an ordered sequence of sources. A report's list always starts
// with the primary source, followed by auxiliary sources in attachment
// order. Duplicate paths are preserved verbatim, not merged; Lookup
// resolves a duplicated path to its first occurrence and any finer policy
// is left to the renderer.
type List []Source

// Lookup returns the first source with the given path.
func (l List) Lookup(path string) (Source, bool) {
	for _, s := range l {
		if s.Path == path {
			return s, true
		}
	}
	return Source{}, false
}

// Paths returns the path of every entry, in order.
func (l List) Paths() []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = s.Path
	}
	return out
}
