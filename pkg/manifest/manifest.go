package manifest

// Manifest describes a single work: metadata plus its chapters, keyed by
// chapter key. Unknown fields from the source JSON are kept in Extra so a
// manifest can round-trip without losing anything we don't understand.
type Manifest struct {
	Title       string
	Description string
	Artist      string
	Author      string
	Cover       string
	Chapters    map[string]Chapter
	Extra       map[string]any
}

// Chapter is one entry in a manifest's chapter map. Groups maps a group name
// to its pages: either a literal ordered list of page URLs, or a source
// descriptor string that must be resolved before reading.
type Chapter struct {
	Title  string
	Volume string
	Groups map[string]Group
	Extra  map[string]any
}

// Group holds either literal page URLs or a descriptor, never both.
type Group struct {
	Pages      []string
	Descriptor string
}

// IsDescriptor reports whether the group delegates to an external source.
func (g Group) IsDescriptor() bool {
	return g.Descriptor != ""
}
