// Package tags scans Go source text line by line for protobuf wire annotations
// and serialization struct tags, reconciles them into one canonical tag per
// field and validates the result.
package tags

// Source identifies which annotation a tag was extracted from.
type Source int

const (
	// SourceWire marks tags resolved from a protobuf:"..." annotation.
	SourceWire Source = iota
	// SourceSerialization marks tags taken from a json:"..." (or yaml:"...") tag.
	SourceSerialization
)

// String returns the string representation of Source
func (s Source) String() string {
	switch s {
	case SourceWire:
		return "protobuf"
	case SourceSerialization:
		return "serialization"
	default:
		return "unknown"
	}
}

// Tag is one extracted external name together with where it came from.
type Tag struct {
	Name   string
	File   string
	Line   int
	Source Source
}

// Declaration is the line-scoped view of a struct field: its identifier and
// the serialization tag found on the same line.
type Declaration struct {
	Field string
	Tag   string
	Line  int
}

// Collection maps a file path to the tags found in it, in order of appearance.
// Duplicates are kept: two fields exposing the same name is something the
// report must show, not hide.
type Collection struct {
	files []string
	tags  map[string][]Tag
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{tags: make(map[string][]Tag)}
}

// Record appends tag to the list for file, creating the list on first use.
func (c *Collection) Record(file string, tag Tag) {
	if _, ok := c.tags[file]; !ok {
		c.files = append(c.files, file)
	}
	c.tags[file] = append(c.tags[file], tag)
}

// Files returns the recorded files in the order they were first seen.
func (c *Collection) Files() []string {
	out := make([]string, len(c.files))
	copy(out, c.files)
	return out
}

// Tags returns the tags recorded for file.
func (c *Collection) Tags(file string) []Tag {
	out := make([]Tag, len(c.tags[file]))
	copy(out, c.tags[file])
	return out
}

// Names returns just the tag names recorded for file.
func (c *Collection) Names(file string) []string {
	names := make([]string, 0, len(c.tags[file]))
	for _, t := range c.tags[file] {
		names = append(names, t.Name)
	}
	return names
}

// Len returns the total number of tags across all files.
func (c *Collection) Len() int {
	n := 0
	for _, list := range c.tags {
		n += len(list)
	}
	return n
}
