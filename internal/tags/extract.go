package tags

import (
	"regexp"
	"strings"
)

// WireMarker is the substring that marks a protobuf wire annotation.
const WireMarker = `protobuf:"`

// ignoreTag is the sentinel that excludes a field from encoding.
const ignoreTag = "-"

// Extractor pulls at most one tag out of a single line of text.
type Extractor interface {
	Extract(line string) (string, bool)
}

// Both patterns only look inside the annotation value, so json= or name=
// elsewhere on the line (another tag, a trailing comment) is never picked up.
// Group 1 is the whole sub-field, group 2 its value.
var (
	wireOverridePattern = regexp.MustCompile(`protobuf:"[^"]*?\b(json=([^,"\s]+))`)
	wireNamePattern     = regexp.MustCompile(`protobuf:"[^"]*?\b(name=([^,"\s]+))`)
)

// WireExtractor resolves the canonical name of a protobuf annotation.
// An explicit json= override wins over the name= derived from the .proto field.
type WireExtractor struct{}

// Extract implements Extractor.
func (WireExtractor) Extract(line string) (string, bool) {
	tag, _, ok := WireExtractor{}.Strip(line)
	return tag, ok
}

// Strip returns the canonical name and the line with the winning sub-field
// removed. The rest of the line is left untouched.
func (WireExtractor) Strip(line string) (string, string, bool) {
	for _, re := range []*regexp.Regexp{wireOverridePattern, wireNamePattern} {
		loc := re.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		return line[loc[4]:loc[5]], line[:loc[2]] + line[loc[3]:], true
	}
	return "", line, false
}

// SerializationExtractor reads the name part of a struct tag such as
// json:"deviceId,omitempty".
type SerializationExtractor struct {
	key     string
	pattern *regexp.Regexp
}

// NewSerializationExtractor returns an extractor for struct tags with the given key.
func NewSerializationExtractor(key string) *SerializationExtractor {
	return &SerializationExtractor{
		key:     key,
		pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `:"([^,"]*)`),
	}
}

// Marker returns the substring that routes a line to this extractor.
func (e *SerializationExtractor) Marker() string {
	return e.key + `:"`
}

// Extract implements Extractor. Empty names (json:",inline") and the ignore
// marker "-" yield no tag.
func (e *SerializationExtractor) Extract(line string) (string, bool) {
	m := e.pattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := m[1]
	if name == "" || name == ignoreTag {
		return "", false
	}
	return name, true
}

// fieldName returns the first whitespace-delimited token of line.
func fieldName(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
