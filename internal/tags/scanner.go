package tags

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/tagcheck/internal/report"
	"go.uber.org/zap"
)

const (
	commentMarker = "//"
	maxLineSize   = 1024 * 1024
)

// Options carries the settings of the scanner and its field checker.
type Options struct {
	CheckFieldNames bool
	// TagKey is the struct tag key probed when a line has no wire annotation.
	TagKey string
}

// Scanner classifies lines and routes them to the wire or serialization
// extractor, recording results into one collection per pipeline.
type Scanner struct {
	wire          WireExtractor
	serialization *SerializationExtractor
	fields        *FieldChecker
	logger        *zap.Logger

	Wire          *Collection
	Serialization *Collection
}

// NewScanner creates a scanner. When opts.CheckFieldNames is set, every
// successfully extracted serialization tag is also compared with its field
// name and mismatches are reported through rep.
func NewScanner(opts Options, rep *report.Reporter, logger *zap.Logger) *Scanner {
	if opts.TagKey == "" {
		opts.TagKey = "json"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scanner{
		serialization: NewSerializationExtractor(opts.TagKey),
		logger:        logger,
		Wire:          NewCollection(),
		Serialization: NewCollection(),
	}
	if opts.CheckFieldNames {
		s.fields = NewFieldChecker(opts.TagKey, rep)
	}
	return s
}

// ScanFile reads path and scans it.
func (s *Scanner) ScanFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return s.Scan(path, f)
}

// Scan processes every line of r, attributing results to path.
func (s *Scanner) Scan(path string, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		s.scanLine(path, lineNo, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scanning %s: %w", path, err)
	}
	s.logger.Debug("scanned file",
		zap.String("path", path),
		zap.Int("lines", lineNo),
		zap.Int("wireTags", len(s.Wire.tags[path])),
		zap.Int("serializationTags", len(s.Serialization.tags[path])))
	return nil
}

func (s *Scanner) scanLine(path string, lineNo int, line string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, commentMarker) {
		return
	}

	switch {
	case strings.Contains(line, WireMarker):
		// A wire line is consumed here and never probed for a serialization tag.
		if name, _, ok := s.wire.Strip(line); ok {
			record(s.Wire, path, Tag{Name: name, File: path, Line: lineNo, Source: SourceWire})
		}
	case strings.Contains(line, s.serialization.Marker()):
		name, ok := s.serialization.Extract(line)
		if !ok {
			return
		}
		record(s.Serialization, path, Tag{Name: name, File: path, Line: lineNo, Source: SourceSerialization})
		if s.fields != nil {
			s.fields.Check(path, Declaration{Field: fieldName(trimmed), Tag: name, Line: lineNo})
		}
	}
}

func record(c *Collection, path string, tag Tag) {
	if tag.Name == "" || tag.Name == ignoreTag {
		return
	}
	c.Record(path, tag)
}
