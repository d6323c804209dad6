package tags

import (
	"strings"

	"github.com/ariel-frischer/tagcheck/internal/report"
)

// FieldChecker warns when a field name and its serialization tag drift apart.
// Warnings are advisory and never change the verdict.
type FieldChecker struct {
	tagKey string
	rep    *report.Reporter
	seen   map[string]bool
}

// NewFieldChecker creates a checker reporting through rep.
func NewFieldChecker(tagKey string, rep *report.Reporter) *FieldChecker {
	return &FieldChecker{
		tagKey: tagKey,
		rep:    rep,
		seen:   make(map[string]bool),
	}
}

// Check compares decl.Field with decl.Tag after normalization and warns once
// per mismatched field. The file header is printed once, before the first
// warning of that file. Returns true when the names agree.
func (f *FieldChecker) Check(file string, decl Declaration) bool {
	if normalize(decl.Field) == normalize(decl.Tag) {
		return true
	}

	if !f.seen[file] {
		f.seen[file] = true
		f.rep.Printf("file: %s", file)
	}
	f.rep.Warnf("line %d: field %s differs from %s tag %q", decl.Line, decl.Field, f.tagKey, decl.Tag)
	return false
}

// normalize drops underscores and case so that ClientID and client_id compare equal.
func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}
