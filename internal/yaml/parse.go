// Package yaml validates the keys of YAML configuration documents against the
// configuration-key naming contract.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseError is a malformed document, with the position yaml.v3 reported when available.
type ParseError struct {
	File    string
	Line    int
	Message string
}

// Error implements error.
func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	default:
		return e.Message
	}
}

var lineRe = regexp.MustCompile(`line (\d+)`)

func newParseError(file string, err error) *ParseError {
	pe := &ParseError{File: file, Message: err.Error()}
	if m := lineRe.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}

// Decode reads every document of a YAML stream. An empty stream yields no documents.
func Decode(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var docs []any
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return docs, newParseError("", err)
		}
		docs = append(docs, doc)
	}
}
