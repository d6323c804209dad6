package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ariel-frischer/tagcheck/internal/naming"
	"github.com/ariel-frischer/tagcheck/internal/report"
	"go.uber.org/zap"
)

// KeyValidator checks mapping keys at every depth of a configuration document.
type KeyValidator struct {
	contract naming.Contract
	rep      *report.Reporter
	logger   *zap.Logger
}

// NewKeyValidator creates a validator using the configuration-key contract.
func NewKeyValidator(rep *report.Reporter, logger *zap.Logger) *KeyValidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KeyValidator{contract: naming.KeyContract(), rep: rep, logger: logger}
}

// Validate checks doc and reports every invalid key. It returns true only
// if every key is valid; a document without mappings is vacuously valid.
func (v *KeyValidator) Validate(doc any) bool {
	return v.validate("", "", doc)
}

// ValidateFile opens path and validates it with ValidateReader.
// An unreadable file is returned as an error.
func (v *KeyValidator) ValidateFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return v.ValidateReader(path, f), nil
}

// ValidateReader decodes every document in r and validates each, naming
// the source as name in diagnostics. A stream that fails to parse is
// reported and counts as invalid, even if earlier documents were valid.
func (v *KeyValidator) ValidateReader(name string, r io.Reader) bool {
	docs, err := Decode(r)

	valid := true
	for _, doc := range docs {
		if !v.validate(name, "", doc) {
			valid = false
		}
	}

	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = name
		}
		v.rep.Errorf("cannot parse %s", err)
		return false
	}

	v.logger.Debug("decoded file", zap.String("path", name), zap.Int("documents", len(docs)))
	return valid
}

func (v *KeyValidator) validate(file, prefix string, node any) bool {
	switch n := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		valid := true
		for _, k := range keys {
			if !v.checkEntry(file, prefix, k, n[k]) {
				valid = false
			}
		}
		return valid
	case map[any]any:
		keys := make([]string, 0, len(n))
		byName := make(map[string]any, len(n))
		for k, val := range n {
			name := fmt.Sprint(k)
			keys = append(keys, name)
			byName[name] = val
		}
		sort.Strings(keys)

		valid := true
		for _, k := range keys {
			if !v.checkEntry(file, prefix, k, byName[k]) {
				valid = false
			}
		}
		return valid
	default:
		return true
	}
}

// checkEntry validates one key, then descends into its value: mappings
// recursively, sequences one level deep for mapping elements only.
func (v *KeyValidator) checkEntry(file, prefix, key string, value any) bool {
	path := joinPath(prefix, key)
	valid := true

	if v.contract.Valid(key) {
		v.rep.Pass(v.contract.Kind, key)
	} else {
		valid = false
		v.rep.Fail(v.contract.Kind, key)
		if file != "" {
			v.rep.Errorf("invalid %s %q at %s in %s", v.contract.Kind, key, path, file)
		} else {
			v.rep.Errorf("invalid %s %q at %s", v.contract.Kind, key, path)
		}
	}

	switch val := value.(type) {
	case map[string]any, map[any]any:
		if !v.validate(file, path, val) {
			valid = false
		}
	case []any:
		for i, elem := range val {
			switch elem.(type) {
			case map[string]any, map[any]any:
				if !v.validate(file, fmt.Sprintf("%s[%d]", path, i), elem) {
					valid = false
				}
			}
		}
	}
	return valid
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
