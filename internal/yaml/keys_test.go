package yaml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ariel-frischer/tagcheck/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(verbose bool) (*KeyValidator, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	rep := report.New(&out, &errOut, report.WithVerbose(verbose))
	return NewKeyValidator(rep, nil), &out, &errOut
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestKeyValidator_NestedDocument(t *testing.T) {
	t.Parallel()

	docs, err := Decode(strings.NewReader(`fooBar: 1
sub:
  bad_Key: 2
list:
  - anotherBad!: 3
`))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	v, out, errOut := newTestValidator(true)
	assert.False(t, v.Validate(docs[0]))

	assert.Equal(t, "ERROR: invalid key \"anotherBad!\" at list[0].anotherBad!\n"+
		"ERROR: invalid key \"bad_Key\" at sub.bad_Key\n", errOut.String())
	assert.Equal(t, "✓ key \"fooBar\"\n"+
		"✓ key \"list\"\n"+
		"✗ key \"anotherBad!\"\n"+
		"✓ key \"sub\"\n"+
		"✗ key \"bad_Key\"\n", out.String())
}

func TestKeyValidator_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc        any
		want       bool
		wantErrors int
	}{
		"nil document": {
			doc:  nil,
			want: true,
		},
		"scalar document": {
			doc:  "just a string",
			want: true,
		},
		"empty mapping": {
			doc:  map[string]any{},
			want: true,
		},
		"valid keys at every depth": {
			doc: map[string]any{
				"apis": map[string]any{
					"http": map[string]any{"address": "0.0.0.0:443", "max-age": 10},
				},
				"clients": []any{map[string]any{"1stClient": true}},
			},
			want: true,
		},
		"scalars in a list are not keys": {
			doc:  map[string]any{"scopes": []any{"Bad_Scope", 1, nil}},
			want: true,
		},
		"nested lists are not unwrapped": {
			doc:  map[string]any{"matrix": []any{[]any{map[string]any{"Bad": 1}}}},
			want: true,
		},
		"every bad key is counted": {
			doc: map[string]any{
				"Top":   1,
				"inner": map[string]any{"snake_case": 2, "ok": map[string]any{"DEEP": 3}},
			},
			want:       false,
			wantErrors: 3,
		},
		"non string keys use their string form": {
			doc:        map[any]any{1: "one", true: "yes", "Bad": "no"},
			want:       false,
			wantErrors: 1,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer
			rep := report.New(&out, &errOut)
			v := NewKeyValidator(rep, nil)

			assert.Equal(t, tt.want, v.Validate(tt.doc))
			assert.Equal(t, tt.wantErrors, rep.Errors())
		})
	}
}

func TestKeyValidator_ValidateFile(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content      string
		want         bool
		wantErrOut   []string
		wantNoErrOut bool
	}{
		"valid file": {
			content:      "apis:\n  grpc:\n    address: localhost:9100\n",
			want:         true,
			wantNoErrOut: true,
		},
		"empty file": {
			content:      "",
			want:         true,
			wantNoErrOut: true,
		},
		"invalid key names the file": {
			content:    "log:\n  Level: debug\n",
			want:       false,
			wantErrOut: []string{`invalid key "Level" at log.Level in `, "config.yaml"},
		},
		"every document of a stream": {
			content:    "good: 1\n---\nBad: 2\n",
			want:       false,
			wantErrOut: []string{`invalid key "Bad" at Bad`},
		},
		"parse failure counts as invalid": {
			content:    "parent:\n child: value\n  grandchild: bad\n",
			want:       false,
			wantErrOut: []string{"ERROR: cannot parse ", "config.yaml:3:"},
		},
		"tabs are a parse failure": {
			content:    "parent:\n\tchild: value\n",
			want:       false,
			wantErrOut: []string{"ERROR: cannot parse "},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "config.yaml", tt.content)
			v, _, errOut := newTestValidator(false)

			ok, err := v.ValidateFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			for _, want := range tt.wantErrOut {
				assert.Contains(t, errOut.String(), want)
			}
			if tt.wantNoErrOut {
				assert.Empty(t, errOut.String())
			}
		})
	}
}

func TestKeyValidator_ValidateFile_Missing(t *testing.T) {
	t.Parallel()

	v, _, errOut := newTestValidator(false)
	ok, err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, ok)
	assert.Empty(t, errOut.String(), "I/O failures are returned, not reported")
}

func TestKeyValidator_ValidateReader_PartialStream(t *testing.T) {
	t.Parallel()

	v, _, errOut := newTestValidator(false)
	ok := v.ValidateReader("charts/values.yaml", strings.NewReader("Good: 1\n---\nb: [\n"))

	assert.False(t, ok)
	assert.Contains(t, errOut.String(), `ERROR: invalid key "Good" at Good in charts/values.yaml`)
	assert.Contains(t, errOut.String(), "ERROR: cannot parse charts/values.yaml:")
}
