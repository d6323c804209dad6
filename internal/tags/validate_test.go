package tags

import (
	"bytes"
	"testing"

	"github.com/ariel-frischer/tagcheck/internal/naming"
	"github.com/ariel-frischer/tagcheck/internal/report"
	"github.com/stretchr/testify/assert"
)

func collectionOf(file string, names ...string) *Collection {
	c := NewCollection()
	for i, n := range names {
		c.Record(file, Tag{Name: n, File: file, Line: i + 1, Source: SourceSerialization})
	}
	return c
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		collection *Collection
		want       bool
		wantErrOut string
	}{
		"empty collection is valid": {
			collection: NewCollection(),
			want:       true,
		},
		"all valid": {
			collection: collectionOf("a.go", "deviceId", "client_id", "x"),
			want:       true,
		},
		"every failure is reported": {
			collection: collectionOf("a.go", "DeviceId", "ok", "device-id"),
			want:       false,
			wantErrOut: "ERROR: invalid json tag \"DeviceId\" in a.go:1\n" +
				"ERROR: invalid json tag \"device-id\" in a.go:3\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var out, errOut bytes.Buffer
			v := NewValidator(naming.TagContract("json"), report.New(&out, &errOut))

			assert.Equal(t, tt.want, v.Validate(tt.collection))
			assert.Equal(t, tt.wantErrOut, errOut.String())
			assert.Empty(t, out.String())
		})
	}
}

func TestValidator_VerboseAcrossFiles(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Record("b.go", Tag{Name: "zeta", File: "b.go", Line: 3})
	c.Record("a.go", Tag{Name: "Alpha", File: "a.go", Line: 7})

	var out, errOut bytes.Buffer
	v := NewValidator(naming.TagContract("protobuf"), report.New(&out, &errOut, report.WithVerbose(true)))

	assert.False(t, v.Validate(c))
	assert.Equal(t, "✓ protobuf tag \"zeta\"\n✗ protobuf tag \"Alpha\"\n", out.String())
	assert.Equal(t, "ERROR: invalid protobuf tag \"Alpha\" in a.go:7\n", errOut.String())
}

func TestCollection_RecordKeepsDuplicatesInOrder(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Record("a.go", Tag{Name: "id"})
	c.Record("b.go", Tag{Name: "name"})
	c.Record("a.go", Tag{Name: "id"})

	assert.Equal(t, []string{"a.go", "b.go"}, c.Files())
	assert.Equal(t, []string{"id", "id"}, c.Names("a.go"))
	assert.Equal(t, 3, c.Len())
	assert.Empty(t, c.Tags("missing.go"))

	files := c.Files()
	files[0] = "mutated"
	assert.Equal(t, []string{"a.go", "b.go"}, c.Files(), "Files must return a copy")
}

func TestSource_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "protobuf", SourceWire.String())
	assert.Equal(t, "serialization", SourceSerialization.String())
	assert.Equal(t, "unknown", Source(42).String())
}
