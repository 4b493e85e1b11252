package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"parcelnorm/internal/relate"
)

func TestCheckOutputDir(t *testing.T) {
	root := t.TempDir()
	in := filepath.Join(root, "input")

	tests := []struct {
		name    string
		out     string
		wantErr bool
	}{
		{"empty", "", true},
		{"same", in, true},
		{"parent", root, true},
		{"sibling", filepath.Join(root, "output"), false},
		{"child of input", filepath.Join(in, "out"), false},
		{"prefix sibling", in + "-out", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkOutputDir(tt.out, in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWriteOutputOrder(t *testing.T) {
	p := &plan{counts: map[string]int{}}
	p.add("property", map[string]string{"parcel_identifier": "1"})
	p.add("tax", map[string]int{"tax_year": 2024})
	p.add("tax", map[string]int{"tax_year": 2023})
	p.edges = []relate.Edge{{From: "property", To: "tax_1"}, {From: "property", To: "tax_2"}}

	dir := filepath.Join(t.TempDir(), "out")
	files, err := writeOutput(dir, "", p)
	require.NoError(t, err)

	want := []string{
		"property.json", "tax_1.json", "tax_2.json",
		"relationship_property_to_tax_1.json", "relationship_property_to_tax_2.json",
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}

	b, err := os.ReadFile(filepath.Join(dir, "relationship_property_to_tax_2.json"))
	require.NoError(t, err)
	require.JSONEq(t, `{"from": {"/": "./property.json"}, "to": {"/": "./tax_2.json"}}`, string(b))
}
