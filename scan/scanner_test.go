package scan_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typelabel/typelabel/model"
	"github.com/typelabel/typelabel/parser"
	"github.com/typelabel/typelabel/scan"
)

func scanTestFile(t *testing.T, name string) *scan.Result {
	t.Helper()

	p, err := parser.New()
	require.NoError(t, err)
	t.Cleanup(p.Close)

	path := filepath.Join("testdata", name)
	tree, src, err := p.ParseFile(path)
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	return scan.File(tree.RootNode(), path, src)
}

func labelsByName(res *scan.Result) map[string]model.LabeledType {
	out := make(map[string]model.LabeledType, len(res.Types))
	for _, typ := range res.Types {
		out[typ.Name] = typ
	}
	return out
}

func TestScanLabeledTypes(t *testing.T) {
	res := scanTestFile(t, "labeled.go")
	require.Empty(t, res.Diagnostics)
	assert.Equal(t, "fixtures", res.Package)

	types := labelsByName(res)
	require.Len(t, types, 6)

	assert.Equal(t, "activity type", types["ActivityType"].Label)
	assert.Equal(t, model.KindNamed, types["ActivityType"].Kind)
	assert.Empty(t, types["ActivityType"].TypeParams)

	assert.Equal(t, "input hint", types["InputHint"].Label)
	assert.Equal(t, "grouped", types["Grouped"].Label)
}

func TestScanLabelsAreExact(t *testing.T) {
	res := scanTestFile(t, "labeled.go")
	types := labelsByName(res)

	// Raw and interpreted literals decode without any transformation.
	assert.Equal(t, `raw "label"`, types["Raw"].Label)
	assert.Equal(t, "line1\nline2 é", types["Escaped"].Label)
}

func TestScanGenericType(t *testing.T) {
	res := scanTestFile(t, "labeled.go")
	types := labelsByName(res)

	pair := types["Pair"]
	assert.Equal(t, "pair of things", pair.Label)
	assert.Equal(t, []string{"K", "V"}, pair.TypeParams)
	assert.Equal(t, model.KindStruct, pair.Kind)
	assert.Equal(t, "Pair[K, V]", pair.Receiver())
}

func TestScanRecordsUnlabeledDecls(t *testing.T) {
	res := scanTestFile(t, "labeled.go")

	names := make([]string, len(res.Decls))
	for i, d := range res.Decls {
		names[i] = d.Name
	}
	assert.Contains(t, names, "Unlabeled")

	types := labelsByName(res)
	_, labeled := types["Unlabeled"]
	assert.False(t, labeled, "type without directive must not get an association")
}

func TestScanDiagnostics(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"bad_duplicate.go", "duplicate label directive on Dup"},
		{"bad_nonstring.go", "label must be a Go string literal"},
		{"bad_trailing.go", `unexpected "extra" after label literal`},
		{"bad_verb.go", `unknown typelabel directive "tag"`},
		{"bad_missing_value.go", "missing label value"},
		{"bad_func.go", "found function declaration"},
		{"bad_interface.go", "implement typelabel.Labeled manually"},
		{"bad_alias.go", "cannot label the type alias Aliased"},
		{"bad_group.go", "grouped type declaration with 2 specs is ambiguous"},
		{"bad_local.go", "inside a function"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			res := scanTestFile(t, tt.file)
			require.Len(t, res.Diagnostics, 1)
			assert.Contains(t, res.Diagnostics[0].Error(), tt.want)
			assert.Empty(t, res.Types, "diagnostics and output are mutually exclusive per type")
		})
	}
}

func TestScanFloatingDirectives(t *testing.T) {
	res := scanTestFile(t, "bad_floating.go")
	require.Len(t, res.Diagnostics, 2)
	for _, d := range res.Diagnostics {
		assert.Contains(t, d.Error(), "not attached to a type declaration")
	}
	assert.Empty(t, res.Types)
}

func TestScanDiagnosticPositions(t *testing.T) {
	res := scanTestFile(t, "bad_nonstring.go")
	require.Len(t, res.Diagnostics, 1)

	loc := res.Diagnostics[0].Loc
	require.NotNil(t, loc)
	assert.Equal(t, filepath.Join("testdata", "bad_nonstring.go"), loc.FilePath)
	assert.Equal(t, 3, loc.StartLine)
}
