package emit_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typelabel/typelabel/emit"
	"github.com/typelabel/typelabel/model"
)

func samplePackage(types ...model.LabeledType) *model.Package {
	return &model.Package{
		Dir:        "sample",
		Name:       "sample",
		ImportPath: "example.com/demo/sample",
		Types:      types,
	}
}

func TestRenderConstantAndMethod(t *testing.T) {
	src, err := emit.Render(samplePackage(
		model.LabeledType{Name: "ActivityType", Kind: model.KindNamed, Label: "activity type"},
	))
	require.NoError(t, err)

	got := string(src)
	assert.True(t, strings.HasPrefix(got, "// Code generated by labelgen. DO NOT EDIT."))
	assert.Contains(t, got, `import "github.com/typelabel/typelabel"`)
	assert.Contains(t, got, `const ActivityTypeLabel = "activity type"`)
	assert.Contains(t, got, "func (ActivityType) TypeLabel() string { return ActivityTypeLabel }")
	assert.Contains(t, got, "var _ typelabel.Labeled = *new(ActivityType)")
}

func TestRenderPreservesLabelExactly(t *testing.T) {
	labels := []string{
		"line1\nline2",
		`raw "label"`,
		"tabs\tand trailing space ",
		"unicode é ✓",
	}
	for _, label := range labels {
		src, err := emit.Render(samplePackage(
			model.LabeledType{Name: "Thing", Kind: model.KindStruct, Label: label},
		))
		require.NoError(t, err)
		assert.Contains(t, string(src), fmt.Sprintf("const ThingLabel = %q", label))
	}
}

func TestRenderGenericReceiver(t *testing.T) {
	src, err := emit.Render(samplePackage(
		model.LabeledType{Name: "Pair", TypeParams: []string{"K", "V"}, Kind: model.KindStruct, Label: "pair"},
	))
	require.NoError(t, err)

	got := string(src)
	assert.Contains(t, got, "func (Pair[K, V]) TypeLabel() string { return PairLabel }")
	// No instantiation exists to assert against, so generic types get no
	// interface check and the import is pruned as unused.
	assert.NotContains(t, got, "var _")
	assert.NotContains(t, got, `"github.com/typelabel/typelabel"`)
}

func TestRenderSortsTypesByName(t *testing.T) {
	src, err := emit.Render(samplePackage(
		model.LabeledType{Name: "Zeta", Kind: model.KindStruct, Label: "zeta"},
		model.LabeledType{Name: "Alpha", Kind: model.KindStruct, Label: "alpha"},
	))
	require.NoError(t, err)

	got := string(src)
	assert.Less(t, strings.Index(got, "AlphaLabel"), strings.Index(got, "ZetaLabel"))
}

func TestRenderInsideCapabilityPackage(t *testing.T) {
	pkg := &model.Package{
		Dir:        ".",
		Name:       "typelabel",
		ImportPath: "github.com/typelabel/typelabel",
		Types: []model.LabeledType{
			{Name: "Thing", Kind: model.KindStruct, Label: "thing"},
		},
	}
	src, err := emit.Render(pkg)
	require.NoError(t, err)

	got := string(src)
	assert.NotContains(t, got, "import")
	assert.Contains(t, got, "var _ Labeled = *new(Thing)")
}

func TestWriteAndRemove(t *testing.T) {
	dir := t.TempDir()
	pkg := samplePackage(
		model.LabeledType{Name: "Thing", Kind: model.KindStruct, Label: "thing"},
	)
	pkg.Dir = dir

	require.NoError(t, emit.Write(pkg))

	path := filepath.Join(dir, emit.GeneratedFile)
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), `const ThingLabel = "thing"`)

	removed, err := emit.Remove(dir)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = emit.Remove(dir)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestImportPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.25\n"), 0o644))
	sub := filepath.Join(dir, "internal", "api")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	got, err := emit.ImportPath(sub)
	require.NoError(t, err)
	assert.Equal(t, "example.com/demo/internal/api", got)

	got, err = emit.ImportPath(dir)
	require.NoError(t, err)
	assert.Equal(t, "example.com/demo", got)
}
