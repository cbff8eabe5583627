// Package emit materializes labeled types as Go source: one generated file
// per package, containing a label constant and a TypeLabel method for each
// annotated type.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/tools/imports"

	"github.com/typelabel/typelabel/model"
)

const (
	// GeneratedFile is the per-package output file name. Scanning and
	// package discovery skip it, so regeneration is idempotent.
	GeneratedFile = "zz_generated.typelabel.go"

	// capabilityImport is the package defining the Labeled interface the
	// generated methods implement. Generating inside that package itself
	// drops the import and the qualifier.
	capabilityImport = "github.com/typelabel/typelabel"
)

// Render produces the formatted content of the generated file for pkg.
// Types are emitted in name order so output is deterministic regardless of
// scan order. Rendering either yields a complete well-formed file or an
// error; there is no partial output.
func Render(pkg *model.Package) ([]byte, error) {
	types := make([]model.LabeledType, len(pkg.Types))
	copy(types, pkg.Types)
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })

	qualifier := "typelabel."
	if pkg.ImportPath == capabilityImport {
		qualifier = ""
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by labelgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg.Name)
	if qualifier != "" {
		fmt.Fprintf(&buf, "import %q\n\n", capabilityImport)
	}

	for i, t := range types {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "// %sLabel is the label of %s as a concept.\n", t.Name, t.Name)
		fmt.Fprintf(&buf, "const %sLabel = %q\n\n", t.Name, t.Label)
		fmt.Fprintf(&buf, "// TypeLabel implements %sLabeled for %s.\n", qualifier, t.Name)
		fmt.Fprintf(&buf, "func (%s) TypeLabel() string { return %sLabel }\n", t.Receiver(), t.Name)
		if len(t.TypeParams) == 0 {
			fmt.Fprintf(&buf, "\nvar _ %sLabeled = *new(%s)\n", qualifier, t.Name)
		}
	}

	// goimports both formats and prunes the capability import when no
	// emitted declaration references it (every type generic, for example).
	out, err := imports.Process(GeneratedFile, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated code for %s: %w", pkg.Dir, err)
	}
	return out, nil
}

// Write renders pkg and writes the generated file into its directory.
func Write(pkg *model.Package) error {
	src, err := Render(pkg)
	if err != nil {
		return err
	}
	path := filepath.Join(pkg.Dir, GeneratedFile)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Remove deletes a stale generated file from dir, if present, and reports
// whether one was removed. Packages whose last directive was removed must
// not keep implementations around.
func Remove(dir string) (bool, error) {
	err := os.Remove(filepath.Join(dir, GeneratedFile))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
