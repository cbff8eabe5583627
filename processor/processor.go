// Package processor drives label generation over a source tree in two
// phases: scan every package for directives, then — only when scanning
// produced no diagnostics at all — emit the generated files. A diagnostic
// anywhere means nothing is written; generation fully succeeds or fails
// closed.
package processor

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/typelabel/typelabel/emit"
	"github.com/typelabel/typelabel/model"
	"github.com/typelabel/typelabel/parser"
	"github.com/typelabel/typelabel/scan"
)

// Processor holds one invocation's settings.
type Processor struct {
	// Workers bounds concurrent package scans and writes.
	Workers int
	// Types restricts generation to the named types. A listed type that
	// exists without a directive, or does not exist at all, is a
	// diagnostic: asking for a label a type does not declare must fail,
	// not silently emit nothing.
	Types []string
	// DryRun scans and reports but writes nothing.
	DryRun bool
	Log    *slog.Logger
}

// New returns a Processor with workers bounded at n, defaulting to the
// number of CPUs.
func New(n int) *Processor {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return &Processor{Workers: n, Log: slog.Default()}
}

// Report summarizes one run.
type Report struct {
	// Packages that have labeled types after any -type restriction.
	Packages []*model.Package
	// Diagnostics from scanning; non-empty means no file was touched.
	Diagnostics model.Diagnostics
	Written     []string
	Removed     []string
}

// packageResult is one scanned package directory.
type packageResult struct {
	Dir         string
	Name        string
	Types       []model.LabeledType
	Decls       []model.TypeDecl
	Diagnostics model.Diagnostics
}

// Run scans root and regenerates label implementations beneath it.
func (p *Processor) Run(ctx context.Context, root string) (*Report, error) {
	dirs, err := DiscoverPackages(root)
	if err != nil {
		return nil, err
	}
	p.Log.Debug("discovered packages", "root", root, "count", len(dirs))

	results := make([]*packageResult, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.scanPackage(dir)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := p.aggregate(root, results)
	if len(report.Diagnostics) > 0 || p.DryRun {
		return report, nil
	}

	var mu sync.Mutex
	var g2 errgroup.Group
	g2.SetLimit(p.Workers)
	for _, pkg := range report.Packages {
		g2.Go(func() error {
			importPath, err := emit.ImportPath(pkg.Dir)
			if err != nil {
				return err
			}
			pkg.ImportPath = importPath
			if err := emit.Write(pkg); err != nil {
				return err
			}
			p.Log.Debug("generated", "dir", pkg.Dir, "types", len(pkg.Types))
			mu.Lock()
			report.Written = append(report.Written, filepath.Join(pkg.Dir, emit.GeneratedFile))
			mu.Unlock()
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(report.Written)

	// Packages that no longer have labeled types must not keep a stale
	// generated file.
	for _, res := range results {
		if res == nil || pkgListed(report.Packages, res.Dir) {
			continue
		}
		removed, err := emit.Remove(res.Dir)
		if err != nil {
			return nil, err
		}
		if removed {
			p.Log.Debug("removed stale generated file", "dir", res.Dir)
			report.Removed = append(report.Removed, filepath.Join(res.Dir, emit.GeneratedFile))
		}
	}

	return report, nil
}

// aggregate merges per-package scan results, applies the -type restriction,
// and turns unsatisfied requests into diagnostics.
func (p *Processor) aggregate(root string, results []*packageResult) *Report {
	report := &Report{}

	requested := make(map[string]bool, len(p.Types))
	for _, name := range p.Types {
		requested[name] = true
	}
	found := make(map[string]bool, len(requested))

	for _, res := range results {
		if res == nil {
			continue
		}
		report.Diagnostics = append(report.Diagnostics, res.Diagnostics...)

		types := res.Types
		if len(requested) > 0 {
			types = nil
			for _, t := range res.Types {
				if requested[t.Name] {
					types = append(types, t)
					found[t.Name] = true
				}
			}
		}
		if len(types) > 0 {
			report.Packages = append(report.Packages, &model.Package{
				Dir:   res.Dir,
				Name:  res.Name,
				Types: types,
			})
		}
	}

	missing := make([]string, 0, len(requested))
	for name := range requested {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	for _, name := range missing {
		if loc := findDecl(results, name); loc != nil {
			report.Diagnostics = append(report.Diagnostics, model.Errorf(loc, "type %s has no label directive", name))
		} else {
			report.Diagnostics = append(report.Diagnostics, model.Errorf(nil, "type %s not found under %s", name, root))
		}
	}

	report.Diagnostics.Sort()
	return report
}

// scanPackage parses and scans every eligible file in one directory. Each
// call owns its parser; Tree-sitter parsers are not safe to share.
func (p *Processor) scanPackage(dir string) (*packageResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	ps, err := parser.New()
	if err != nil {
		return nil, err
	}
	defer ps.Close()

	res := &packageResult{Dir: dir}
	for _, entry := range entries {
		if entry.IsDir() || !eligibleFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		tree, src, err := ps.ParseFile(path)
		if err != nil {
			// A file the compiler would reject is a diagnostic, not an
			// infrastructure failure: the run must fail closed.
			res.Diagnostics = append(res.Diagnostics, model.Errorf(nil, "%v", err))
			continue
		}
		fileRes := scan.File(tree.RootNode(), path, src)
		tree.Close()

		if res.Name == "" {
			res.Name = fileRes.Package
		}
		res.Types = append(res.Types, fileRes.Types...)
		res.Decls = append(res.Decls, fileRes.Decls...)
		res.Diagnostics = append(res.Diagnostics, fileRes.Diagnostics...)
	}
	return res, nil
}

// DiscoverPackages returns every directory under root that holds at least
// one eligible Go file, in sorted order. Hidden, underscore, vendor and
// testdata directories are skipped, matching the go tool's own rules.
func DiscoverPackages(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); path != root && skipDir(name) {
			return filepath.SkipDir
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if !entry.IsDir() && eligibleFile(entry.Name()) {
				dirs = append(dirs, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(dirs)
	return dirs, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "vendor" || name == "testdata"
}

// eligibleFile reports whether a file should be scanned for directives.
func eligibleFile(name string) bool {
	return strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go") &&
		!strings.HasPrefix(name, "zz_generated.") &&
		!strings.HasPrefix(name, ".") &&
		!strings.HasPrefix(name, "_")
}

func findDecl(results []*packageResult, name string) *model.Location {
	for _, res := range results {
		if res == nil {
			continue
		}
		for _, decl := range res.Decls {
			if decl.Name == name {
				return decl.Loc
			}
		}
	}
	return nil
}

func pkgListed(pkgs []*model.Package, dir string) bool {
	for _, pkg := range pkgs {
		if pkg.Dir == dir {
			return true
		}
	}
	return false
}
