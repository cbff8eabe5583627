// Package parser wraps the Tree-sitter Go grammar behind the small surface
// the scanner needs: parse a file, hand back the syntax tree and the source
// bytes the tree's nodes index into.
package parser

import (
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

var goLanguage = sitter.NewLanguage(tree_sitter_go.Language())

// Parser parses Go source files. It is not safe for concurrent use; the
// processor gives each worker its own instance.
type Parser struct {
	ts *sitter.Parser
}

// New creates a Parser with the Go grammar loaded.
func New() (*Parser, error) {
	ts := sitter.NewParser()
	if err := ts.SetLanguage(goLanguage); err != nil {
		return nil, fmt.Errorf("load go grammar: %w", err)
	}
	return &Parser{ts: ts}, nil
}

// Close releases the underlying Tree-sitter parser.
func (p *Parser) Close() {
	if p.ts != nil {
		p.ts.Close()
		p.ts = nil
	}
}

// Parse parses src. Sources with syntax errors are rejected outright: a
// directive in a file the compiler would refuse must not produce output.
// The caller owns the returned tree and must Close it.
func (p *Parser) Parse(src []byte, path string) (*sitter.Tree, error) {
	tree := p.ts.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse %s: tree-sitter returned no tree", path)
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, fmt.Errorf("parse %s: source contains syntax errors", path)
	}
	return tree, nil
}

// ParseFile reads and parses the file at path, returning the tree together
// with the source bytes its nodes refer to.
func (p *Parser) ParseFile(path string) (*sitter.Tree, []byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := p.Parse(src, path)
	if err != nil {
		return nil, nil, err
	}
	return tree, src, nil
}
