// Package scan locates label directives in parsed Go source and validates
// their attachment to type declarations. It works strictly on one file's
// declaration syntax: no type checking, no cross-file state.
package scan

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/typelabel/typelabel/model"
)

// Result holds everything scanning one file produced. A file either
// contributes labeled types or diagnostics; a file with diagnostics never
// contributes output downstream.
type Result struct {
	Path        string
	Package     string
	Types       []model.LabeledType
	Decls       []model.TypeDecl
	Diagnostics model.Diagnostics
}

// File scans a parsed source file. The tree must have been produced from
// src; node text and positions index into it.
func File(root *sitter.Node, path string, src []byte) *Result {
	s := &scanner{path: path, src: src, res: &Result{Path: path}}

	for i := uint(0); i < uint(root.ChildCount()); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "package_clause":
			s.packageClause(child)
		case "type_declaration":
			s.typeDeclaration(child)
		}
	}

	s.checkAttachment(root)
	return s.res
}

type scanner struct {
	path string
	src  []byte
	res  *Result
}

func (s *scanner) packageClause(node *sitter.Node) {
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == "package_identifier" {
			s.res.Package = s.text(child)
			return
		}
	}
}

// typeDeclaration handles one top-level `type` declaration, grouped or not.
// Directives may precede the declaration itself or an individual spec
// inside a grouped declaration; a declaration-level directive on a group
// with several specs has no single target and is rejected.
func (s *scanner) typeDeclaration(decl *sitter.Node) {
	var specs []*sitter.Node
	for i := uint(0); i < uint(decl.NamedChildCount()); i++ {
		child := decl.NamedChild(i)
		if child == nil {
			continue
		}
		if k := child.Kind(); k == "type_spec" || k == "type_alias" {
			specs = append(specs, child)
		}
	}

	declComments := s.precedingDirectives(decl)
	if len(specs) > 1 {
		for _, c := range declComments {
			s.errorf(c.loc, "directive on a grouped type declaration with %d specs is ambiguous; move it onto one type", len(specs))
		}
		declComments = nil
	}

	for _, spec := range specs {
		s.typeSpec(spec, append(declComments, s.precedingDirectives(spec)...))
	}
}

func (s *scanner) typeSpec(spec *sitter.Node, directives []directiveComment) {
	nameNode := spec.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := s.text(nameNode)
	loc := s.location(spec)
	s.res.Decls = append(s.res.Decls, model.TypeDecl{Name: name, Loc: loc})

	if len(directives) == 0 {
		return
	}
	if len(directives) > 1 {
		s.errorf(directives[1].loc, "duplicate label directive on %s (first at %s)", name, directives[0].loc)
		return
	}

	d, diag := parseDirective(directives[0].text, directives[0].loc)
	if diag != nil {
		s.res.Diagnostics = append(s.res.Diagnostics, diag)
		return
	}

	if spec.Kind() == "type_alias" {
		s.errorf(d.Loc, "cannot label the type alias %s: the generated method would belong to the aliased type; label that type instead", name)
		return
	}

	kind := model.KindNamed
	if typ := spec.ChildByFieldName("type"); typ != nil {
		switch typ.Kind() {
		case "struct_type":
			kind = model.KindStruct
		case "interface_type":
			s.errorf(d.Loc, "cannot generate a label method on the interface type %s; implement typelabel.Labeled manually", name)
			return
		}
	}

	s.res.Types = append(s.res.Types, model.LabeledType{
		Name:       name,
		TypeParams: s.typeParams(spec),
		Kind:       kind,
		Label:      d.Label,
		Loc:        loc,
	})
}

// typeParams collects the declaration's type parameter names. Only direct
// identifier children of each parameter declaration are names; anything
// nested deeper belongs to the constraint.
func (s *scanner) typeParams(spec *sitter.Node) []string {
	list := spec.ChildByFieldName("type_parameters")
	if list == nil {
		return nil
	}
	var params []string
	for i := uint(0); i < uint(list.NamedChildCount()); i++ {
		pd := list.NamedChild(i)
		if pd == nil {
			continue
		}
		for j := uint(0); j < uint(pd.ChildCount()); j++ {
			child := pd.Child(j)
			if child != nil && child.Kind() == "identifier" {
				params = append(params, s.text(child))
			}
		}
	}
	return params
}

type directiveComment struct {
	text string
	loc  *model.Location
}

// precedingDirectives returns the directives in the contiguous comment
// block directly above node, in source order. A blank line breaks the
// block, matching how doc comments bind.
func (s *scanner) precedingDirectives(node *sitter.Node) []directiveComment {
	var out []directiveComment
	below := node
	for cur := node.PrevSibling(); cur != nil; cur = cur.PrevSibling() {
		if cur.Kind() != "comment" || !adjacent(cur, below) {
			break
		}
		if text := s.text(cur); isDirective(text) {
			out = append([]directiveComment{{text: text, loc: s.location(cur)}}, out...)
		}
		below = cur
	}
	return out
}

// checkAttachment walks the whole tree and reports every directive comment
// that does not bind to a labelable top-level type declaration. Together
// with the declaration pass this makes directives total: each one either
// produces an association or a diagnostic, never silence.
func (s *scanner) checkAttachment(node *sitter.Node) {
	if node.Kind() == "comment" && isDirective(s.text(node)) {
		s.checkDirectiveTarget(node)
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		if child := node.Child(i); child != nil {
			s.checkAttachment(child)
		}
	}
}

func (s *scanner) checkDirectiveTarget(comment *sitter.Node) {
	loc := s.location(comment)

	cur := comment
	for {
		next := cur.NextSibling()
		if next == nil || !adjacent(cur, next) {
			s.errorf(loc, "label directive is not attached to a type declaration")
			return
		}
		if next.Kind() == "comment" {
			cur = next
			continue
		}

		switch next.Kind() {
		case "type_declaration":
			if parent := next.Parent(); parent != nil && parent.Kind() != "source_file" {
				s.errorf(loc, "cannot label a type declared inside a function")
			}
		case "type_spec", "type_alias":
			// Bound inside a grouped declaration; the declaration pass
			// owns validation from here.
		default:
			s.errorf(loc, "label directive applies only to type declarations, found %s", friendlyKind(next.Kind()))
		}
		return
	}
}

// adjacent reports whether upper's last line directly touches lower's first
// line, with no blank line between.
func adjacent(upper, lower *sitter.Node) bool {
	return int(lower.StartPosition().Row)-int(upper.EndPosition().Row) <= 1
}

func friendlyKind(kind string) string {
	return strings.ReplaceAll(kind, "_", " ")
}

func (s *scanner) errorf(loc *model.Location, format string, args ...any) {
	s.res.Diagnostics = append(s.res.Diagnostics, model.Errorf(loc, format, args...))
}

func (s *scanner) text(n *sitter.Node) string {
	return n.Utf8Text(s.src)
}

func (s *scanner) location(n *sitter.Node) *model.Location {
	return &model.Location{
		FilePath:    s.path,
		StartLine:   int(n.StartPosition().Row) + 1,
		EndLine:     int(n.EndPosition().Row) + 1,
		StartColumn: int(n.StartPosition().Column),
		EndColumn:   int(n.EndPosition().Column),
	}
}
