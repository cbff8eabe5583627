package scan

import (
	"strconv"
	"strings"

	"github.com/typelabel/typelabel/model"
)

// Prefix marks a typelabel directive comment. Like go:generate, the marker
// must follow the comment slashes with no space.
const Prefix = "//typelabel:"

// isDirective reports whether a comment carries a typelabel directive.
func isDirective(comment string) bool {
	return strings.HasPrefix(comment, Prefix)
}

// parseDirective decodes a directive comment into its label value. The only
// verb is "label", and its argument must be a single Go string literal
// (interpreted or raw). The decoded value is kept exactly as written: no
// trimming, no re-escaping.
func parseDirective(comment string, loc *model.Location) (*model.Directive, *model.Diagnostic) {
	body := comment[len(Prefix):]

	verb := body
	rest := ""
	if i := strings.IndexAny(body, " \t"); i >= 0 {
		verb, rest = body[:i], body[i+1:]
	}
	if verb != "label" {
		return nil, model.Errorf(loc, "unknown typelabel directive %q, expected %slabel", verb, Prefix)
	}

	rest = strings.TrimLeft(rest, " \t")
	if rest == "" {
		return nil, model.Errorf(loc, `missing label value, e.g. %slabel "my label"`, Prefix)
	}
	if rest[0] != '"' && rest[0] != '`' {
		return nil, model.Errorf(loc, "label must be a Go string literal, got %q", rest)
	}

	lit, err := strconv.QuotedPrefix(rest)
	if err != nil {
		return nil, model.Errorf(loc, "malformed label literal %s", rest)
	}
	if trailing := strings.TrimSpace(rest[len(lit):]); trailing != "" {
		return nil, model.Errorf(loc, "unexpected %q after label literal", trailing)
	}

	label, err := strconv.Unquote(lit)
	if err != nil {
		return nil, model.Errorf(loc, "malformed label literal %s", lit)
	}

	return &model.Directive{Raw: comment, Label: label, Loc: loc}, nil
}
