package model

import (
	"fmt"
	"sort"
	"strings"
)

// Diagnostic is a positioned error about a directive or declaration. All
// generator failures surface as diagnostics; there is no recovery path and
// no partial output once one is raised.
type Diagnostic struct {
	Loc *Location
	Msg string
}

// Errorf builds a Diagnostic at loc. A nil loc is allowed for failures with
// no single source position, such as a requested type that does not exist.
func Errorf(loc *Location, format string, args ...any) *Diagnostic {
	return &Diagnostic{Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

func (d *Diagnostic) Error() string {
	if d.Loc == nil {
		return d.Msg
	}
	return d.Loc.String() + ": " + d.Msg
}

// Diagnostics is an ordered collection of diagnostics. It implements error
// so a scan result can be returned as a single failure.
type Diagnostics []*Diagnostic

func (ds Diagnostics) Error() string {
	msgs := make([]string, len(ds))
	for i, d := range ds {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns ds as an error, or nil when there are no diagnostics.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return ds
}

// Sort orders diagnostics by file, then line, then column, for stable
// output across concurrent scans.
func (ds Diagnostics) Sort() {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i].Loc, ds[j].Loc
		switch {
		case a == nil && b == nil:
			return ds[i].Msg < ds[j].Msg
		case a == nil:
			return false
		case b == nil:
			return true
		case a.FilePath != b.FilePath:
			return a.FilePath < b.FilePath
		case a.StartLine != b.StartLine:
			return a.StartLine < b.StartLine
		default:
			return a.StartColumn < b.StartColumn
		}
	})
}
