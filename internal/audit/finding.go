package audit

import "fmt"

// Severity ranks a finding
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Kind identifies what a finding is about
type Kind string

const (
	// UnmatchedSwatch is a color-option element the rewrite will not touch
	UnmatchedSwatch Kind = "unmatched-swatch"
	// DroppedStyle is a declaration the rewrite will discard
	DroppedStyle Kind = "dropped-style"
	// InvalidBackground is a background value that is not a CSS color
	InvalidBackground Kind = "invalid-background"
	// ColorMismatch is a data-color that differs from the background
	ColorMismatch Kind = "color-mismatch"
	// HandlerArity is an onclick that is not a three-argument selectColor call
	HandlerArity Kind = "handler-arity"
	// HandlerMismatch is a selectColor color argument that differs from data-color
	HandlerMismatch Kind = "handler-mismatch"
)

// Finding is one reported problem. Line and Column are 1-indexed; Column
// counts characters.
type Finding struct {
	Path     string
	Line     int
	Column   int
	Severity Severity
	Kind     Kind
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s [%s]", f.Path, f.Line, f.Column, f.Severity, f.Message, f.Kind)
}

// Report collects findings across files
type Report struct {
	Files    []string
	Findings []Finding
}

// Count returns the number of findings with the given severity
func (r *Report) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Failed reports whether the findings should fail a check. Errors always
// fail; warnings fail only when strict.
func (r *Report) Failed(strict bool) bool {
	if r.Count(SeverityError) > 0 {
		return true
	}
	return strict && r.Count(SeverityWarning) > 0
}
