// Package audit reports color-option swatches that the normalizer skips or
// would rewrite lossily. It never modifies files.
package audit

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/swatchnorm/internal/color"
	"bennypowers.dev/swatchnorm/internal/log"
	"bennypowers.dev/swatchnorm/internal/normalize"
	"bennypowers.dev/swatchnorm/internal/parser/css"
	"bennypowers.dev/swatchnorm/internal/parser/html"
	"bennypowers.dev/swatchnorm/internal/parser/js"
	"bennypowers.dev/swatchnorm/internal/position"
	"github.com/bmatcuk/doublestar/v4"
)

// SwatchClass marks color picker swatches
const SwatchClass = "color-option"

// HandlerName is the function swatch onclick handlers must call
const HandlerName = "selectColor"

// ErrNoFiles is returned when no pattern matches a file
var ErrNoFiles = errors.New("no files matched")

// attributeOrder is the attribute sequence the normalizer recognises
var attributeOrder = []string{"class", "data-color", "data-name", "style", "onclick", "title"}

// Auditor inspects swatch pages
type Auditor struct {
	// Root is the directory patterns are resolved against
	Root string
}

// New creates an Auditor resolving patterns against root
func New(root string) *Auditor {
	return &Auditor{Root: root}
}

// Run audits every file matching patterns, in sorted order
func (a *Auditor) Run(patterns []string) (*Report, error) {
	files, err := a.Expand(patterns)
	if err != nil {
		return nil, err
	}

	report := &Report{Files: files}
	for _, file := range files {
		findings, err := a.File(file)
		if err != nil {
			return nil, err
		}
		log.Info("%s: %d findings", file, len(findings))
		report.Findings = append(report.Findings, findings...)
	}
	return report, nil
}

// Expand resolves doublestar patterns to slash-separated paths relative to
// Root, deduplicated and sorted.
func (a *Auditor) Expand(patterns []string) ([]string, error) {
	fsys := os.DirFS(a.Root)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			log.Warn("Pattern %q matched no files", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, strings.Join(patterns, ", "))
	}
	slices.Sort(files)
	return files, nil
}

// File audits one file. path is relative to Root unless absolute.
func (a *Auditor) File(path string) ([]Finding, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(a.Root, filepath.FromSlash(path))
	}

	data, err := os.ReadFile(full) //nolint:gosec // G304: user-selected pages under the working directory
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return a.Content(path, string(data)), nil
}

// Content audits an in-memory document, reporting under path
func (a *Auditor) Content(path, content string) []Finding {
	swatches := normalize.Find(content)

	var findings []Finding
	findings = append(findings, unmatched(path, content, swatches)...)

	cssParser := css.AcquireParser()
	defer css.ReleaseParser(cssParser)
	jsParser := js.AcquireParser()
	defer js.ReleaseParser(jsParser)

	for _, s := range swatches {
		pos := position.Of(content, s.Span.Start)
		at := func(sev Severity, kind Kind, format string, args ...any) {
			findings = append(findings, Finding{
				Path:     path,
				Line:     pos.Line,
				Column:   pos.Column,
				Severity: sev,
				Kind:     kind,
				Message:  fmt.Sprintf(format, args...),
			})
		}

		droppedStyles(cssParser, s, at)
		checkColors(s, at)
		checkHandler(jsParser, s, at)
	}

	slices.SortStableFunc(findings, func(x, y Finding) int {
		if c := cmp.Compare(x.Line, y.Line); c != 0 {
			return c
		}
		return cmp.Compare(x.Column, y.Column)
	})
	return findings
}

type reporter func(sev Severity, kind Kind, format string, args ...any)

// unmatched reports swatch elements that no normalizer match covers
func unmatched(path, content string, swatches []normalize.Swatch) []Finding {
	parser := html.AcquireParser()
	defer html.ReleaseParser(parser)

	var findings []Finding
	for _, e := range parser.Elements(content, SwatchClass) {
		span := normalize.Span{Start: int(e.StartByte), End: int(e.EndByte)} //nolint:gosec // G115: offsets bounded by file size
		if slices.ContainsFunc(swatches, func(s normalize.Swatch) bool { return s.Span.Contains(span) }) {
			continue
		}

		label := "swatch"
		if name, ok := e.Attr("data-name"); ok && name != "" {
			label = fmt.Sprintf("swatch %q", name)
		}
		pos := position.Of(content, span.Start)
		findings = append(findings, Finding{
			Path:     path,
			Line:     pos.Line,
			Column:   pos.Column,
			Severity: SeverityWarning,
			Kind:     UnmatchedSwatch,
			Message:  fmt.Sprintf("%s will not be normalized: %s", label, mismatchReason(e)),
		})
	}
	return findings
}

// mismatchReason explains why an element falls outside the rewritable shape
func mismatchReason(e html.Element) string {
	names := make([]string, 0, len(e.Attributes))
	for _, a := range e.Attributes {
		names = append(names, strings.ToLower(a.Name))
	}

	for _, want := range attributeOrder {
		if !slices.Contains(names, want) {
			return fmt.Sprintf("missing %s attribute", want)
		}
	}
	if !slices.Equal(names, attributeOrder) {
		return fmt.Sprintf("attributes are ordered %s, expected %s",
			strings.Join(names, " "), strings.Join(attributeOrder, " "))
	}
	if class, _ := e.Attr("class"); class != SwatchClass {
		return fmt.Sprintf("class is %q, expected exactly %q", class, SwatchClass)
	}
	if style, _ := e.Attr("style"); !strings.HasPrefix(style, "background: ") {
		return "style does not start with a background declaration"
	}
	if e.Tag != "div" {
		return fmt.Sprintf("element is <%s>, expected <div>", e.Tag)
	}
	return "spacing or quoting differs from the expected markup"
}

// droppedStyles reports every declaration after the leading background
func droppedStyles(parser *css.Parser, s normalize.Swatch, report reporter) {
	if s.Normalized() {
		return
	}
	declarations, err := parser.Declarations(s.Style)
	if err != nil {
		log.Debug("Failed to parse style of %s: %v", s.Name, err)
		return
	}
	for i, d := range declarations {
		if i == 0 {
			continue
		}
		report(SeverityInfo, DroppedStyle, "swatch %q loses %s: %s", s.Name, d.Property, d.Value)
	}
}

func checkColors(s normalize.Swatch, report reporter) {
	if _, err := color.Parse(s.Background); err != nil {
		report(SeverityError, InvalidBackground, "swatch %q background %q is not a CSS color", s.Name, s.Background)
		return
	}
	same, err := color.Equal(s.Color, s.Background)
	if err != nil {
		report(SeverityWarning, ColorMismatch, "swatch %q data-color %q is not a CSS color", s.Name, s.Color)
		return
	}
	if !same {
		report(SeverityWarning, ColorMismatch, "swatch %q data-color %s does not match background %s", s.Name, s.Color, s.Background)
	}
}

func checkHandler(parser *js.Parser, s normalize.Swatch, report reporter) {
	handler := fmt.Sprintf("%s('%s', '%s', %s)", HandlerName, s.Args[0], s.Args[1], s.Args[2])
	call := parser.Call(handler)
	if call == nil || call.Callee != HandlerName {
		report(SeverityError, HandlerArity, "swatch %q onclick is not a %s call", s.Name, HandlerName)
		return
	}
	if len(call.Arguments) != 3 {
		report(SeverityError, HandlerArity, "swatch %q calls %s with %d arguments, expected 3", s.Name, HandlerName, len(call.Arguments))
		return
	}

	arg := call.Arguments[0].Value
	same, err := color.Equal(arg, s.Color)
	if err != nil {
		same = arg == s.Color
	}
	if !same {
		report(SeverityWarning, HandlerMismatch, "swatch %q selects %s but data-color is %s", s.Name, arg, s.Color)
	}
}
