// Package normalize rewrites color-option swatch elements so that their
// inline style carries only the background declaration.
package normalize

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"bennypowers.dev/swatchnorm/internal/log"
)

// Pattern matches one swatch element of the exact shape the color picker
// emits. Attributes must appear in this order with this spacing; anything
// else is left alone.
var Pattern = regexp.MustCompile(
	`<div class="color-option" data-color="(?P<color>[^"]+)" data-name="(?P<name>[^"]+)" ` +
		`style="(?P<style>background: (?P<background>[^;]+);[^"]*)" ` +
		`onclick="selectColor\('(?P<arg1>[^']+)', '(?P<arg2>[^']+)', (?P<arg3>[^)]+)\)" ` +
		`title="(?P<title>[^"]+)"></div>`,
)

var (
	colorIndex      = Pattern.SubexpIndex("color")
	nameIndex       = Pattern.SubexpIndex("name")
	styleIndex      = Pattern.SubexpIndex("style")
	backgroundIndex = Pattern.SubexpIndex("background")
	arg1Index       = Pattern.SubexpIndex("arg1")
	arg2Index       = Pattern.SubexpIndex("arg2")
	arg3Index       = Pattern.SubexpIndex("arg3")
	titleIndex      = Pattern.SubexpIndex("title")
)

// Span is a half-open byte range [Start, End) in a document
type Span struct {
	Start int
	End   int
}

// Contains reports whether other lies entirely within s
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Swatch holds the values captured from one matched element
type Swatch struct {
	Color      string
	Name       string
	Background string
	Args       [3]string
	Title      string
	// Style is the whole original style attribute value, including the
	// declarations that normalization drops.
	Style string
	Span  Span
}

// String renders the normalized element.
func (s Swatch) String() string {
	var b strings.Builder
	b.WriteString(`<div class="color-option" data-color="`)
	b.WriteString(s.Color)
	b.WriteString(`" data-name="`)
	b.WriteString(s.Name)
	b.WriteString(`" style="background: `)
	b.WriteString(s.Background)
	b.WriteString(`;" onclick="selectColor('`)
	b.WriteString(s.Args[0])
	b.WriteString(`', '`)
	b.WriteString(s.Args[1])
	b.WriteString(`', `)
	b.WriteString(s.Args[2])
	b.WriteString(`)" title="`)
	b.WriteString(s.Title)
	b.WriteString(`"></div>`)
	return b.String()
}

// Normalized reports whether the element already carries only the
// background declaration.
func (s Swatch) Normalized() bool {
	return s.Style == "background: "+s.Background+";"
}

// Find returns every swatch in content, leftmost first, without overlap.
func Find(content string) []Swatch {
	indexes := Pattern.FindAllStringSubmatchIndex(content, -1)
	if len(indexes) == 0 {
		return nil
	}

	swatches := make([]Swatch, 0, len(indexes))
	for _, loc := range indexes {
		group := func(i int) string {
			return content[loc[2*i]:loc[2*i+1]]
		}
		swatches = append(swatches, Swatch{
			Color:      group(colorIndex),
			Name:       group(nameIndex),
			Background: group(backgroundIndex),
			Args:       [3]string{group(arg1Index), group(arg2Index), group(arg3Index)},
			Title:      group(titleIndex),
			Style:      group(styleIndex),
			Span:       Span{Start: loc[0], End: loc[1]},
		})
	}
	return swatches
}

// Normalize rewrites every swatch in content. Bytes outside match spans are
// copied through untouched.
func Normalize(content string) (string, []Swatch) {
	swatches := Find(content)
	if len(swatches) == 0 {
		return content, nil
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, s := range swatches {
		b.WriteString(content[last:s.Span.Start])
		b.WriteString(s.String())
		last = s.Span.End
	}
	b.WriteString(content[last:])

	return b.String(), swatches
}

// Result describes one NormalizeFile run
type Result struct {
	Path     string
	Swatches []Swatch
	// Changed is false when the rewritten content equals what was on disk.
	// The file is written either way.
	Changed bool
}

// NormalizeFile normalizes the file at path in place.
func NormalizeFile(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the fixed swatch page or a test fixture
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	normalized, swatches := Normalize(content)

	for _, s := range swatches {
		if !s.Normalized() {
			log.Debug("%s: %s (%s) style %q -> %q", path, s.Name, s.Color, s.Style, "background: "+s.Background+";")
		}
	}

	if err := os.WriteFile(path, []byte(normalized), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	result := &Result{
		Path:     path,
		Swatches: swatches,
		Changed:  normalized != content,
	}
	log.Info("%s: %d swatches matched, changed=%t", path, len(swatches), result.Changed)
	return result, nil
}
