package position

import (
	"strings"
	"unicode/utf8"
)

// Position is a 1-indexed line and column. Columns count characters, not
// bytes, so swatch names with accents don't skew them.
type Position struct {
	Line   int
	Column int
}

// Of converts a byte offset in content to a Position. Offsets past the end
// are clamped; an offset inside a multi-byte character points at that
// character.
func Of(content string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}

	before := content[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1

	// Back up to the start of a rune split by offset
	for offset < len(content) && offset > lineStart && !utf8.RuneStart(content[offset]) {
		offset--
	}

	return Position{
		Line:   strings.Count(before, "\n") + 1,
		Column: utf8.RuneCountInString(content[lineStart:offset]) + 1,
	}
}
