package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Source names the text format a parse error came from.
type Source string

const (
	SourceTemplate   Source = "template"
	SourceDriverData Source = "driver data"
)

// maxQuoted bounds how much of the remainder is quoted in Error.
const maxQuoted = 40

// Position is a location in the parsed text. Line and Column are 1-based,
// Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ParseError reports input that could not be consumed.
type ParseError struct {
	// Source is the format being parsed.
	Source Source
	// Remainder is the unconsumed input, starting at the statement that
	// failed to parse.
	Remainder string
	// Offset is the byte offset of Remainder in the input.
	Offset int
	// Pos is where the deepest token match failed.
	Pos Position
	// Expected describes the token expected at Pos.
	Expected string
}

func (e *ParseError) Error() string {
	rem := e.Remainder
	if utf8.RuneCountInString(rem) > maxQuoted {
		rem = string([]rune(rem)[:maxQuoted]) + "..."
	}

	return fmt.Sprintf("%s: expected %s at %s, unconsumed input %q", e.Source, e.Expected, e.Pos, rem)
}

// positionOf converts a byte offset into a Position.
func positionOf(src string, offset int) Position {
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	col := utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1

	return Position{Offset: offset, Line: line, Column: col}
}
