package grammar

import (
	"strconv"
	"strings"
)

// Token descriptions used in ParseError.Expected.
const (
	expectClass      = `"@CLASS"`
	expectMap        = `"MAP"`
	expectDef        = `"DEF"`
	expectOpt        = `"OPT"`
	expectDot        = `"."`
	expectSpace      = "whitespace"
	expectIdentifier = "identifier"
	expectInt32      = "32-bit signed integer"
)

// ParseTemplate parses a template file. The whole input must be consumed.
func ParseTemplate(src string) (*Template, error) {
	p := newParser(src, SourceTemplate)

	p.skipSpace()
	start := p.pos

	className, ok := p.classStatement()
	if !ok {
		return nil, p.errorFrom(start)
	}

	p.skipSpace()

	t := &Template{ClassName: className}

	for {
		start = p.pos

		m, ok := p.mapStatement()
		if !ok {
			p.pos = start
			break
		}

		p.skipSpace()

		t.Maps = append(t.Maps, m)
	}

	if !p.atEnd() {
		return nil, p.errorFrom(p.pos)
	}

	return t, nil
}

// ParseDriverData parses a driver-data file. The whole input must be consumed.
func ParseDriverData(src string) ([]DefineStatement, error) {
	p := newParser(src, SourceDriverData)

	p.skipSpace()

	var defs []DefineStatement

	for {
		start := p.pos

		d, ok := p.defineStatement()
		if !ok {
			p.pos = start
			break
		}

		p.skipSpace()

		defs = append(defs, d)
	}

	if !p.atEnd() {
		return nil, p.errorFrom(p.pos)
	}

	return defs, nil
}

// parser is a backtracking recursive-descent reader over src. Statement
// readers either consume a full statement and return true, or return false
// and leave pos wherever they stopped; callers rewind.
type parser struct {
	src    string
	source Source
	pos    int

	// failPos and expected record the deepest failed token match.
	failPos  int
	expected string
}

func newParser(src string, source Source) *parser {
	return &parser{src: src, source: source, failPos: -1}
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.src)
}

// fail records an expectation at the current position. Later expectations at
// the same offset replace earlier ones.
func (p *parser) fail(expected string) bool {
	if p.pos >= p.failPos {
		p.failPos = p.pos
		p.expected = expected
	}

	return false
}

// errorFrom builds a ParseError whose remainder starts at offset.
func (p *parser) errorFrom(offset int) *ParseError {
	failPos, expected := p.failPos, p.expected
	if failPos < offset {
		failPos = offset
		expected = "end of input"
	}

	return &ParseError{
		Source:    p.source,
		Remainder: p.src[offset:],
		Offset:    offset,
		Pos:       positionOf(p.src, failPos),
		Expected:  expected,
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

func isIntChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '-'
}

// takeWhile advances past the longest run of bytes matching pred and returns it.
func (p *parser) takeWhile(pred func(byte) bool) string {
	start := p.pos
	for p.pos < len(p.src) && pred(p.src[p.pos]) {
		p.pos++
	}

	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	p.takeWhile(isSpace)
}

// space consumes at least one whitespace byte.
func (p *parser) space() bool {
	if p.takeWhile(isSpace) == "" {
		return p.fail(expectSpace)
	}

	return true
}

func (p *parser) keyword(kw, expected string) bool {
	if !strings.HasPrefix(p.src[p.pos:], kw) {
		return p.fail(expected)
	}

	p.pos += len(kw)

	return true
}

func (p *parser) identifier() (string, bool) {
	id := p.takeWhile(isIdentChar)
	if id == "" {
		return "", p.fail(expectIdentifier)
	}

	return id, true
}

// signedInt reads a run of digits and '-' and converts it to an int32.
// Out-of-range or malformed runs fail at the start of the run.
func (p *parser) signedInt() (int32, bool) {
	start := p.pos

	lit := p.takeWhile(isIntChar)
	if lit == "" {
		return 0, p.fail(expectInt32)
	}

	v, err := strconv.ParseInt(lit, 10, 32)
	if err != nil {
		p.pos = start
		return 0, p.fail(expectInt32)
	}

	return int32(v), true
}

// terminator reads optional whitespace followed by ".".
func (p *parser) terminator() bool {
	p.skipSpace()
	return p.keyword(".", expectDot)
}

// classStatement reads `"@CLASS" WS identifier WS? "."`.
func (p *parser) classStatement() (string, bool) {
	if !p.keyword("@CLASS", expectClass) || !p.space() {
		return "", false
	}

	name, ok := p.identifier()
	if !ok || !p.terminator() {
		return "", false
	}

	return name, true
}

// mapStatement reads `"MAP" WS identifier WS identifier (WS "OPT")? WS? "."`.
func (p *parser) mapStatement() (MapStatement, bool) {
	var m MapStatement

	if !p.keyword("MAP", expectMap) || !p.space() {
		return m, false
	}

	var ok bool
	if m.DriverDataName, ok = p.identifier(); !ok || !p.space() {
		return m, false
	}

	if m.ConstName, ok = p.identifier(); !ok {
		return m, false
	}

	mark := p.pos
	if p.space() && p.keyword("OPT", expectOpt) {
		m.Optional = true
	} else {
		p.pos = mark
	}

	if !p.terminator() {
		return m, false
	}

	return m, true
}

// defineStatement reads `"DEF" WS identifier WS signed_int WS? "."`.
func (p *parser) defineStatement() (DefineStatement, bool) {
	var d DefineStatement

	if !p.keyword("DEF", expectDef) || !p.space() {
		return d, false
	}

	var ok bool
	if d.Name, ok = p.identifier(); !ok || !p.space() {
		return d, false
	}

	if d.Value, ok = p.signedInt(); !ok {
		return d, false
	}

	if !p.terminator() {
		return d, false
	}

	return d, true
}
