// Package lexer tokenizes RCS history archive text.
//
// The scanner is a forward-only byte cursor over an in-memory string. Token
// fetchers skip leading whitespace, attempt their pattern at the cursor, and
// advance past the token only on success. Fetchers come in explicit pairs:
// Expect* methods are mandatory and fail with a syntax error carrying the
// byte offset, Accept* methods are optional and report a miss without
// consuming input or raising an error.
//
// Character classes follow rcsfile(5) and are defined over bytes, not runes:
//
//   - whitespace: space and the control range 0x08-0x0D (backspace, tab,
//     newline, vertical tab, form feed, carriage return)
//   - special: $ , . : ; @
//   - idchar: any visible byte (0x21-0x7E, 0xA0-0xFF) that is not special
//
// Token kinds:
//
//   - num: digits and periods, e.g. "1.2.1.3"
//   - sym: one or more idchars, e.g. "release-1_0"
//   - id: idchars and periods; a superset of both num and sym
//   - keyword: an exact literal followed by whitespace, a special byte, or
//     end of input
//   - string: an at-quoted region @...@ where a literal @ in the body is
//     doubled; the token keeps its delimiters and internal doubling
package lexer

import (
	"fmt"

	"github.com/arloliu/rcsv/errs"
)

// Lexer scans archive text from left to right.
type Lexer struct {
	src string
	off int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Offset returns the current cursor position in bytes.
func (l *Lexer) Offset() int {
	return l.off
}

func isWhitespace(b byte) bool {
	return b == ' ' || (b >= 0x08 && b <= 0x0D)
}

func isSpecial(b byte) bool {
	switch b {
	case '$', ',', '.', ':', ';', '@':
		return true
	}

	return false
}

func isIDChar(b byte) bool {
	if b >= 0x21 && b <= 0x7E {
		return !isSpecial(b)
	}

	return b >= 0xA0
}

func isNumChar(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}

// skip returns the position of the first non-whitespace byte at or after the
// cursor without moving it.
func (l *Lexer) skip() int {
	p := l.off
	for p < len(l.src) && isWhitespace(l.src[p]) {
		p++
	}

	return p
}

func (l *Lexer) syntaxError(want string) error {
	return fmt.Errorf("%w: expected %s at offset %d", errs.ErrSyntax, want, l.off)
}

// AcceptNum scans a num token: one or more digits or periods.
func (l *Lexer) AcceptNum() (string, bool) {
	p := l.skip()
	q := p
	for q < len(l.src) && isNumChar(l.src[q]) {
		q++
	}
	if q == p {
		return "", false
	}
	l.off = q

	return l.src[p:q], true
}

// ExpectNum scans a mandatory num token.
func (l *Lexer) ExpectNum() (string, error) {
	if tok, ok := l.AcceptNum(); ok {
		return tok, nil
	}

	return "", l.syntaxError("number")
}

// AcceptSym scans a sym token: one or more idchars.
func (l *Lexer) AcceptSym() (string, bool) {
	p := l.skip()
	q := p
	for q < len(l.src) && isIDChar(l.src[q]) {
		q++
	}
	if q == p {
		return "", false
	}
	l.off = q

	return l.src[p:q], true
}

// ExpectSym scans a mandatory sym token.
func (l *Lexer) ExpectSym() (string, error) {
	if tok, ok := l.AcceptSym(); ok {
		return tok, nil
	}

	return "", l.syntaxError("symbol")
}

// AcceptID scans an id token: one or more idchars or periods. Every num and
// every sym is also an id.
func (l *Lexer) AcceptID() (string, bool) {
	p := l.skip()
	q := p
	for q < len(l.src) && (isIDChar(l.src[q]) || l.src[q] == '.') {
		q++
	}
	if q == p {
		return "", false
	}
	l.off = q

	return l.src[p:q], true
}

// ExpectID scans a mandatory id token.
func (l *Lexer) ExpectID() (string, error) {
	if tok, ok := l.AcceptID(); ok {
		return tok, nil
	}

	return "", l.syntaxError("identifier")
}

// AcceptKeyword scans the exact literal kw. The byte after the literal must
// be whitespace, a special, or end of input; the boundary byte is not
// consumed. This keeps "head" from matching a leading slice of "heads".
func (l *Lexer) AcceptKeyword(kw string) bool {
	p := l.skip()
	end := p + len(kw)
	if end > len(l.src) || l.src[p:end] != kw {
		return false
	}
	if end < len(l.src) {
		b := l.src[end]
		if !isWhitespace(b) && !isSpecial(b) {
			return false
		}
	}
	l.off = end

	return true
}

// ExpectKeyword scans a mandatory keyword literal.
func (l *Lexer) ExpectKeyword(kw string) error {
	if l.AcceptKeyword(kw) {
		return nil
	}

	return l.syntaxError(fmt.Sprintf("keyword %q", kw))
}

// AcceptString scans an at-quoted string. The returned token includes both
// delimiters and keeps any doubled @ bytes in the body; an unterminated
// region is a miss, not a partial token.
func (l *Lexer) AcceptString() (string, bool) {
	p := l.skip()
	if p >= len(l.src) || l.src[p] != '@' {
		return "", false
	}
	q := p + 1
	for q < len(l.src) {
		if l.src[q] != '@' {
			q++
			continue
		}
		if q+1 < len(l.src) && l.src[q+1] == '@' {
			// Doubled @ is a literal body byte.
			q += 2
			continue
		}
		l.off = q + 1

		return l.src[p : q+1], true
	}

	return "", false
}

// ExpectString scans a mandatory at-quoted string.
func (l *Lexer) ExpectString() (string, error) {
	if tok, ok := l.AcceptString(); ok {
		return tok, nil
	}

	return "", l.syntaxError("string")
}

// AcceptColon scans a single ':'.
func (l *Lexer) AcceptColon() bool {
	return l.acceptByte(':')
}

// ExpectColon scans a mandatory ':'.
func (l *Lexer) ExpectColon() error {
	if l.acceptByte(':') {
		return nil
	}

	return l.syntaxError("':'")
}

// AcceptSemicolon scans a single ';'.
func (l *Lexer) AcceptSemicolon() bool {
	return l.acceptByte(';')
}

// ExpectSemicolon scans a mandatory ';'.
func (l *Lexer) ExpectSemicolon() error {
	if l.acceptByte(';') {
		return nil
	}

	return l.syntaxError("';'")
}

func (l *Lexer) acceptByte(c byte) bool {
	p := l.skip()
	if p < len(l.src) && l.src[p] == c {
		l.off = p + 1
		return true
	}

	return false
}

// AtEnd reports whether only whitespace remains before end of input. It
// never moves the cursor.
func (l *Lexer) AtEnd() bool {
	return l.skip() == len(l.src)
}

// ExpectEnd verifies the unconsumed remainder is a whitespace run whose last
// byte is a newline, i.e. the archive text ends with a newline and carries
// nothing after its final token. On success the cursor moves to end of input.
func (l *Lexer) ExpectEnd() error {
	rest := l.src[l.off:]
	if len(rest) == 0 || rest[len(rest)-1] != '\n' {
		return l.syntaxError("trailing newline")
	}
	for i := 0; i < len(rest); i++ {
		if !isWhitespace(rest[i]) {
			return l.syntaxError("trailing newline")
		}
	}
	l.off = len(l.src)

	return nil
}
