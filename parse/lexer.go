package parse

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/zebu/report"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokLBrack
	tokRBrack
	tokAtom
	tokString
)

type token struct {
	kind tokenKind
	text string
	span report.Span
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokLBrack:
		return "'['"
	case tokRBrack:
		return "']'"
	case tokString:
		return t.text
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

// lexer walks the source tracking 1-based line and rune-based column
// positions for error spans.
type lexer struct {
	src  string
	path string
	pos  int
	line int
	col  int
}

func newLexer(src, path string) *lexer {
	return &lexer{src: src, path: path, line: 1, col: 1}
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) peek() rune {
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

func (l *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// here returns a single-position span at the cursor.
func (l *lexer) here() report.Span {
	return report.Span{FirstLine: l.line, FirstColumn: l.col, LastLine: l.line, LastColumn: l.col}
}

func (l *lexer) scan() (token, error) {
	for !l.eof() && isSpace(l.peek()) {
		l.advance()
	}
	if l.eof() {
		return token{kind: tokEOF, span: l.here()}, nil
	}

	start := l.here()
	startPos := l.pos

	switch l.peek() {
	case '[':
		l.advance()
		return token{kind: tokLBrack, text: "[", span: start}, nil
	case ']':
		l.advance()
		return token{kind: tokRBrack, text: "]", span: start}, nil
	case '"':
		return l.scanString(start, startPos)
	default:
		for !l.eof() && !isSpace(l.peek()) && !isDelim(l.peek()) {
			l.advance()
		}
		span := start
		span.LastLine, span.LastColumn = l.line, l.col-1
		return token{kind: tokAtom, text: l.src[startPos:l.pos], span: span}, nil
	}
}

// scanString consumes a quoted string in Go syntax, leaving unquoting to
// the parser.
func (l *lexer) scanString(start report.Span, startPos int) (token, error) {
	l.advance() // opening quote
	for {
		if l.eof() || l.peek() == '\n' {
			span := start
			span.LastLine, span.LastColumn = l.line, l.col-1
			return token{}, &Error{Msg: "unterminated string", Path: l.path, Span: span}
		}
		switch l.advance() {
		case '\\':
			if !l.eof() {
				l.advance() // escaped rune, cannot close the string
			}
		case '"':
			span := start
			span.LastLine, span.LastColumn = l.line, l.col-1
			return token{kind: tokString, text: l.src[startPos:l.pos], span: span}, nil
		}
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDelim(r rune) bool {
	return r == '[' || r == ']' || r == '"'
}
