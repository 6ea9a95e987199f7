// Package parse reads the bracketed dump format produced by ast.Fprint
// back into a tree:
//
//	[block [n 1] [lit 3.500000] [id "x"]]
//
// Each node is a bracketed token label followed by an optional scalar
// payload and any number of child nodes. Numbers containing a decimal
// point or exponent become Double nodes; plain integers become Int when
// they fit in 32 bits signed and Uint otherwise. Quoted strings intern
// through the destination tree's dictionary. Pointer payloads have no
// textual form.
//
// Syntax errors carry a report.Span so callers can render a caret excerpt
// with the report package.
package parse

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/zebu/ast"
	"github.com/joshuapare/zebu/report"
)

// Error is a syntax error with its source location.
type Error struct {
	Msg  string
	Path string // empty when the input did not come from a file
	Span report.Span
}

func (e *Error) Error() string {
	path := e.Path
	if path == "" {
		path = "<file>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", path, e.Span.FirstLine, e.Span.FirstColumn, e.Msg)
}

// File parses the dump file at path into tree and returns the root node.
func File(tree *ast.Tree, path string) (*ast.Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return run(tree, string(src), path)
}

// Reader parses a dump from r into tree. The path is used only for error
// locations and may be empty.
func Reader(tree *ast.Tree, r io.Reader, path string) (*ast.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return run(tree, string(src), path)
}

// Text parses a dump held in memory into tree.
func Text(tree *ast.Tree, src string) (*ast.Node, error) {
	return run(tree, src, "")
}

func run(tree *ast.Tree, src, path string) (*ast.Node, error) {
	p := &parser{lex: newLexer(src, path), tree: tree}
	if err := p.next(); err != nil {
		return nil, err
	}
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errf(p.tok.span, "trailing input after root node")
	}
	return root, nil
}

type parser struct {
	lex  *lexer
	tree *ast.Tree
	tok  token
}

func (p *parser) next() error {
	tok, err := p.lex.scan()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errf(span report.Span, format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...), Path: p.lex.path, Span: span}
}

// node parses one bracketed node with its payload and children.
func (p *parser) node() (*ast.Node, error) {
	if p.tok.kind != tokLBrack {
		return nil, p.errf(p.tok.span, "expected '[', found %s", p.tok.describe())
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	if p.tok.kind != tokAtom {
		return nil, p.errf(p.tok.span, "expected node token, found %s", p.tok.describe())
	}
	// Labels live as long as the tree; intern them so the parsed tree
	// does not pin the whole source text.
	label := p.tree.Intern(p.tok.text)
	if err := p.next(); err != nil {
		return nil, err
	}

	n, err := p.payload(label)
	if err != nil {
		return nil, err
	}

	for p.tok.kind == tokLBrack {
		child, err := p.node()
		if err != nil {
			return nil, err
		}
		n.AppendChild(child)
	}

	if p.tok.kind != tokRBrack {
		return nil, p.errf(p.tok.span, "expected ']', found %s", p.tok.describe())
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return n, nil
}

// payload consumes the optional scalar after a node label and constructs
// the node with the matching kind.
func (p *parser) payload(label string) (*ast.Node, error) {
	switch p.tok.kind {
	case tokString:
		text, err := strconv.Unquote(p.tok.text)
		if err != nil {
			return nil, p.errf(p.tok.span, "malformed string %s", p.tok.text)
		}
		n := p.tree.Str(label, text)
		return n, p.next()

	case tokAtom:
		n, err := p.number(label, p.tok)
		if err != nil {
			return nil, err
		}
		return n, p.next()

	default:
		return p.tree.Null(label), nil
	}
}

// number classifies a bare scalar: doubles carry a decimal point or
// exponent, the rest are integers split by signed 32-bit range.
func (p *parser) number(label string, tok token) (*ast.Node, error) {
	text := tok.text
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.errf(tok.span, "malformed number %q", text)
		}
		return p.tree.Double(label, f), nil
	}
	if i, err := strconv.ParseInt(text, 10, 32); err == nil {
		return p.tree.Int(label, int32(i)), nil
	}
	if u, err := strconv.ParseUint(text, 10, 32); err == nil {
		return p.tree.Uint(label, uint32(u)), nil
	}
	return nil, p.errf(tok.span, "malformed number %q", text)
}
