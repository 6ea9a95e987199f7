// Package report renders human-readable parse diagnostics: a
// location-prefixed message, the offending source line, and a caret
// underline beneath the flagged span.
//
// The reporter is a pure side effect over its writer and never touches the
// tree being built. It degrades gracefully: if the source file cannot be
// reopened, only the message line is printed. Output is colorized when the
// destination is a terminal; caret alignment accounts for tabs and for
// East Asian wide runes.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/width"
)

// Span is a 1-based, inclusive source range. A span whose LastLine lies
// beyond FirstLine underlines from FirstColumn to the end of the first
// line.
type Span struct {
	FirstLine   int
	FirstColumn int
	LastLine    int
	LastColumn  int
}

// Reporter writes diagnostics to a fixed destination.
type Reporter struct {
	w          io.Writer
	msgColor   *color.Color
	caretColor *color.Color
}

// New returns a reporter writing to w. Color is enabled when w is a
// terminal and disabled otherwise; SetColor overrides the detection.
func New(w io.Writer) *Reporter {
	r := &Reporter{
		w:          w,
		msgColor:   color.New(color.FgRed, color.Bold),
		caretColor: color.New(color.FgGreen, color.Bold),
	}
	on := false
	if f, ok := w.(*os.File); ok {
		on = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	r.SetColor(on)
	return r
}

// SetColor forces colored or plain output.
func (r *Reporter) SetColor(on bool) {
	if on {
		r.msgColor.EnableColor()
		r.caretColor.EnableColor()
	} else {
		r.msgColor.DisableColor()
		r.caretColor.DisableColor()
	}
}

// Error reports msg at span. With an empty path only a placeholder
// location line is written. Otherwise the file is reopened to echo the
// offending line with a caret underline; if it cannot be read the report
// stops after the message line.
func (r *Reporter) Error(msg, path string, span Span) {
	if path == "" {
		fmt.Fprintf(r.w, "<file>:%d: %s\n", span.FirstLine, r.msgColor.Sprint(msg))
		return
	}
	fmt.Fprintf(r.w, "%s:%d: %s\n", path, span.FirstLine, r.msgColor.Sprint(msg))

	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	line, ok := readLine(f, span.FirstLine)
	if !ok {
		return
	}
	fmt.Fprintln(r.w, line)
	fmt.Fprintln(r.w, r.caretColor.Sprint(underline(line, span)))
}

// Errorf formats and reports like Error.
func (r *Reporter) Errorf(path string, span Span, format string, args ...any) {
	r.Error(fmt.Sprintf(format, args...), path, span)
}

// std reports to standard error with terminal detection.
var std = New(os.Stderr)

// Error reports to standard error.
func Error(msg, path string, span Span) {
	std.Error(msg, path, span)
}

// underline builds the caret line for span over the given source line.
// Tabs are reproduced as tabs so the underline tracks the source's own
// tab expansion; other runes pad by their display width.
func underline(line string, span Span) string {
	runes := []rune(line)

	last := span.LastColumn
	if span.LastLine > span.FirstLine {
		last = len(runes)
	}
	if last < span.FirstColumn {
		last = span.FirstColumn
	}

	var sb strings.Builder
	for col := 1; col <= last; col++ {
		rn := rune(' ')
		if col-1 < len(runes) {
			rn = runes[col-1]
		}
		switch {
		case rn == '\t':
			sb.WriteByte('\t')
		case col < span.FirstColumn:
			sb.WriteString(strings.Repeat(" ", runeWidth(rn)))
		default:
			sb.WriteString(strings.Repeat("^", runeWidth(rn)))
		}
	}
	return sb.String()
}

// readLine returns the n-th (1-based) line of rd.
func readLine(rd io.Reader, n int) (string, bool) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 1; sc.Scan(); i++ {
		if i == n {
			return sc.Text(), true
		}
	}
	return "", false
}

// runeWidth returns the terminal display width of r.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
