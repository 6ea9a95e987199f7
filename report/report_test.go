package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.zb")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func plainReporter(buf *bytes.Buffer) *Reporter {
	r := New(buf)
	r.SetColor(false)
	return r
}

// TestReporter_NoPath tests the placeholder location form.
func TestReporter_NoPath(t *testing.T) {
	var buf bytes.Buffer
	plainReporter(&buf).Error("unexpected token", "", Span{FirstLine: 3, FirstColumn: 1})

	assert.Equal(t, "<file>:3: unexpected token\n", buf.String())
}

// TestReporter_Excerpt tests the full three-line report.
func TestReporter_Excerpt(t *testing.T) {
	path := writeSource(t, "first line\nsecond bad line\nthird line\n")

	var buf bytes.Buffer
	plainReporter(&buf).Error("bad token", path,
		Span{FirstLine: 2, FirstColumn: 8, LastLine: 2, LastColumn: 10})

	want := path + ":2: bad token\n" +
		"second bad line\n" +
		"       ^^^\n"
	assert.Equal(t, want, buf.String())
}

// TestReporter_MissingFile tests graceful degradation: the message line
// alone, no excerpt, no failure.
func TestReporter_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	plainReporter(&buf).Error("bad token", "/nonexistent/input.zb",
		Span{FirstLine: 1, FirstColumn: 1, LastLine: 1, LastColumn: 1})

	assert.Equal(t, "/nonexistent/input.zb:1: bad token\n", buf.String())
}

// TestReporter_LineOutOfRange degrades the same way when the span points
// past the end of the file.
func TestReporter_LineOutOfRange(t *testing.T) {
	path := writeSource(t, "only line\n")

	var buf bytes.Buffer
	plainReporter(&buf).Error("bad token", path,
		Span{FirstLine: 9, FirstColumn: 1, LastLine: 9, LastColumn: 1})

	assert.Equal(t, path+":9: bad token\n", buf.String())
}

// TestReporter_Tabs verifies tabs are reproduced in the underline so the
// carets line up under any tab width.
func TestReporter_Tabs(t *testing.T) {
	path := writeSource(t, "\tif x\n")

	var buf bytes.Buffer
	plainReporter(&buf).Error("unknown name", path,
		Span{FirstLine: 1, FirstColumn: 5, LastLine: 1, LastColumn: 5})

	want := path + ":1: unknown name\n" +
		"\tif x\n" +
		"\t   ^\n"
	assert.Equal(t, want, buf.String())
}

// TestReporter_MultiLineSpan verifies a span crossing lines underlines to
// the end of the first line.
func TestReporter_MultiLineSpan(t *testing.T) {
	path := writeSource(t, "abcdef\nghij\n")

	var buf bytes.Buffer
	plainReporter(&buf).Error("unterminated block", path,
		Span{FirstLine: 1, FirstColumn: 3, LastLine: 2, LastColumn: 2})

	want := path + ":1: unterminated block\n" +
		"abcdef\n" +
		"  ^^^^\n"
	assert.Equal(t, want, buf.String())
}

// TestReporter_WideRunes verifies caret alignment under East Asian wide
// characters, which occupy two terminal cells each.
func TestReporter_WideRunes(t *testing.T) {
	path := writeSource(t, "日本x\n")

	var buf bytes.Buffer
	plainReporter(&buf).Error("bad ident", path,
		Span{FirstLine: 1, FirstColumn: 3, LastLine: 1, LastColumn: 3})

	want := path + ":1: bad ident\n" +
		"日本x\n" +
		"    ^\n"
	assert.Equal(t, want, buf.String())
}

// TestReporter_Errorf tests the formatting wrapper.
func TestReporter_Errorf(t *testing.T) {
	var buf bytes.Buffer
	plainReporter(&buf).Errorf("", Span{FirstLine: 1}, "unexpected %q", "]")

	assert.Equal(t, "<file>:1: unexpected \"]\"\n", buf.String())
}
