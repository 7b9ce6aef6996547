package lsp

import (
	"errors"
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/iscript/script"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type document struct {
	lines      []string
	interfaces []script.Interface
	err        *script.Error
}

// analyze parses text to the end, or to its first error.
func analyze(source, text string) *document {
	doc := &document{lines: strings.Split(text, "\n")}

	p := script.New(nil, script.WithSource(source))
	err := p.Parse(text)
	if err == nil {
		err = p.Finish()
	}
	doc.interfaces = p.Registry().Interfaces()

	var perr *script.Error
	if errors.As(err, &perr) {
		doc.err = perr
	}
	return doc
}

func (d *document) diagnostics() []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if d.err == nil {
		return diagnostics
	}

	line := d.err.Line - 1
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line), Character: 0},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(utf16Len(d.line(line)))},
		},
		Severity: &severity,
		Source:   &source,
		Message:  d.err.Err.Error(),
	})
	return diagnostics
}

func (d *document) line(n int) string {
	if n < 0 || n >= len(d.lines) {
		return ""
	}
	return strings.TrimSuffix(d.lines[n], "\r")
}

// atLineStart reports whether only blanks or the signal marker precede the
// UTF-16 column col.
func (d *document) atLineStart(line, col int) bool {
	prefix := []rune(d.line(line))
	if i := runeIndex(prefix, col); i < len(prefix) {
		prefix = prefix[:i]
	}
	s := strings.TrimSpace(string(prefix))
	return s == "" || s == "."
}

// wordAt returns the whitespace delimited word containing the UTF-16 column
// col.
func (d *document) wordAt(line, col int) string {
	runes := []rune(d.line(line))
	col = runeIndex(runes, col)
	if col < 0 || col >= len(runes) || isBlank(runes[col]) {
		return ""
	}
	start, end := col, col
	for start > 0 && !isBlank(runes[start-1]) {
		start--
	}
	for end < len(runes) && !isBlank(runes[end]) {
		end++
	}
	return string(runes[start:end])
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// Positions count UTF-16 code units.

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// runeIndex returns the index of the rune covering the UTF-16 column col, or
// len(runes) when col is past the end.
func runeIndex(runes []rune, col int) int {
	units := 0
	for i, r := range runes {
		units += utf16.RuneLen(r)
		if units > col {
			return i
		}
	}
	return len(runes)
}
