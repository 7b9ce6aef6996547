// Package grammar carries the EBNF description of the interface script
// language and a small matcher for checking text against it.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Filename is the name used for positions in grammar errors.
const Filename = "interfacescript.ebnf"

// Start is the production a whole script must match.
const Start = "Script"

//go:embed interfacescript.ebnf
var Source []byte

// Load parses and verifies the embedded grammar.
func Load() (ebnf.Grammar, error) {
	return load(Filename, bytes.NewReader(Source), Start)
}

func load(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Productions returns the production names of g, sorted.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// FirstMismatch returns the 1-based number of the first line of text that
// does not match the Line production, or 0 when every line matches. A final
// line without a newline is checked as if it had one.
func FirstMismatch(g ebnf.Grammar, text string) int {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if !Match(g, "Line", line) {
			return i + 1
		}
	}
	return 0
}

type memoKey struct {
	name   string
	offset int
}

// matcher reports the longest prefix of its input matched by a production.
// Repetitions are greedy and sequences do not backtrack, which the grammar
// is written to accommodate.
type matcher struct {
	grammar  ebnf.Grammar
	input    string
	memo     map[memoKey]int // match length, -1 = no match
	visiting map[memoKey]bool
}

// Match reports whether input as a whole is derived from production start.
// Blanks and tabs are skipped before the terminals of non-lexical
// productions.
func Match(g ebnf.Grammar, start, input string) bool {
	m := &matcher{
		grammar:  g,
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
	return m.matchName(start, 0) == len(input)
}

func (m *matcher) skipSpace(offset int) int {
	for offset < len(m.input) {
		switch m.input[offset] {
		case ' ', '\t', '\r':
			offset++
		default:
			return offset
		}
	}
	return offset
}

func (m *matcher) match(expr ebnf.Expression, offset int, lexical bool) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		pos := offset
		if !lexical {
			pos = m.skipSpace(pos)
		}
		if strings.HasPrefix(m.input[pos:], e.String) {
			return pos - offset + len(e.String)
		}
		return -1

	case *ebnf.Range:
		ch, size := utf8.DecodeRuneInString(m.input[offset:])
		if size == 0 {
			return -1
		}
		lo, _ := utf8.DecodeRuneInString(e.Begin.String)
		hi, _ := utf8.DecodeRuneInString(e.End.String)
		if ch >= lo && ch <= hi {
			return size
		}
		return -1

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := m.match(item, offset+total, lexical)
			if n < 0 {
				return -1
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n := m.match(alt, offset, lexical); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := m.match(e.Body, offset+total, lexical)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		if n := m.match(e.Body, offset, lexical); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return m.match(e.Body, offset, lexical)

	case *ebnf.Name:
		pos := offset
		if !lexical && isLexical(e.String) {
			pos = m.skipSpace(pos)
		}
		n := m.matchName(e.String, pos)
		if n < 0 {
			return -1
		}
		return pos - offset + n

	default:
		return -1
	}
}

// matchName matches a named production with memoization. Left recursion
// fails instead of looping.
func (m *matcher) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if n, ok := m.memo[key]; ok {
		return n
	}
	if m.visiting[key] {
		return -1
	}
	prod, ok := m.grammar[name]
	if !ok {
		m.memo[key] = -1
		return -1
	}

	m.visiting[key] = true
	n := m.match(prod.Expr, offset, isLexical(name))
	delete(m.visiting, key)

	m.memo[key] = n
	return n
}
