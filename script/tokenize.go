package script

import (
	"fmt"

	"github.com/google/shlex"
)

// Tokenize splits one line into tokens using shell lexing: tokens are
// separated by whitespace and single and double quoted spans form part of
// one token with the quote characters removed. A '#' outside quotes, also in
// the middle of a word, comments out the rest of the line.
//
// A blank or fully commented line yields no tokens and no error.
func Tokenize(line string) ([]string, error) {
	tokens, err := shlex.Split(stripComment(line))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnterminatedQuote, err)
	}
	return tokens, nil
}

// stripComment cuts line at the first '#' that is neither quoted nor
// escaped with a backslash.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote == '\'':
			if c == '\'' {
				quote = 0
			}
		case c == '\\':
			i++
		case quote == '"':
			if c == '"' {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}
