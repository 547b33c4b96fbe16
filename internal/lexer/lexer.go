// Package lexer implements the -t/--token meta-tokenizer: it splits a
// single text value into an argument vector the way a shell would,
// honoring single and double quotes and backslash escapes.
package lexer

import (
	"strings"

	"github.com/wrenfield/rp/internal/rperr"
)

// Tokenize splits s into arguments on whitespace, treating a run inside
// matching single or double quotes as one argument regardless of internal
// whitespace, and a backslash as escaping the following byte literally.
// An unmatched quote or a trailing backslash is an invalid escape.
func Tokenize(s string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inArg := false
	i := 0
	n := len(s)

	flush := func() {
		if inArg {
			args = append(args, cur.String())
			cur.Reset()
			inArg = false
		}
	}

	for i < n {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
			i++
		case c == '\'' || c == '"':
			quote := c
			inArg = true
			i++
			closed := false
			for i < n {
				if s[i] == quote {
					closed = true
					i++
					break
				}
				if s[i] == '\\' && i+1 < n {
					cur.WriteByte(s[i+1])
					i += 2
					continue
				}
				cur.WriteByte(s[i])
				i++
			}
			if !closed {
				return nil, rperr.New(rperr.CodeInvalidEscape, "unmatched %c quote", quote)
			}
		case c == '\\':
			if i+1 >= n {
				return nil, rperr.New(rperr.CodeInvalidEscape, "trailing backslash")
			}
			inArg = true
			cur.WriteByte(s[i+1])
			i += 2
		default:
			inArg = true
			cur.WriteByte(c)
			i++
		}
	}
	flush()
	return args, nil
}
