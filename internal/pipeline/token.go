package pipeline

import (
	"github.com/wrenfield/rp/internal/lexer"
	"github.com/wrenfield/rp/internal/rperr"
)

// ExpandToken finds the first -t/--token occurrence in args and splices
// its tokenized argument in place. Only the first occurrence is expanded;
// any -t/--token encountered later — whether already present in args or
// produced by the expansion itself — is left as a literal token, per the
// documented shadowing rule: the outer -t consumes only its immediate
// argument.
func ExpandToken(args []string) ([]string, error) {
	for i, a := range args {
		if a != "-t" && a != "--token" {
			continue
		}
		if i+1 >= len(args) {
			return nil, rperr.New(rperr.CodeMissingArgument, "%s requires an argument", a)
		}
		toks, err := lexer.Tokenize(args[i+1])
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(args)-2+len(toks))
		out = append(out, args[:i]...)
		out = append(out, toks...)
		out = append(out, args[i+2:]...)
		return out, nil
	}
	return args, nil
}
