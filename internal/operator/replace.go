package operator

import (
	"strings"

	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
)

func wrapReplace(op pipeline.Operator, upstream pipeline.Stream) pipeline.Stream {
	return pipeline.Func(func() (record.Record, error) {
		rec, err := upstream.Next()
		if err != nil {
			return "", err
		}
		return record.Record(doReplace(string(rec), op.ReplaceFrom, op.ReplaceTo, op.ReplaceCount, op.HasReplaceCnt, op.Nocase)), nil
	})
}

// doReplace performs a leftmost, non-overlapping substring replacement
// bounded by count (if given). Matching is done on an ASCII-folded copy
// when nocase is set, but the replaced-out text is taken from the
// original, unfolded record and the inserted text is always the literal
// "to" argument.
func doReplace(s, from, to string, count int, hasCount, nocase bool) string {
	limit := -1
	if hasCount {
		limit = count
		if limit == 0 {
			return s
		}
	}

	if from == "" {
		return strings.Replace(s, "", to, limit)
	}

	if !nocase {
		return strings.Replace(s, from, to, limit)
	}

	foldedS := asciiLower(s)
	foldedFrom := asciiLower(from)

	var out strings.Builder
	i, n := 0, 0
	for limit < 0 || n < limit {
		idx := strings.Index(foldedS[i:], foldedFrom)
		if idx < 0 {
			break
		}
		pos := i + idx
		out.WriteString(s[i:pos])
		out.WriteString(to)
		i = pos + len(from)
		n++
	}
	if n == 0 {
		return s
	}
	out.WriteString(s[i:])
	return out.String()
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
