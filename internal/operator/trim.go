package operator

import (
	"strings"

	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
)

const asciiWhitespace = " \t\r\n\v\f"

func wrapTrim(op pipeline.Operator, upstream pipeline.Stream) pipeline.Stream {
	return pipeline.Func(func() (record.Record, error) {
		rec, err := upstream.Next()
		if err != nil {
			return "", err
		}
		s := string(rec)
		if !op.HasPattern {
			s = trimCutset(s, asciiWhitespace, op.TrimSide)
		} else {
			s = trimPattern(s, op.TrimPattern, op.TrimSide, op.Nocase)
		}
		return record.Record(s), nil
	})
}

func wrapTrimC(op pipeline.Operator, upstream pipeline.Stream) pipeline.Stream {
	return pipeline.Func(func() (record.Record, error) {
		rec, err := upstream.Next()
		if err != nil {
			return "", err
		}
		set := asciiWhitespace
		if op.HasPattern {
			set = op.TrimPattern
			if op.Nocase {
				set = withBothCases(set)
			}
		}
		return record.Record(trimCutset(string(rec), set, op.TrimSide)), nil
	})
}

func trimCutset(s, cutset string, side pipeline.TrimSide) string {
	switch side {
	case pipeline.TrimLeft:
		return strings.TrimLeft(s, cutset)
	case pipeline.TrimRight:
		return strings.TrimRight(s, cutset)
	default:
		return strings.Trim(s, cutset)
	}
}

// trimPattern repeatedly strips the exact substring pattern from the
// designated end(s) until it no longer matches.
func trimPattern(s, pattern string, side pipeline.TrimSide, nocase bool) string {
	if pattern == "" {
		return s
	}
	if side == pipeline.TrimBoth || side == pipeline.TrimLeft {
		s = stripPrefixLoop(s, pattern, nocase)
	}
	if side == pipeline.TrimBoth || side == pipeline.TrimRight {
		s = stripSuffixLoop(s, pattern, nocase)
	}
	return s
}

func stripPrefixLoop(s, pattern string, nocase bool) string {
	for len(s) >= len(pattern) && equalFold(s[:len(pattern)], pattern, nocase) {
		s = s[len(pattern):]
	}
	return s
}

func stripSuffixLoop(s, pattern string, nocase bool) string {
	for len(s) >= len(pattern) && equalFold(s[len(s)-len(pattern):], pattern, nocase) {
		s = s[:len(s)-len(pattern)]
	}
	return s
}

func equalFold(a, b string, nocase bool) bool {
	if !nocase {
		return a == b
	}
	return asciiLower(a) == asciiLower(b)
}

func withBothCases(set string) string {
	var b strings.Builder
	b.WriteString(set)
	for i := 0; i < len(set); i++ {
		c := set[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - ('a' - 'A'))
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}
