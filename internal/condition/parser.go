package condition

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wrenfield/rp/internal/rperr"
)

// Parse compiles a condition expression, e.g. "len 3,10", "num =2",
// "!upper", "reg ^ap". A leading "!" negates len/num range, equality, and
// kind tests; it has no effect on upper/lower/empty/blank/reg, which have
// no negated form in this language.
func Parse(expr string) (*Cond, error) {
	s := strings.TrimSpace(expr)
	negated := false
	if strings.HasPrefix(s, "!") {
		negated = true
		s = strings.TrimSpace(s[1:])
	}

	keyword, rest := splitFirst(s)
	switch keyword {
	case "len":
		return parseRangeOrEq(rest, negated, OpLenRange, OpLenEq)
	case "num":
		return parseNum(rest, negated)
	case "upper":
		return &Cond{Op: OpUpper}, nil
	case "lower":
		return &Cond{Op: OpLower}, nil
	case "empty":
		return &Cond{Op: OpEmpty}, nil
	case "blank":
		return &Cond{Op: OpBlank}, nil
	case "reg":
		re, err := regexp.Compile(rest)
		if err != nil {
			return nil, rperr.New(rperr.CodeRegexCompile, "invalid pattern %q: %v", rest, err)
		}
		return &Cond{Op: OpRegex, Re: re}, nil
	default:
		return nil, rperr.New(rperr.CodeArgumentParse, "unknown condition %q", expr)
	}
}

func parseNum(rest string, negated bool) (*Cond, error) {
	switch rest {
	case "":
		return &Cond{Op: OpNumKind, Kind: NumKindAny, Negated: negated}, nil
	case "integer":
		return &Cond{Op: OpNumKind, Kind: NumKindInteger, Negated: negated}, nil
	case "float":
		return &Cond{Op: OpNumKind, Kind: NumKindFloat, Negated: negated}, nil
	}
	return parseRangeOrEq(rest, negated, OpNumRange, OpNumEq)
}

func parseRangeOrEq(rest string, negated bool, rangeOp, eqOp Op) (*Cond, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, rperr.New(rperr.CodeArgumentParse, "missing range or value")
	}
	if strings.HasPrefix(rest, "=") {
		v, err := strconv.ParseFloat(strings.TrimSpace(rest[1:]), 64)
		if err != nil {
			return nil, rperr.New(rperr.CodeArgumentParse, "invalid value %q: %v", rest, err)
		}
		return &Cond{Op: eqOp, Eq: v, Negated: negated}, nil
	}

	parts := strings.SplitN(rest, ",", 2)
	if len(parts) != 2 {
		return nil, rperr.New(rperr.CodeArgumentParse, "expected MIN,MAX, got %q", rest)
	}
	c := &Cond{Op: rangeOp, Negated: negated}
	if min := strings.TrimSpace(parts[0]); min != "" {
		v, err := strconv.ParseFloat(min, 64)
		if err != nil {
			return nil, rperr.New(rperr.CodeArgumentParse, "invalid min %q: %v", min, err)
		}
		c.HasMin, c.Min = true, v
	}
	if max := strings.TrimSpace(parts[1]); max != "" {
		v, err := strconv.ParseFloat(max, 64)
		if err != nil {
			return nil, rperr.New(rperr.CodeArgumentParse, "invalid max %q: %v", max, err)
		}
		c.HasMax, c.Max = true, v
	}
	if !c.HasMin && !c.HasMax {
		return nil, rperr.New(rperr.CodeArgumentParse, "at least one of min/max is required")
	}
	return c, nil
}

func splitFirst(s string) (head, rest string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
