package condition

import "github.com/wrenfield/rp/internal/record"

// Test evaluates the condition against a record's text.
func (c *Cond) Test(s string) bool {
	switch c.Op {
	case OpLenRange:
		n := float64(len(s))
		return c.withNot(c.inRange(n))
	case OpLenEq:
		return c.withNot(float64(len(s)) == c.Eq)
	case OpNumRange:
		n := record.ParseNum(s)
		if !n.IsNumber() {
			return false
		}
		return c.withNot(c.inRange(n.AsFloat()))
	case OpNumEq:
		n := record.ParseNum(s)
		if !n.IsNumber() {
			return false
		}
		return c.withNot(n.AsFloat() == c.Eq)
	case OpNumKind:
		n := record.ParseNum(s)
		var member bool
		switch c.Kind {
		case NumKindAny:
			member = n.IsNumber()
		case NumKindInteger:
			member = n.Kind == record.KindInt
		case NumKindFloat:
			member = n.Kind == record.KindFloat
		}
		return c.withNot(member)
	case OpUpper:
		return allCase(s, true)
	case OpLower:
		return allCase(s, false)
	case OpEmpty:
		return len(s) == 0
	case OpBlank:
		return isBlank(s)
	case OpRegex:
		return c.Re.MatchString(s)
	}
	return false
}

// withNot applies the condition's negation, except where the caller has
// already decided the predicate is unconditionally false (a failed numeric
// parse), in which case Negated must not be consulted.
func (c *Cond) withNot(v bool) bool {
	if c.Negated {
		return !v
	}
	return v
}

func (c *Cond) inRange(n float64) bool {
	if c.HasMin && n < c.Min {
		return false
	}
	if c.HasMax && n > c.Max {
		return false
	}
	return true
}

// allCase reports whether every ASCII-cased byte in s matches the requested
// case. A record with no cased bytes is vacuously true.
func allCase(s string, upper bool) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'A' && b <= 'Z':
			if !upper {
				return false
			}
		case b >= 'a' && b <= 'z':
			if upper {
				return false
			}
		}
	}
	return true
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			return false
		}
	}
	return true
}
