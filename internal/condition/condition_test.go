package condition

import "testing"

func TestParseAndTest(t *testing.T) {
	cases := []struct {
		expr string
		in   string
		want bool
	}{
		{"len 3,5", "abcd", true},
		{"len 3,5", "ab", false},
		{"len =3", "abc", true},
		{"!len =3", "abc", false},
		{"num =2", "2", true},
		{"num =2", "nope", false},
		{"num 0,10", "5", true},
		{"num integer", "5", true},
		{"num integer", "5.5", false},
		{"num float", "5.5", true},
		{"!num integer", "5.5", true},
		{"upper", "ABC", true},
		{"upper", "ABc", false},
		{"upper", "123", true},
		{"lower", "abc", true},
		{"empty", "", true},
		{"empty", "x", false},
		{"blank", "  \t", true},
		{"blank", " x ", false},
		{"reg ^ap", "apple", true},
		{"reg ^ap", "banana", false},
	}
	for _, c := range cases {
		cond, err := Parse(c.expr)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.expr, err)
		}
		got := cond.Test(c.in)
		if got != c.want {
			t.Errorf("Parse(%q).Test(%q) = %v, want %v", c.expr, c.in, got, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{"", "bogus", "len", "len abc,5", "reg ("}
	for _, expr := range cases {
		if _, err := Parse(expr); err == nil {
			t.Errorf("Parse(%q): expected error", expr)
		}
	}
}
