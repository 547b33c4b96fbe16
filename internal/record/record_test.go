package record

import "testing"

func TestParseNum(t *testing.T) {
	cases := []struct {
		in       string
		wantKind Kind
	}{
		{"42", KindInt},
		{"-7", KindInt},
		{"3.14", KindFloat},
		{"-0.5", KindFloat},
		{"inf", KindNone},
		{"nan", KindNone},
		{"not a number", KindNone},
		{"", KindNone},
	}
	for _, c := range cases {
		got := ParseNum(c.in)
		if got.Kind != c.wantKind {
			t.Errorf("ParseNum(%q).Kind = %v, want %v", c.in, got.Kind, c.wantKind)
		}
	}
}

func TestNumAsFloat(t *testing.T) {
	n := ParseNum("10")
	if n.AsFloat() != 10 {
		t.Errorf("AsFloat() = %v, want 10", n.AsFloat())
	}
}
