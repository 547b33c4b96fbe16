package fmtstring

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		template string
		v        int64
		want     string
	}{
		{"{v}", 42, "42"},
		{"n={v}", 7, "n=7"},
		{"{v:x}", 255, "ff"},
		{"{v:X}", 255, "FF"},
		{"{v:#x}", 255, "0xff"},
		{"{v:04x}", 5, "0005"},
		{"{v:#04x}", 5, "0x05"},
		{"{v:o}", 8, "10"},
		{"{v:b}", 5, "101"},
		{"{v:d}", -3, "-3"},
		{"{v:#04x}", -5, "-0x05"},
	}
	for _, c := range cases {
		got, err := Format(c.template, c.v)
		if err != nil {
			t.Fatalf("Format(%q, %d) error: %v", c.template, c.v, err)
		}
		if got != c.want {
			t.Errorf("Format(%q, %d) = %q, want %q", c.template, c.v, got, c.want)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	cases := []string{"{v", "{v:q}", "{x}"}
	for _, tmpl := range cases {
		if _, err := Format(tmpl, 1); err == nil {
			t.Errorf("Format(%q): expected error", tmpl)
		}
	}
}
