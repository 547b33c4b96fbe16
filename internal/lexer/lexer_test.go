package lexer

import (
	"reflect"
	"testing"

	"github.com/wrenfield/rp/internal/rperr"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`:of 1 2 3 :drop "num =2" :to out`, []string{":of", "1", "2", "3", ":drop", "num =2", ":to", "out"}},
		{`:of a b c`, []string{":of", "a", "b", "c"}},
		{`'single quoted'`, []string{"single quoted"}},
		{`a\:b`, []string{"a:b"}},
		{``, nil},
		{`   `, nil},
	}
	for _, c := range cases {
		got, err := Tokenize(c.in)
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", c.in, err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []string{
		`'unterminated`,
		`"unterminated`,
		`trailing\`,
	}
	for _, in := range cases {
		_, err := Tokenize(in)
		if err == nil {
			t.Fatalf("Tokenize(%q): expected error", in)
		}
		if rperr.CodeOf(err) != rperr.CodeInvalidEscape {
			t.Errorf("Tokenize(%q): code = %d, want %d", in, rperr.CodeOf(err), rperr.CodeInvalidEscape)
		}
	}
}
