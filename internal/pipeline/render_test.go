package pipeline

import (
	"strings"
	"testing"
)

func TestRenderRoundTripsReadably(t *testing.T) {
	desc := &Description{
		Source: Source{Kind: SourceLiteral, Values: []string{"a", "b", "c"}},
		Operators: []Operator{
			{Kind: OpCase, CaseMode: CaseUpper},
		},
		Sink: Sink{Kind: SinkStdout},
	}
	got := Render(desc)
	if !strings.Contains(got, ":of a b c") {
		t.Errorf("render missing source: %q", got)
	}
	if !strings.Contains(got, ":upper") {
		t.Errorf("render missing operator: %q", got)
	}
	if !strings.Contains(got, ":to out") {
		t.Errorf("render missing sink: %q", got)
	}
}

func TestRenderGenWithStep(t *testing.T) {
	desc := &Description{
		Source: Source{Kind: SourceGen, GenStart: 0, HasEnd: true, GenEnd: 10, GenStep: 2},
		Sink:   Sink{Kind: SinkStdout},
	}
	got := Render(desc)
	if !strings.Contains(got, ":gen 0,10,2") {
		t.Errorf("render missing gen spec: %q", got)
	}
}
