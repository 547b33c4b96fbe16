package pipeline

import (
	"testing"

	"github.com/wrenfield/rp/internal/rperr"
)

func TestParseScenario1(t *testing.T) {
	desc, err := Parse([]string{":of", "a", "b", "c", ":upper", ":to", "out"})
	if err != nil {
		t.Fatal(err)
	}
	if desc.Source.Kind != SourceLiteral || len(desc.Source.Values) != 3 {
		t.Fatalf("source = %+v", desc.Source)
	}
	if len(desc.Operators) != 1 || desc.Operators[0].Kind != OpCase {
		t.Fatalf("operators = %+v", desc.Operators)
	}
	if desc.Sink.Kind != SinkStdout {
		t.Fatalf("sink = %+v", desc.Sink)
	}
}

func TestParseScenario2Gen(t *testing.T) {
	desc, err := Parse([]string{":gen", "0,10,2", ":join", ","})
	if err != nil {
		t.Fatal(err)
	}
	if desc.Source.Kind != SourceGen || desc.Source.GenStart != 0 || desc.Source.GenEnd != 10 || desc.Source.GenStep != 2 {
		t.Fatalf("source = %+v", desc.Source)
	}
}

func TestParseDefaultsToStdinAndStdout(t *testing.T) {
	desc, err := Parse([]string{":upper"})
	if err != nil {
		t.Fatal(err)
	}
	if desc.Source.Kind != SourceStdin {
		t.Fatalf("source = %+v", desc.Source)
	}
	if desc.Sink.Kind != SinkStdout {
		t.Fatalf("sink = %+v", desc.Sink)
	}
}

func TestParseToFileAppendCrlf(t *testing.T) {
	desc, err := Parse([]string{":to", "file", "out.txt", "append", "crlf"})
	if err != nil {
		t.Fatal(err)
	}
	if desc.Sink.Kind != SinkFile || desc.Sink.Path != "out.txt" || !desc.Sink.Append || desc.Sink.Newline != NewlineCRLF {
		t.Fatalf("sink = %+v", desc.Sink)
	}
}

func TestParseDropWhile(t *testing.T) {
	desc, err := Parse([]string{":drop", "while", "num =2"})
	if err != nil {
		t.Fatal(err)
	}
	if desc.Operators[0].TakeDropMode != TakeDropDropWhile {
		t.Fatalf("operators = %+v", desc.Operators)
	}
}

func TestParseUnknownOperator(t *testing.T) {
	_, err := Parse([]string{":bogus"})
	if err == nil || rperr.CodeOf(err) != rperr.CodeUnknownArgument {
		t.Fatalf("err = %v", err)
	}
}

func TestParseSortRandomExclusive(t *testing.T) {
	_, err := Parse([]string{":sort", "random", "desc"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseGenZeroStep(t *testing.T) {
	_, err := Parse([]string{":gen", "1,10,0"})
	if err == nil || rperr.CodeOf(err) != rperr.CodeArgumentParse {
		t.Fatalf("err = %v", err)
	}
}

func TestExpandTokenScenario6(t *testing.T) {
	args, err := ExpandToken([]string{"-t", `:of 1 2 3 :drop "num =2" :to out`})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{":of", "1", "2", "3", ":drop", "num =2", ":to", "out"}
	if len(args) != len(want) {
		t.Fatalf("got %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("got %v, want %v", args, want)
		}
	}
}
