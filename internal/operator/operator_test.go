package operator

import (
	"bytes"
	"io"
	"testing"

	"github.com/wrenfield/rp/internal/condition"
	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
)

func literalStream(values ...string) pipeline.Stream {
	i := 0
	return pipeline.Func(func() (record.Record, error) {
		if i >= len(values) {
			return "", io.EOF
		}
		v := values[i]
		i++
		return record.Record(v), nil
	})
}

func drainAll(t *testing.T, s pipeline.Stream) []string {
	t.Helper()
	var out []string
	for {
		r, err := s.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, string(r))
	}
}

func mustEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestUpperLower(t *testing.T) {
	s := literalStream("a", "b", "c")
	out, err := Wrap(pipeline.Operator{Kind: pipeline.OpCase, CaseMode: pipeline.CaseUpper}, s, pipeline.Options{}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, drainAll(t, out), []string{"A", "B", "C"})
}

func TestJoin(t *testing.T) {
	s := literalStream("0", "2", "4", "6", "8", "10")
	out, err := Wrap(pipeline.Operator{Kind: pipeline.OpJoin, JoinDelim: ","}, s, pipeline.Options{}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, drainAll(t, out), []string{"0,2,4,6,8,10"})
}

func TestUniqThenTakeRegex(t *testing.T) {
	s := literalStream("apple", "banana", "apricot")
	uniq, _ := Wrap(pipeline.Operator{Kind: pipeline.OpUniq}, s, pipeline.Options{}, nil, nil)
	cond, err := condition.Parse("reg ^ap")
	if err != nil {
		t.Fatal(err)
	}
	taken, _ := Wrap(pipeline.Operator{Kind: pipeline.OpTakeDrop, TakeDropMode: pipeline.TakeDropTake, Cond: cond}, uniq, pipeline.Options{}, nil, nil)
	counted, _ := Wrap(pipeline.Operator{Kind: pipeline.OpCount}, taken, pipeline.Options{}, nil, nil)
	mustEqual(t, drainAll(t, counted), []string{"2"})
}

func TestSortDesc(t *testing.T) {
	s := literalStream("1", "2", "3", "4", "5")
	out, err := Wrap(pipeline.Operator{Kind: pipeline.OpSort, SortKey: pipeline.SortNumeric, SortDesc: true}, s, pipeline.Options{}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, drainAll(t, out), []string{"5", "4", "3", "2", "1"})
}

func TestTrimThenJoin(t *testing.T) {
	s := literalStream(" hi ", "x")
	trimmed, _ := Wrap(pipeline.Operator{Kind: pipeline.OpTrim}, s, pipeline.Options{}, nil, nil)
	joined, _ := Wrap(pipeline.Operator{Kind: pipeline.OpJoin, JoinDelim: "-"}, trimmed, pipeline.Options{}, nil, nil)
	mustEqual(t, drainAll(t, joined), []string{"hi-x"})
}

func TestDropNumEq(t *testing.T) {
	cond, err := condition.Parse("num =2")
	if err != nil {
		t.Fatal(err)
	}
	s := literalStream("1", "2", "3")
	out, _ := Wrap(pipeline.Operator{Kind: pipeline.OpTakeDrop, TakeDropMode: pipeline.TakeDropDrop, Cond: cond}, s, pipeline.Options{}, nil, nil)
	mustEqual(t, drainAll(t, out), []string{"1", "3"})
}

func TestReplaceNocase(t *testing.T) {
	s := literalStream("HELLO world")
	out, _ := Wrap(pipeline.Operator{Kind: pipeline.OpReplace, ReplaceFrom: "hello", ReplaceTo: "hi", Nocase: true}, s, pipeline.Options{}, nil, nil)
	mustEqual(t, drainAll(t, out), []string{"hi world"})
}

func TestJoinBatch(t *testing.T) {
	s := literalStream("a", "b", "c", "d", "e")
	out, _ := Wrap(pipeline.Operator{Kind: pipeline.OpJoin, JoinDelim: ",", JoinBatch: 2, HasBatch: true}, s, pipeline.Options{}, nil, nil)
	mustEqual(t, drainAll(t, out), []string{"a,b", "c,d", "e"})
}

func TestUniqNocaseGlobal(t *testing.T) {
	s := literalStream("A", "a")
	out, err := Wrap(pipeline.Operator{Kind: pipeline.OpUniq}, s, pipeline.Options{NocaseGlobal: true}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, drainAll(t, out), []string{"A"})
}

func TestUniqExplicitNocaseWinsOverGlobalOff(t *testing.T) {
	s := literalStream("A", "a")
	out, err := Wrap(pipeline.Operator{Kind: pipeline.OpUniq, Nocase: true}, s, pipeline.Options{}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, drainAll(t, out), []string{"A"})
}

func TestSortNumParseFailureIsFatalByDefault(t *testing.T) {
	s := literalStream("1", "x", "2")
	out, err := Wrap(pipeline.Operator{Kind: pipeline.OpSort, SortKey: pipeline.SortNumeric}, s, pipeline.Options{}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := out.Next(); err == nil {
		t.Fatal("expected a numeric parse error")
	}
}

func TestSortNumParseFailureDroppedUnderSkipErr(t *testing.T) {
	s := literalStream("1", "x", "2")
	var stderr bytes.Buffer
	out, err := Wrap(pipeline.Operator{Kind: pipeline.OpSort, SortKey: pipeline.SortNumeric}, s, pipeline.Options{SkipErrGlobal: true}, nil, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, drainAll(t, out), []string{"1", "2"})
	if stderr.Len() == 0 {
		t.Error("expected a skip-err diagnostic on stderr")
	}
}
