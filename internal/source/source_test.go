package source

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/wrenfield/rp/internal/pipeline"
)

func drain(t *testing.T, s pipeline.Stream) []string {
	t.Helper()
	var out []string
	for {
		r, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, string(r))
	}
	return out
}

func TestStdinSource(t *testing.T) {
	s, err := New(context.Background(), pipeline.Source{Kind: pipeline.SourceStdin}, pipeline.Options{}, nil, strings.NewReader("a\nb\nc"), io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	got := drain(t, s)
	want := []string{"a", "b", "c"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLiteralSource(t *testing.T) {
	s, err := New(context.Background(), pipeline.Source{Kind: pipeline.SourceLiteral, Values: []string{"a", "b", "c"}}, pipeline.Options{}, nil, nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	got := drain(t, s)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("got %v", got)
	}
}

func TestGenSource(t *testing.T) {
	s, err := New(context.Background(), pipeline.Source{Kind: pipeline.SourceGen, GenStart: 0, GenEnd: 10, HasEnd: true, GenStep: 2}, pipeline.Options{}, nil, nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	got := drain(t, s)
	want := []string{"0", "2", "4", "6", "8", "10"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenSourceEmptyRange(t *testing.T) {
	s, err := New(context.Background(), pipeline.Source{Kind: pipeline.SourceGen, GenStart: 10, GenEnd: 0, HasEnd: true, GenStep: 1}, pipeline.Options{}, nil, nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	got := drain(t, s)
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestGenSourceZeroStep(t *testing.T) {
	_, err := New(context.Background(), pipeline.Source{Kind: pipeline.SourceGen, GenStep: 0}, pipeline.Options{}, nil, nil, io.Discard)
	if err == nil {
		t.Fatal("expected error for zero step")
	}
}

func TestRepeatSource(t *testing.T) {
	s, err := New(context.Background(), pipeline.Source{Kind: pipeline.SourceRepeat, RepeatValue: "x", RepeatCount: 3, HasCount: true}, pipeline.Options{}, nil, nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	got := drain(t, s)
	if len(got) != 3 || got[0] != "x" {
		t.Errorf("got %v", got)
	}
}

func TestFilesSourceSkipErrSkipsMissingFile(t *testing.T) {
	var stderr strings.Builder
	s, err := New(context.Background(), pipeline.Source{Kind: pipeline.SourceFiles, Paths: []string{"/nonexistent/does-not-exist-rp-test"}}, pipeline.Options{SkipErrGlobal: true}, nil, nil, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	got := drain(t, s)
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
	if stderr.Len() == 0 {
		t.Error("expected a skip-err diagnostic on stderr")
	}
}

func TestFilesSourceMissingFileIsFatalWithoutSkipErr(t *testing.T) {
	s, err := New(context.Background(), pipeline.Source{Kind: pipeline.SourceFiles, Paths: []string{"/nonexistent/does-not-exist-rp-test"}}, pipeline.Options{}, nil, nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Next(); err == nil {
		t.Fatal("expected a fatal open error")
	}
}
