package sink

import (
	"bytes"
	"io"
	"testing"

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

func TestDrainStdout(t *testing.T) {
	var buf bytes.Buffer
	n, err := Drain(pipeline.Sink{Kind: pipeline.SinkStdout}, literalStream("A", "B", "C"), nil, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
	want := "A\nB\nC\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
