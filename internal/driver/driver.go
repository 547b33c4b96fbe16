// Package driver wires a parsed pipeline.Description's source, operators,
// and sink into a single pull-based execution. It is a separate package
// from pipeline so that pipeline's type definitions can be shared by
// source, operator, and sink without an import cycle.
package driver

import (
	"context"
	"io"

	"github.com/wrenfield/rp/internal/clipboard"
	"github.com/wrenfield/rp/internal/operator"
	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
	"github.com/wrenfield/rp/internal/sink"
	"github.com/wrenfield/rp/internal/source"
)

// Result summarizes one execution, used for --verbose output and audit
// log entries.
type Result struct {
	RecordsIn  int
	RecordsOut int
}

// Execute wires a Description's source, operators, and sink into a single
// pull-based stream and drains it. There are no worker goroutines: each
// call to the sink's Next ripples back through every operator to the
// source, one record at a time. ctx is checked before each source pull, so
// a SIGINT stops the pipeline at the next record; a read that is already
// blocked is not interrupted.
func Execute(ctx context.Context, desc *pipeline.Description, clip clipboard.Provider, stdin io.Reader, stdout, stderr io.Writer) (Result, error) {
	src, err := source.New(ctx, desc.Source, desc.Options, clip, stdin, stderr)
	if err != nil {
		return Result{}, err
	}

	counting := &countingStream{ctx: ctx, upstream: src}
	var s pipeline.Stream = counting

	for _, op := range desc.Operators {
		s, err = operator.Wrap(op, s, desc.Options, stdout, stderr)
		if err != nil {
			return Result{}, err
		}
	}

	n, err := sink.Drain(desc.Sink, s, clip, stdout)
	return Result{RecordsIn: counting.count, RecordsOut: n}, err
}

// countingStream wraps the source to count records pulled, for --verbose
// and audit reporting, without giving every source implementation its own
// counting responsibility. It also checks ctx before each pull.
type countingStream struct {
	ctx      context.Context
	upstream pipeline.Stream
	count    int
}

func (c *countingStream) Next() (record.Record, error) {
	if err := c.ctx.Err(); err != nil {
		return "", err
	}
	rec, err := c.upstream.Next()
	if err == nil {
		c.count++
	}
	return rec, err
}
