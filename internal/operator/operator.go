// Package operator implements the ten pipeline operator stage variants,
// each wrapping an upstream pipeline.Stream with a transformed one.
package operator

import (
	"io"

	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/rperr"
)

// Wrap builds the Stream an Operator describes, reading from upstream.
// stdout is where :peek writes in the absence of a file argument; stderr
// receives skip-err diagnostics. opts.NocaseGlobal sets a default for
// op.Nocase on the kinds that accept a nocase modifier, without
// overriding an explicit per-operator setting; :sort random never takes
// a nocase default since it's mutually exclusive with nocase at parse
// time. opts.SkipErrGlobal governs whether the one operator-local error
// case (a :sort num record with no parseable number and no default) is
// fatal or dropped-and-logged.
func Wrap(op pipeline.Operator, upstream pipeline.Stream, opts pipeline.Options, stdout, stderr io.Writer) (pipeline.Stream, error) {
	if opts.NocaseGlobal && !op.Nocase {
		switch op.Kind {
		case pipeline.OpReplace, pipeline.OpTrim, pipeline.OpTrimC, pipeline.OpUniq:
			op.Nocase = true
		case pipeline.OpSort:
			if op.SortKey != pipeline.SortRandom {
				op.Nocase = true
			}
		}
	}

	switch op.Kind {
	case pipeline.OpPeek:
		return wrapPeek(op, upstream, stdout)
	case pipeline.OpCase:
		return wrapCase(op, upstream), nil
	case pipeline.OpReplace:
		return wrapReplace(op, upstream), nil
	case pipeline.OpTrim:
		return wrapTrim(op, upstream), nil
	case pipeline.OpTrimC:
		return wrapTrimC(op, upstream), nil
	case pipeline.OpUniq:
		return wrapUniq(op, upstream), nil
	case pipeline.OpJoin:
		return wrapJoin(op, upstream), nil
	case pipeline.OpTakeDrop:
		return wrapTakeDrop(op, upstream), nil
	case pipeline.OpCount:
		return wrapCount(upstream), nil
	case pipeline.OpSort:
		return wrapSort(op, upstream, opts.SkipErrGlobal, stderr), nil
	}
	return nil, rperr.New(rperr.CodeOpParse, "unknown operator kind %v", op.Kind)
}
