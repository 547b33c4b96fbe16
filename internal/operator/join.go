package operator

import (
	"io"
	"strings"

	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
)

// wrapJoin collects records and emits one joined record per batch (or one
// overall, if no batch size was given), wrapped in prefix/postfix.
func wrapJoin(op pipeline.Operator, upstream pipeline.Stream) pipeline.Stream {
	done := false
	return pipeline.Func(func() (record.Record, error) {
		if done {
			return "", io.EOF
		}

		var parts []string
		if op.HasBatch {
			for len(parts) < op.JoinBatch {
				rec, err := upstream.Next()
				if err == io.EOF {
					done = true
					break
				}
				if err != nil {
					return "", err
				}
				parts = append(parts, string(rec))
			}
			if len(parts) == 0 {
				return "", io.EOF
			}
		} else {
			for {
				rec, err := upstream.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return "", err
				}
				parts = append(parts, string(rec))
			}
			done = true
		}

		return record.Record(op.JoinPrefix + strings.Join(parts, op.JoinDelim) + op.JoinPostfix), nil
	})
}
