package operator

import (
	"io"

	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
)

func wrapTakeDrop(op pipeline.Operator, upstream pipeline.Stream) pipeline.Stream {
	switch op.TakeDropMode {
	case pipeline.TakeDropDrop:
		return pipeline.Func(func() (record.Record, error) {
			for {
				rec, err := upstream.Next()
				if err != nil {
					return "", err
				}
				if !op.Cond.Test(string(rec)) {
					return rec, nil
				}
			}
		})
	case pipeline.TakeDropTake:
		return pipeline.Func(func() (record.Record, error) {
			for {
				rec, err := upstream.Next()
				if err != nil {
					return "", err
				}
				if op.Cond.Test(string(rec)) {
					return rec, nil
				}
			}
		})
	case pipeline.TakeDropDropWhile:
		dropping := true
		return pipeline.Func(func() (record.Record, error) {
			for {
				rec, err := upstream.Next()
				if err != nil {
					return "", err
				}
				if dropping {
					if op.Cond.Test(string(rec)) {
						continue
					}
					dropping = false
				}
				return rec, nil
			}
		})
	case pipeline.TakeDropTakeWhile:
		stopped := false
		return pipeline.Func(func() (record.Record, error) {
			if stopped {
				return "", io.EOF
			}
			rec, err := upstream.Next()
			if err != nil {
				return "", err
			}
			if !op.Cond.Test(string(rec)) {
				stopped = true
				return "", io.EOF
			}
			return rec, nil
		})
	}
	return upstream
}
