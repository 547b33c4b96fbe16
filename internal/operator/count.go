package operator

import (
	"io"
	"strconv"

	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
)

// wrapCount consumes the entire input and emits one record: the decimal
// count of records seen.
func wrapCount(upstream pipeline.Stream) pipeline.Stream {
	done := false
	return pipeline.Func(func() (record.Record, error) {
		if done {
			return "", io.EOF
		}
		done = true
		var n int64
		for {
			_, err := upstream.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", err
			}
			n++
		}
		return record.Record(strconv.FormatInt(n, 10)), nil
	})
}
