package operator

import (
	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
)

// wrapUniq emits the first occurrence of each record seen so far, in
// first-seen order. Memory is O(distinct records) in the worst case.
func wrapUniq(op pipeline.Operator, upstream pipeline.Stream) pipeline.Stream {
	seen := make(map[string]struct{})
	return pipeline.Func(func() (record.Record, error) {
		for {
			rec, err := upstream.Next()
			if err != nil {
				return "", err
			}
			key := string(rec)
			if op.Nocase {
				key = asciiLower(key)
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			return rec, nil
		}
	})
}
