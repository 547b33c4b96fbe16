package operator

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
	"github.com/wrenfield/rp/internal/rperr"
)

// wrapSort buffers the whole input, sorts it, and streams the result.
// random, num, nocase, and desc are validated mutually-compatible (or not)
// by the parser; this operator just applies whichever were set. Under
// skipErr, a num record with no parseable number and no default is logged
// to stderr and dropped from the sorted output instead of aborting.
func wrapSort(op pipeline.Operator, upstream pipeline.Stream, skipErr bool, stderr io.Writer) pipeline.Stream {
	var items []string
	ready := false
	idx := 0

	return pipeline.Func(func() (record.Record, error) {
		if !ready {
			for {
				rec, err := upstream.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return "", err
				}
				items = append(items, string(rec))
			}
			sorted, err := sortItems(items, op, skipErr, stderr)
			if err != nil {
				return "", err
			}
			items = sorted
			ready = true
		}
		if idx >= len(items) {
			return "", io.EOF
		}
		v := items[idx]
		idx++
		return record.Record(v), nil
	})
}

func sortItems(items []string, op pipeline.Operator, skipErr bool, stderr io.Writer) ([]string, error) {
	switch {
	case op.SortKey == pipeline.SortRandom:
		rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		return items, nil

	case op.SortKey == pipeline.SortNumeric:
		keys := make([]float64, 0, len(items))
		kept := make([]string, 0, len(items))
		for _, s := range items {
			k, ok := numKey(s, op)
			if !ok {
				if skipErr {
					fmt.Fprintf(stderr, "rp: skip-err: dropping unparseable record from sort: %q\n", s)
					continue
				}
				return nil, rperr.New(rperr.CodeNumericParse, "sort num: %q is not a number", s)
			}
			keys = append(keys, k)
			kept = append(kept, s)
		}
		order := make([]int, len(kept))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			a, b := keys[order[i]], keys[order[j]]
			if op.SortDesc {
				return a > b
			}
			return a < b
		})
		out := make([]string, len(kept))
		for i, k := range order {
			out[i] = kept[k]
		}
		return out, nil

	default:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i], items[j]
			if op.Nocase {
				a, b = asciiLower(a), asciiLower(b)
			}
			if op.SortDesc {
				return a > b
			}
			return a < b
		})
		return items, nil
	}
}

// numKey reports the numeric sort key for s, falling back to op.SortDefault
// when s doesn't parse as a number and a default was given. ok is false
// only when s doesn't parse and no default applies.
func numKey(s string, op pipeline.Operator) (key float64, ok bool) {
	n := record.ParseNum(s)
	if n.IsNumber() {
		return n.AsFloat(), true
	}
	if op.HasDefault {
		return op.SortDefault, true
	}
	return 0, false
}
