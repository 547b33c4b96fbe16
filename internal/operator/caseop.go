package operator

import (
	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
)

func wrapCase(op pipeline.Operator, upstream pipeline.Stream) pipeline.Stream {
	return pipeline.Func(func() (record.Record, error) {
		rec, err := upstream.Next()
		if err != nil {
			return "", err
		}
		return record.Record(mapCase(string(rec), op.CaseMode)), nil
	})
}

func mapCase(s string, mode pipeline.CaseMode) string {
	b := []byte(s)
	for i, c := range b {
		switch mode {
		case pipeline.CaseUpper:
			if c >= 'a' && c <= 'z' {
				b[i] = c - ('a' - 'A')
			}
		case pipeline.CaseLower:
			if c >= 'A' && c <= 'Z' {
				b[i] = c + ('a' - 'A')
			}
		case pipeline.CaseSwitch:
			switch {
			case c >= 'A' && c <= 'Z':
				b[i] = c + ('a' - 'A')
			case c >= 'a' && c <= 'z':
				b[i] = c - ('a' - 'A')
			}
		}
	}
	return string(b)
}
