package pipeline

import "github.com/wrenfield/rp/internal/record"

// Stream is a pull-based lazy sequence of records. Next returns io.EOF
// (via the io package's sentinel, returned directly so callers can compare
// with ==) once the sequence is exhausted. There are no other contracts:
// a Stream holds whatever state it needs between calls and is never
// shared across goroutines.
type Stream interface {
	Next() (record.Record, error)
}

// Func adapts a plain function to the Stream interface.
type Func func() (record.Record, error)

func (f Func) Next() (record.Record, error) { return f() }
