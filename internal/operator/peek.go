package operator

import (
	"io"
	"os"

	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
	"github.com/wrenfield/rp/internal/rperr"
)

// peekStream is the identity on the sequence; as a side effect it writes
// each record to stdout or a lazily-opened file, closing the file once
// the upstream is exhausted.
type peekStream struct {
	upstream pipeline.Stream
	w        io.Writer
	file     *os.File
	op       pipeline.Operator
	opened   bool
}

func wrapPeek(op pipeline.Operator, upstream pipeline.Stream, stdout io.Writer) (pipeline.Stream, error) {
	return &peekStream{upstream: upstream, w: stdout, op: op}, nil
}

func (s *peekStream) Next() (record.Record, error) {
	rec, err := s.upstream.Next()
	if err != nil {
		if s.file != nil {
			s.file.Close()
			s.file = nil
		}
		return "", err
	}

	w, err := s.writer()
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(w, string(rec)+s.op.PeekNL.String()); err != nil {
		return "", rperr.New(rperr.CodeFileWrite, "peek write: %v", err)
	}
	return rec, nil
}

func (s *peekStream) writer() (io.Writer, error) {
	if !s.op.HasFile {
		return s.w, nil
	}
	if s.file == nil {
		flags := os.O_WRONLY | os.O_CREATE
		if s.op.PeekAppend {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(s.op.PeekFile, flags, 0644)
		if err != nil {
			return nil, rperr.New(rperr.CodeFileOpen, "open %s: %v", s.op.PeekFile, err)
		}
		s.file = f
	}
	return s.file, nil
}
