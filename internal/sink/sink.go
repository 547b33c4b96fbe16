// Package sink implements the three output stage variants, each draining
// a pipeline.Stream.
package sink

import (
	"io"
	"os"
	"strings"

	"github.com/wrenfield/rp/internal/clipboard"
	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/rperr"
)

// Drain consumes s fully, writing each record to the destination desc
// describes. stdout is the process's standard output (or a substitute
// writer in tests). It returns the number of records written.
func Drain(desc pipeline.Sink, s pipeline.Stream, clip clipboard.Provider, stdout io.Writer) (int, error) {
	switch desc.Kind {
	case pipeline.SinkStdout:
		return drainTo(s, stdout, pipeline.NewlineLF)

	case pipeline.SinkFile:
		flags := os.O_WRONLY | os.O_CREATE
		if desc.Append {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(desc.Path, flags, 0644)
		if err != nil {
			return 0, rperr.New(rperr.CodeFileOpen, "open %s: %v", desc.Path, err)
		}
		defer f.Close()
		n, err := drainTo(s, f, desc.Newline)
		if err != nil {
			return n, err
		}
		return n, nil

	case pipeline.SinkClipboard:
		var lines []string
		for {
			rec, err := s.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return len(lines), err
			}
			lines = append(lines, string(rec))
		}
		text := strings.Join(lines, desc.Newline.String())
		if err := clip.Write(text); err != nil {
			return len(lines), err
		}
		return len(lines), nil
	}
	return 0, rperr.New(rperr.CodeOutputParse, "unknown sink kind %v", desc.Kind)
}

func drainTo(s pipeline.Stream, w io.Writer, nl pipeline.Newline) (int, error) {
	n := 0
	for {
		rec, err := s.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if _, err := io.WriteString(w, string(rec)+nl.String()); err != nil {
			return n, rperr.New(rperr.CodeFileWrite, "write: %v", err)
		}
		n++
	}
}
