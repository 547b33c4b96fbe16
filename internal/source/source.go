// Package source implements the six input stage variants, each producing
// a pipeline.Stream of records.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wrenfield/rp/internal/clipboard"
	"github.com/wrenfield/rp/internal/fmtstring"
	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/record"
	"github.com/wrenfield/rp/internal/rperr"
)

// New builds the Stream a pipeline.Source describes. Stdin and :file
// streams check ctx before each read, so SIGINT stops reading at the next
// record; a read that is already blocked is not interrupted. stdin is the
// process's standard input (or any reader substituted in tests). Under
// opts.SkipErrGlobal, a read failure is logged to stderr and the stream
// ends instead of returning a fatal error — reading continues where
// possible (the next file in a :file list), but a stream that can no
// longer read cannot be resumed mid-file.
func New(ctx context.Context, desc pipeline.Source, opts pipeline.Options, clip clipboard.Provider, stdin io.Reader, stderr io.Writer) (pipeline.Stream, error) {
	switch desc.Kind {
	case pipeline.SourceStdin:
		return newLineStream(ctx, stdin, opts.SkipErrGlobal, stderr), nil

	case pipeline.SourceFiles:
		return newFilesStream(ctx, desc.Paths, opts.SkipErrGlobal, stderr), nil

	case pipeline.SourceClipboard:
		text, err := clip.Read()
		if err != nil {
			return nil, err
		}
		return newLiteralStream(splitLines(text)), nil

	case pipeline.SourceLiteral:
		return newLiteralStream(desc.Values), nil

	case pipeline.SourceGen:
		return newGenStream(desc)

	case pipeline.SourceRepeat:
		return newRepeatStream(desc), nil
	}
	return nil, rperr.New(rperr.CodeInputParse, "unknown source kind %v", desc.Kind)
}

func newLineStream(ctx context.Context, r io.Reader, skipErr bool, stderr io.Writer) pipeline.Stream {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return pipeline.Func(func() (record.Record, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				if skipErr {
					fmt.Fprintf(stderr, "rp: skip-err: read error, ending stream: %v\n", err)
					return "", io.EOF
				}
				return "", rperr.New(rperr.CodeFileRead, "read: %v", err)
			}
			return "", io.EOF
		}
		return record.Record(sc.Text()), nil
	})
}

// filesStream opens exactly one file handle at a time, lazily, and closes
// it on EOF before opening the next path.
type filesStream struct {
	ctx      context.Context
	paths    []string
	idx      int
	cur      *os.File
	curLines pipeline.Stream
	skipErr  bool
	stderr   io.Writer
}

func newFilesStream(ctx context.Context, paths []string, skipErr bool, stderr io.Writer) pipeline.Stream {
	return &filesStream{ctx: ctx, paths: paths, skipErr: skipErr, stderr: stderr}
}

func (s *filesStream) Next() (record.Record, error) {
	for {
		if s.curLines != nil {
			rec, err := s.curLines.Next()
			if err == nil {
				return rec, nil
			}
			if err != io.EOF {
				return "", err
			}
			s.cur.Close()
			s.cur = nil
			s.curLines = nil
		}
		if s.idx >= len(s.paths) {
			return "", io.EOF
		}
		path := s.paths[s.idx]
		s.idx++
		f, err := os.Open(path)
		if err != nil {
			if s.skipErr {
				fmt.Fprintf(s.stderr, "rp: skip-err: skipping %s: %v\n", path, err)
				continue
			}
			return "", rperr.New(rperr.CodeFileOpen, "open %s: %v", path, err)
		}
		s.cur = f
		s.curLines = newLineStream(s.ctx, f, s.skipErr, s.stderr)
	}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func newLiteralStream(values []string) pipeline.Stream {
	i := 0
	return pipeline.Func(func() (record.Record, error) {
		if i >= len(values) {
			return "", io.EOF
		}
		v := values[i]
		i++
		return record.Record(v), nil
	})
}

func newGenStream(desc pipeline.Source) (pipeline.Stream, error) {
	if desc.GenStep == 0 {
		return nil, rperr.New(rperr.CodeArgumentParse, "gen step must be nonzero")
	}
	cur := desc.GenStart
	first := true
	done := false
	return pipeline.Func(func() (record.Record, error) {
		if done {
			return "", io.EOF
		}
		if !first {
			next := cur + desc.GenStep
			if overflowed(cur, desc.GenStep, next) {
				done = true
				return "", io.EOF
			}
			cur = next
		}
		first = false

		if desc.GenStep > 0 {
			if desc.HasEnd && cur > desc.GenEnd {
				done = true
				return "", io.EOF
			}
		} else {
			if desc.HasEnd && cur < desc.GenEnd {
				done = true
				return "", io.EOF
			}
		}

		if desc.HasFmt {
			s, err := fmtstring.Format(desc.GenFmt, cur)
			if err != nil {
				return "", err
			}
			return record.Record(s), nil
		}
		return record.Record(strconv.FormatInt(cur, 10)), nil
	}), nil
}

func overflowed(prev, step, next int64) bool {
	if step > 0 {
		return next < prev
	}
	return next > prev
}

func newRepeatStream(desc pipeline.Source) pipeline.Stream {
	var remaining int64
	if desc.HasCount {
		remaining = desc.RepeatCount
	}
	return pipeline.Func(func() (record.Record, error) {
		if desc.HasCount {
			if remaining <= 0 {
				return "", io.EOF
			}
			remaining--
		}
		return record.Record(desc.RepeatValue), nil
	})
}
