package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// Render renders desc back to a command-line-like string, the same
// representation used by --verbose and by audit log entries, so the two
// can never drift apart.
func Render(desc *Description) string {
	var b strings.Builder

	if desc.Options.Verbose {
		b.WriteString("-v ")
	}
	if desc.Options.DryRun {
		b.WriteString("-d ")
	}
	if desc.Options.NocaseGlobal {
		b.WriteString("-n ")
	}
	if desc.Options.SkipErrGlobal {
		b.WriteString("-s ")
	}

	renderSource(&b, desc.Source)
	for _, op := range desc.Operators {
		b.WriteByte(' ')
		renderOperator(&b, op)
	}
	b.WriteByte(' ')
	renderSink(&b, desc.Sink)

	return strings.TrimSpace(b.String())
}

func renderSource(b *strings.Builder, s Source) {
	switch s.Kind {
	case SourceStdin:
		b.WriteString(":in")
	case SourceFiles:
		fmt.Fprintf(b, ":file %s", strings.Join(s.Paths, " "))
	case SourceClipboard:
		b.WriteString(":clip")
	case SourceLiteral:
		fmt.Fprintf(b, ":of %s", strings.Join(s.Values, " "))
	case SourceGen:
		fmt.Fprintf(b, ":gen %d", s.GenStart)
		if s.HasEnd {
			fmt.Fprintf(b, ",%d", s.GenEnd)
		} else {
			b.WriteString(",")
		}
		if s.GenStep != 1 {
			fmt.Fprintf(b, ",%d", s.GenStep)
		}
		if s.HasFmt {
			fmt.Fprintf(b, " %s", s.GenFmt)
		}
	case SourceRepeat:
		fmt.Fprintf(b, ":repeat %s", s.RepeatValue)
		if s.HasCount {
			fmt.Fprintf(b, " %d", s.RepeatCount)
		}
	}
}

func renderOperator(b *strings.Builder, op Operator) {
	switch op.Kind {
	case OpPeek:
		b.WriteString(":peek")
		if op.HasFile {
			fmt.Fprintf(b, " file %s", op.PeekFile)
		}
		if op.PeekAppend {
			b.WriteString(" append")
		}
	case OpCase:
		switch op.CaseMode {
		case CaseUpper:
			b.WriteString(":upper")
		case CaseLower:
			b.WriteString(":lower")
		case CaseSwitch:
			b.WriteString(":case")
		}
	case OpReplace:
		fmt.Fprintf(b, ":replace %s %s", op.ReplaceFrom, op.ReplaceTo)
		if op.Nocase {
			b.WriteString(" nocase")
		}
		if op.HasReplaceCnt {
			fmt.Fprintf(b, " %d", op.ReplaceCount)
		}
	case OpTrim, OpTrimC:
		name := "trim"
		if op.Kind == OpTrimC {
			name = "trimc"
		}
		switch op.TrimSide {
		case TrimLeft:
			name = "l" + name
		case TrimRight:
			name = "r" + name
		}
		b.WriteByte(':')
		b.WriteString(name)
		if op.HasPattern {
			fmt.Fprintf(b, " %s", op.TrimPattern)
		}
		if op.Nocase {
			b.WriteString(" nocase")
		}
	case OpUniq:
		b.WriteString(":uniq")
		if op.Nocase {
			b.WriteString(" nocase")
		}
	case OpJoin:
		fmt.Fprintf(b, ":join %s", op.JoinDelim)
		if op.JoinPrefix != "" {
			fmt.Fprintf(b, " %s", op.JoinPrefix)
		}
		if op.JoinPostfix != "" {
			fmt.Fprintf(b, " %s", op.JoinPostfix)
		}
		if op.HasBatch {
			fmt.Fprintf(b, " %d", op.JoinBatch)
		}
	case OpTakeDrop:
		name := map[TakeDropMode]string{
			TakeDropDrop:      "drop",
			TakeDropTake:      "take",
			TakeDropDropWhile: "drop while",
			TakeDropTakeWhile: "take while",
		}[op.TakeDropMode]
		fmt.Fprintf(b, ":%s", name)
	case OpCount:
		b.WriteString(":count")
	case OpSort:
		b.WriteString(":sort")
		if op.SortKey == SortRandom {
			b.WriteString(" random")
		}
		if op.SortKey == SortNumeric {
			b.WriteString(" num")
			if op.HasDefault {
				fmt.Fprintf(b, " %s", strconv.FormatFloat(op.SortDefault, 'g', -1, 64))
			}
		}
		if op.Nocase {
			b.WriteString(" nocase")
		}
		if op.SortDesc {
			b.WriteString(" desc")
		}
	}
}

func renderSink(b *strings.Builder, s Sink) {
	switch s.Kind {
	case SinkStdout:
		b.WriteString(":to out")
	case SinkFile:
		fmt.Fprintf(b, ":to file %s", s.Path)
		if s.Append {
			b.WriteString(" append")
		}
		if s.Newline == NewlineCRLF {
			b.WriteString(" crlf")
		}
	case SinkClipboard:
		b.WriteString(":to clip")
		if s.Newline == NewlineCRLF {
			b.WriteString(" crlf")
		}
	}
}
