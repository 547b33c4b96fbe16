package pipeline

import (
	"strconv"
	"strings"

	"github.com/wrenfield/rp/internal/condition"
	"github.com/wrenfield/rp/internal/rperr"
)

// Parse consumes args — the pipeline portion of the command line, after
// -t expansion and the -V/-h/--mcp-serve/--audit top-level options have
// already been stripped by the caller — in four passes: options, input
// command, operator commands, output command.
func Parse(args []string) (*Description, error) {
	i := 0

	opts, err := parseOptions(args, &i)
	if err != nil {
		return nil, err
	}

	src, err := parseInput(args, &i)
	if err != nil {
		return nil, err
	}

	ops, err := parseOperators(args, &i)
	if err != nil {
		return nil, err
	}

	snk, err := parseOutput(args, &i)
	if err != nil {
		return nil, err
	}

	if i != len(args) {
		return nil, rperr.New(rperr.CodeUnparsed, "unparsed remainder starting at %q", args[i])
	}

	return &Description{Options: opts, Source: src, Operators: ops, Sink: snk}, nil
}

func parseOptions(args []string, i *int) (Options, error) {
	var o Options
	for *i < len(args) {
		tok := args[*i]
		if !strings.HasPrefix(tok, "-") {
			break
		}
		switch tok {
		case "-v", "--verbose":
			o.Verbose = true
		case "-d", "--dry-run":
			o.DryRun = true
		case "-n", "--nocase":
			o.NocaseGlobal = true
		case "-s", "--skip-err":
			o.SkipErrGlobal = true
		default:
			return o, rperr.New(rperr.CodeOptionsParse, "unknown option %q", tok)
		}
		*i++
	}
	return o, nil
}

// collectUntilColon gathers tokens starting at *i up to (not including)
// the next ":"-prefixed token or the end of args.
func collectUntilColon(args []string, i *int) []string {
	var out []string
	for *i < len(args) && !strings.HasPrefix(args[*i], ":") {
		out = append(out, args[*i])
		*i++
	}
	return out
}

var inputCommands = map[string]bool{
	"in": true, "file": true, "clip": true, "of": true, "gen": true, "repeat": true,
}

func parseInput(args []string, i *int) (Source, error) {
	if *i >= len(args) || !strings.HasPrefix(args[*i], ":") {
		return Source{Kind: SourceStdin}, nil
	}
	name := args[*i][1:]
	if !inputCommands[name] {
		return Source{Kind: SourceStdin}, nil
	}
	*i++
	rest := collectUntilColon(args, i)
	return parseSource(name, rest)
}

func parseSource(name string, args []string) (Source, error) {
	switch name {
	case "in":
		return Source{Kind: SourceStdin}, nil
	case "file":
		if len(args) == 0 {
			return Source{}, rperr.New(rperr.CodeMissingArgument, ":file requires at least one path")
		}
		return Source{Kind: SourceFiles, Paths: args}, nil
	case "clip":
		return Source{Kind: SourceClipboard}, nil
	case "of":
		return Source{Kind: SourceLiteral, Values: args}, nil
	case "gen":
		return parseGen(args)
	case "repeat":
		return parseRepeat(args)
	}
	return Source{}, rperr.New(rperr.CodeInputParse, "unknown input command %q", name)
}

func parseGen(args []string) (Source, error) {
	if len(args) == 0 {
		return Source{}, rperr.New(rperr.CodeMissingArgument, ":gen requires a start value")
	}
	parts := strings.Split(args[0], ",")
	if len(parts) > 3 {
		return Source{}, rperr.New(rperr.CodeInputParse, "invalid :gen spec %q", args[0])
	}
	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Source{}, rperr.New(rperr.CodeInputParse, "invalid :gen start %q: %v", parts[0], err)
	}
	src := Source{Kind: SourceGen, GenStart: start, GenStep: 1}
	if len(parts) >= 2 && parts[1] != "" {
		end, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Source{}, rperr.New(rperr.CodeInputParse, "invalid :gen end %q: %v", parts[1], err)
		}
		src.HasEnd, src.GenEnd = true, end
	}
	if len(parts) == 3 && parts[2] != "" {
		step, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return Source{}, rperr.New(rperr.CodeInputParse, "invalid :gen step %q: %v", parts[2], err)
		}
		src.GenStep = step
	}
	if src.GenStep == 0 {
		return Source{}, rperr.New(rperr.CodeArgumentParse, ":gen step must be nonzero")
	}
	if len(args) >= 2 {
		src.HasFmt, src.GenFmt = true, args[1]
	}
	if len(args) > 2 {
		return Source{}, rperr.New(rperr.CodeInputParse, "unexpected extra argument to :gen")
	}
	return src, nil
}

func parseRepeat(args []string) (Source, error) {
	if len(args) == 0 {
		return Source{}, rperr.New(rperr.CodeMissingArgument, ":repeat requires a value")
	}
	src := Source{Kind: SourceRepeat, RepeatValue: args[0]}
	if len(args) >= 2 {
		n, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return Source{}, rperr.New(rperr.CodeInputParse, "invalid :repeat count %q: %v", args[1], err)
		}
		src.HasCount, src.RepeatCount = true, n
	}
	if len(args) > 2 {
		return Source{}, rperr.New(rperr.CodeInputParse, "unexpected extra argument to :repeat")
	}
	return src, nil
}

var operatorCommands = map[string]bool{
	"peek": true, "upper": true, "lower": true, "case": true, "replace": true,
	"trim": true, "ltrim": true, "rtrim": true,
	"trimc": true, "ltrimc": true, "rtrimc": true,
	"uniq": true, "join": true, "drop": true, "take": true, "count": true, "sort": true,
}

func parseOperators(args []string, i *int) ([]Operator, error) {
	var ops []Operator
	for *i < len(args) {
		if !strings.HasPrefix(args[*i], ":") {
			return nil, rperr.New(rperr.CodeUnparsed, "unparsed remainder starting at %q", args[*i])
		}
		name := args[*i][1:]
		if name == "to" {
			break
		}
		if !operatorCommands[name] {
			return nil, rperr.New(rperr.CodeUnknownArgument, "unknown operator %q", args[*i])
		}
		*i++
		rest := collectUntilColon(args, i)
		op, err := parseOperator(name, rest)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOperator(name string, args []string) (Operator, error) {
	switch name {
	case "peek":
		return parsePeek(args)
	case "upper":
		return Operator{Kind: OpCase, CaseMode: CaseUpper}, nil
	case "lower":
		return Operator{Kind: OpCase, CaseMode: CaseLower}, nil
	case "case":
		return Operator{Kind: OpCase, CaseMode: CaseSwitch}, nil
	case "replace":
		return parseReplace(args)
	case "trim", "ltrim", "rtrim":
		return parseTrimLike(OpTrim, trimSideFor(name), args)
	case "trimc", "ltrimc", "rtrimc":
		return parseTrimLike(OpTrimC, trimSideFor(strings.TrimSuffix(name, "c")), args)
	case "uniq":
		return parseUniq(args)
	case "join":
		return parseJoin(args)
	case "drop":
		return parseTakeDrop(TakeDropDrop, TakeDropDropWhile, args)
	case "take":
		return parseTakeDrop(TakeDropTake, TakeDropTakeWhile, args)
	case "count":
		if len(args) != 0 {
			return Operator{}, rperr.New(rperr.CodeOpParse, ":count takes no arguments")
		}
		return Operator{Kind: OpCount}, nil
	case "sort":
		return parseSort(args)
	}
	return Operator{}, rperr.New(rperr.CodeOpParse, "unknown operator %q", name)
}

func trimSideFor(name string) TrimSide {
	switch {
	case strings.HasPrefix(name, "l"):
		return TrimLeft
	case strings.HasPrefix(name, "r"):
		return TrimRight
	default:
		return TrimBoth
	}
}

func parsePeek(args []string) (Operator, error) {
	op := Operator{Kind: OpPeek}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "file":
			i++
			if i >= len(args) {
				return Operator{}, rperr.New(rperr.CodeMissingArgument, ":peek file requires a path")
			}
			op.HasFile, op.PeekFile = true, args[i]
		case "append":
			op.PeekAppend = true
		case "lf":
			op.PeekNL = NewlineLF
		case "crlf":
			op.PeekNL = NewlineCRLF
		default:
			return Operator{}, rperr.New(rperr.CodeOpParse, "unexpected :peek argument %q", args[i])
		}
	}
	return op, nil
}

func parseReplace(args []string) (Operator, error) {
	if len(args) < 2 {
		return Operator{}, rperr.New(rperr.CodeMissingArgument, ":replace requires <from> <to>")
	}
	op := Operator{Kind: OpReplace, ReplaceFrom: args[0], ReplaceTo: args[1]}
	for _, a := range args[2:] {
		if a == "nocase" {
			op.Nocase = true
			continue
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			return Operator{}, rperr.New(rperr.CodeOpParse, "unexpected :replace argument %q", a)
		}
		op.HasReplaceCnt, op.ReplaceCount = true, n
	}
	return op, nil
}

func parseTrimLike(kind OperatorKind, side TrimSide, args []string) (Operator, error) {
	op := Operator{Kind: kind, TrimSide: side}
	for _, a := range args {
		if a == "nocase" {
			op.Nocase = true
			continue
		}
		if op.HasPattern {
			return Operator{}, rperr.New(rperr.CodeOpParse, "unexpected trim argument %q", a)
		}
		op.HasPattern, op.TrimPattern = true, a
	}
	return op, nil
}

func parseUniq(args []string) (Operator, error) {
	op := Operator{Kind: OpUniq}
	for _, a := range args {
		if a != "nocase" {
			return Operator{}, rperr.New(rperr.CodeOpParse, "unexpected :uniq argument %q", a)
		}
		op.Nocase = true
	}
	return op, nil
}

func parseJoin(args []string) (Operator, error) {
	op := Operator{Kind: OpJoin}
	if len(args) >= 1 {
		op.JoinDelim = args[0]
	}
	if len(args) >= 2 {
		op.JoinPrefix = args[1]
	}
	if len(args) >= 3 {
		op.JoinPostfix = args[2]
	}
	if len(args) >= 4 {
		n, err := strconv.Atoi(args[3])
		if err != nil {
			return Operator{}, rperr.New(rperr.CodeOpParse, "invalid :join batch %q: %v", args[3], err)
		}
		op.HasBatch, op.JoinBatch = true, n
	}
	if len(args) > 4 {
		return Operator{}, rperr.New(rperr.CodeOpParse, "unexpected extra argument to :join")
	}
	return op, nil
}

func parseTakeDrop(mode, whileMode TakeDropMode, args []string) (Operator, error) {
	if len(args) == 0 {
		return Operator{}, rperr.New(rperr.CodeMissingArgument, "missing condition")
	}
	m := mode
	exprArg := args[0]
	if args[0] == "while" {
		if len(args) < 2 {
			return Operator{}, rperr.New(rperr.CodeMissingArgument, "missing condition after while")
		}
		m = whileMode
		exprArg = args[1]
	}
	cond, err := condition.Parse(exprArg)
	if err != nil {
		return Operator{}, err
	}
	return Operator{Kind: OpTakeDrop, TakeDropMode: m, Cond: cond}, nil
}

func parseSort(args []string) (Operator, error) {
	op := Operator{Kind: OpSort}
	sawNum, sawRandom := false, false
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "num":
			sawNum = true
			op.SortKey = SortNumeric
			if i+1 < len(args) {
				if v, err := strconv.ParseFloat(args[i+1], 64); err == nil {
					op.HasDefault, op.SortDefault = true, v
					i++
				}
			}
		case "nocase":
			op.Nocase = true
		case "desc":
			op.SortDesc = true
		case "random":
			sawRandom = true
			op.SortKey = SortRandom
		default:
			return Operator{}, rperr.New(rperr.CodeOpParse, "unexpected :sort argument %q", args[i])
		}
	}
	if sawRandom && (sawNum || op.Nocase || op.SortDesc) {
		return Operator{}, rperr.New(rperr.CodeOpParse, ":sort random is mutually exclusive with num/nocase/desc")
	}
	return op, nil
}

func parseOutput(args []string, i *int) (Sink, error) {
	if *i >= len(args) {
		return Sink{Kind: SinkStdout}, nil
	}
	if args[*i] != ":to" {
		return Sink{}, rperr.New(rperr.CodeUnparsed, "unparsed remainder starting at %q", args[*i])
	}
	*i++
	if *i >= len(args) {
		return Sink{}, rperr.New(rperr.CodeMissingArgument, ":to requires out/file/clip")
	}
	sub := args[*i]
	*i++
	rest := args[*i:]
	*i = len(args)

	switch sub {
	case "out":
		if len(rest) != 0 {
			return Sink{}, rperr.New(rperr.CodeOutputParse, "unexpected argument to :to out")
		}
		return Sink{Kind: SinkStdout}, nil
	case "file":
		if len(rest) == 0 {
			return Sink{}, rperr.New(rperr.CodeMissingArgument, ":to file requires a path")
		}
		snk := Sink{Kind: SinkFile, Path: rest[0]}
		for _, a := range rest[1:] {
			switch a {
			case "append":
				snk.Append = true
			case "lf":
				snk.Newline = NewlineLF
			case "crlf":
				snk.Newline = NewlineCRLF
			default:
				return Sink{}, rperr.New(rperr.CodeOutputParse, "unexpected :to file argument %q", a)
			}
		}
		return snk, nil
	case "clip":
		snk := Sink{Kind: SinkClipboard}
		for _, a := range rest {
			switch a {
			case "lf":
				snk.Newline = NewlineLF
			case "crlf":
				snk.Newline = NewlineCRLF
			default:
				return Sink{}, rperr.New(rperr.CodeOutputParse, "unexpected :to clip argument %q", a)
			}
		}
		return snk, nil
	}
	return Sink{}, rperr.New(rperr.CodeOutputParse, "unknown output command %q", sub)
}
