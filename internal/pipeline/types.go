// Package pipeline defines the parsed, typed representation of an rp
// command line and the pull-based Stream interface its stages share. The
// driver that wires a source, operators, and a sink together lives in
// internal/driver.
package pipeline

import "github.com/wrenfield/rp/internal/condition"

// Options carries global flags that apply across the whole pipeline.
type Options struct {
	Verbose       bool
	DryRun        bool
	NocaseGlobal  bool
	SkipErrGlobal bool
}

// Newline selects the line terminator a file or clipboard sink writes.
type Newline int

const (
	NewlineLF Newline = iota
	NewlineCRLF
)

func (n Newline) String() string {
	if n == NewlineCRLF {
		return "\r\n"
	}
	return "\n"
}

// SourceKind identifies which variant a Source is.
type SourceKind int

const (
	SourceStdin SourceKind = iota
	SourceFiles
	SourceClipboard
	SourceLiteral
	SourceGen
	SourceRepeat
)

// Source is the tagged union of the six input stage variants.
type Source struct {
	Kind SourceKind

	Paths  []string // SourceFiles
	Values []string // SourceLiteral

	// SourceGen
	GenStart int64
	GenEnd   int64
	HasEnd   bool
	GenStep  int64
	GenFmt   string
	HasFmt   bool

	// SourceRepeat
	RepeatValue string
	RepeatCount int64
	HasCount    bool
}

// OperatorKind identifies which variant an Operator is.
type OperatorKind int

const (
	OpPeek OperatorKind = iota
	OpCase
	OpReplace
	OpTrim
	OpTrimC
	OpUniq
	OpJoin
	OpTakeDrop
	OpCount
	OpSort
)

// TrimSide identifies which end(s) a trim/trimc operator strips.
type TrimSide int

const (
	TrimBoth TrimSide = iota
	TrimLeft
	TrimRight
)

// CaseMode selects the byte mapping :upper/:lower/:case apply.
type CaseMode int

const (
	CaseUpper CaseMode = iota
	CaseLower
	CaseSwitch
)

// TakeDropMode selects between the four filter operator shapes.
type TakeDropMode int

const (
	TakeDropDrop TakeDropMode = iota
	TakeDropTake
	TakeDropDropWhile
	TakeDropTakeWhile
)

// SortKey selects the comparison :sort uses.
type SortKey int

const (
	SortLexicographic SortKey = iota
	SortNumeric
	SortRandom
)

// Operator is the tagged union of the ten operator stage variants.
type Operator struct {
	Kind OperatorKind

	// OpPeek
	PeekFile   string
	HasFile    bool
	PeekAppend bool
	PeekNL     Newline

	// OpCase
	CaseMode CaseMode

	// OpReplace
	ReplaceFrom   string
	ReplaceTo     string
	ReplaceCount  int
	HasReplaceCnt bool
	Nocase        bool

	// OpTrim / OpTrimC
	TrimSide    TrimSide
	TrimPattern string
	HasPattern  bool

	// OpUniq — uses Nocase above.

	// OpJoin
	JoinDelim   string
	JoinPrefix  string
	JoinPostfix string
	JoinBatch   int
	HasBatch    bool

	// OpTakeDrop
	TakeDropMode TakeDropMode
	Cond         *condition.Cond

	// OpSort
	SortKey     SortKey
	SortDefault float64
	HasDefault  bool
	SortDesc    bool
	// Nocase and SortKey==SortRandom are mutually exclusive per the
	// parser's validation.
}

// SinkKind identifies which variant a Sink is.
type SinkKind int

const (
	SinkStdout SinkKind = iota
	SinkFile
	SinkClipboard
)

// Sink is the tagged union of the three output stage variants.
type Sink struct {
	Kind SinkKind

	Path    string // SinkFile
	Append  bool   // SinkFile
	Newline Newline
}

// Description is the fully parsed, immutable representation of one rp
// invocation: built once by the parser and never mutated during execution.
type Description struct {
	Options   Options
	Source    Source
	Operators []Operator
	Sink      Sink
}
