package cli

import (
	"fmt"
	"io"
)

// RunHelp prints usage. topic selects a specific operator/source/sink's
// help text; an empty topic prints the general overview.
func RunHelp(w io.Writer, topic string) int {
	if topic == "" {
		printGeneralHelp(w)
		return 0
	}
	text, ok := topics[topic]
	if !ok {
		fmt.Fprintf(w, "rp: no help for %q\n", topic)
		return 1
	}
	fmt.Fprintln(w, text)
	return 0
}

func printGeneralHelp(w io.Writer) {
	fmt.Fprintln(w, "rp — a streaming text-processing pipeline")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  rp [options] [:source ...] [:operator ...] [:to sink ...]")
	fmt.Fprintln(w, "  rp -t \"<token string>\"         expand a single quoted argument vector")
	fmt.Fprintln(w, "  rp --mcp-serve                  run as an MCP server over stdio")
	fmt.Fprintln(w, "  rp --audit-log <path>            override the configured audit log path")
	fmt.Fprintln(w, "  rp --audit <verify|show|tail>    audit log operations")
	fmt.Fprintln(w, "  rp -h, --help [topic]            show this or topic-specific help")
	fmt.Fprintln(w, "  rp -V, --version                 show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "options: -v/--verbose -d/--dry-run -n/--nocase -s/--skip-err")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "sources: :in :file :clip :of :gen :repeat")
	fmt.Fprintln(w, "operators: :peek :upper :lower :case :replace :trim :ltrim :rtrim")
	fmt.Fprintln(w, "           :trimc :ltrimc :rtrimc :uniq :join :drop :take :count :sort")
	fmt.Fprintln(w, "sinks: :to out :to file :to clip")
}

// topics matches the -h/--help [topic] vocabulary from the CLI grammar:
// opt|options, in|input, op, out|output, code, fmt, cond|condition.
var topics = map[string]string{
	"opt":     "options: -v/--verbose -d/--dry-run -n/--nocase -s/--skip-err -t/--token <text>",
	"options": "options: -v/--verbose -d/--dry-run -n/--nocase -s/--skip-err -t/--token <text>",
	"in":      "sources: :in :file <path...> :clip :of <value...> :gen start[,end][,step] [fmt] :repeat value [count]",
	"input":   "sources: :in :file <path...> :clip :of <value...> :gen start[,end][,step] [fmt] :repeat value [count]",
	"op":      ":peek [file <path>] [append] [lf|crlf] :upper :lower :case :replace <from> <to> [nocase] [count]\n:trim/:ltrim/:rtrim [pattern] [nocase] :trimc/:ltrimc/:rtrimc [cutset] [nocase]\n:uniq [nocase] :join [delim] [prefix] [postfix] [batch] :drop/:take [while] <condition>\n:count :sort [num [default]] [nocase] [desc] [random]",
	"out":     "sinks: :to out | :to file <path> [append] [lf|crlf] | :to clip [lf|crlf]",
	"output":  "sinks: :to out | :to file <path> [append] [lf|crlf] | :to clip [lf|crlf]",
	"code":    "exit codes: 0 success 1 options-parse 2 input-parse 3 op-parse 4 output-parse 5 argument-parse 6 missing argument 7 unparsed remainder 8 unknown argument 9 clipboard read 10 file read 11 clipboard write 12 file open 13 file write 14 format error 15 regex compile 16 numeric parse 17 invalid escape",
	"fmt":     "format string: {v} or {v:SPEC}; SPEC = [#][0width]base, base one of x X o b d",
	"cond":    "conditions: len [min],[max] | len =n | num [integer|float] | num [min],[max] | num =v | upper | lower | empty | blank | reg <pattern>; a leading ! negates len and num conditions and has no effect on the others",
	"condition": "conditions: len [min],[max] | len =n | num [integer|float] | num [min],[max] | num =v | upper | lower | empty | blank | reg <pattern>; a leading ! negates len and num conditions and has no effect on the others",
}
