// Package policy classifies pipeline stages into a safety tier and gates
// MCP-submitted pipelines against a configured ceiling. A pipeline run
// directly from the CLI is never gated — a local user already has a
// shell and the same access a stage would need.
package policy

import (
	"fmt"

	"github.com/wrenfield/rp/internal/pipeline"
)

// Tier orders pipeline stages by what they can touch outside the process.
type Tier int

const (
	// TierRead covers stages that only read: stdin, files, the
	// clipboard, literals, and the generated sources, plus stdout.
	TierRead Tier = iota
	// TierWrite covers stages that write outside the process: a file or
	// clipboard sink, or :peek writing to a file.
	TierWrite
)

func (t Tier) String() string {
	if t == TierWrite {
		return "write"
	}
	return "read"
}

// SourceTier returns the tier a source variant requires.
func SourceTier(s pipeline.Source) Tier {
	return TierRead
}

// OperatorTier returns the tier an operator variant requires. Every
// operator is TierRead except :peek writing to a file, which is
// TierWrite — the same tier as :to file.
func OperatorTier(op pipeline.Operator) Tier {
	if op.Kind == pipeline.OpPeek && op.HasFile {
		return TierWrite
	}
	return TierRead
}

// SinkTier returns the tier a sink variant requires.
func SinkTier(s pipeline.Sink) Tier {
	if s.Kind == pipeline.SinkFile || s.Kind == pipeline.SinkClipboard {
		return TierWrite
	}
	return TierRead
}

// HighestTier returns the highest tier any stage of desc requires.
func HighestTier(desc *pipeline.Description) Tier {
	t := SourceTier(desc.Source)
	for _, op := range desc.Operators {
		if ot := OperatorTier(op); ot > t {
			t = ot
		}
	}
	if st := SinkTier(desc.Sink); st > t {
		t = st
	}
	return t
}

// Check rejects desc if it requires a tier above ceiling.
func Check(desc *pipeline.Description, ceiling Tier) error {
	if got := HighestTier(desc); got > ceiling {
		return fmt.Errorf("pipeline requires tier %s, exceeds ceiling %s", got, ceiling)
	}
	return nil
}
