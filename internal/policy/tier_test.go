package policy

import (
	"testing"

	"github.com/wrenfield/rp/internal/pipeline"
)

func TestHighestTierReadOnly(t *testing.T) {
	desc := &pipeline.Description{
		Source: pipeline.Source{Kind: pipeline.SourceStdin},
		Sink:   pipeline.Sink{Kind: pipeline.SinkStdout},
	}
	if HighestTier(desc) != TierRead {
		t.Errorf("want TierRead")
	}
}

func TestHighestTierFileSink(t *testing.T) {
	desc := &pipeline.Description{
		Source: pipeline.Source{Kind: pipeline.SourceStdin},
		Sink:   pipeline.Sink{Kind: pipeline.SinkFile, Path: "out.txt"},
	}
	if HighestTier(desc) != TierWrite {
		t.Errorf("want TierWrite")
	}
}

func TestCheckRejectsOverCeiling(t *testing.T) {
	desc := &pipeline.Description{
		Source: pipeline.Source{Kind: pipeline.SourceStdin},
		Sink:   pipeline.Sink{Kind: pipeline.SinkFile, Path: "out.txt"},
	}
	if err := Check(desc, TierRead); err == nil {
		t.Fatal("expected rejection")
	}
	if err := Check(desc, TierWrite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
