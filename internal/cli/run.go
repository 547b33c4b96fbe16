package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wrenfield/rp/internal/audit"
	"github.com/wrenfield/rp/internal/clipboard"
	"github.com/wrenfield/rp/internal/driver"
	"github.com/wrenfield/rp/internal/pipeline"
	"github.com/wrenfield/rp/internal/policy"
	"github.com/wrenfield/rp/internal/rperr"
)

// ParseArgs expands -t/--token if present and parses the remaining
// argument vector into a pipeline description.
func ParseArgs(args []string) (*pipeline.Description, error) {
	expanded, err := pipeline.ExpandToken(args)
	if err != nil {
		return nil, err
	}
	return pipeline.Parse(expanded)
}

// RunPipeline parses args, checks desc against ceiling, executes it, and
// writes a best-effort audit log entry. ceiling is TierWrite for a
// CLI-submitted pipeline (a local user already has a shell) and the
// configured MCP tier ceiling for an MCP-submitted one.
func RunPipeline(ctx context.Context, args []string, ceiling policy.Tier, logger *audit.Logger, clip clipboard.Provider, stdin io.Reader, stdout, stderr io.Writer) int {
	desc, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "rp: %v\n", err)
		return rperr.CodeOf(err)
	}

	if err := policy.Check(desc, ceiling); err != nil {
		fmt.Fprintf(stderr, "rp: %v\n", err)
		return rperr.CodeOptionsParse
	}

	if desc.Options.DryRun {
		fmt.Fprintln(stdout, pipeline.Render(desc))
		return rperr.CodeSuccess
	}

	start := time.Now()
	result, runErr := driver.Execute(ctx, desc, clip, stdin, stdout, stderr)
	duration := time.Since(start)

	if desc.Options.Verbose {
		fmt.Fprintf(stderr, "# %s\n", pipeline.Render(desc))
		fmt.Fprintf(stderr, "# records in=%d out=%d duration=%s\n", result.RecordsIn, result.RecordsOut, duration)
	}

	exitCode, errMsg := resolveError(runErr, stderr)
	logAudit(logger, desc, result, exitCode, errMsg, duration)

	return exitCode
}

// resolveError extracts an exit code from err and reports it on stderr.
func resolveError(err error, stderr io.Writer) (exitCode int, errMsg string) {
	if err == nil {
		return rperr.CodeSuccess, ""
	}
	fmt.Fprintf(stderr, "rp: %v\n", err)
	return rperr.CodeOf(err), err.Error()
}

func logAudit(logger *audit.Logger, desc *pipeline.Description, result driver.Result, exitCode int, errMsg string, duration time.Duration) {
	if logger == nil {
		return
	}
	cwd, _ := os.Getwd()
	// Best-effort audit logging — don't fail the command if audit fails.
	_ = logger.Log(pipeline.Render(desc), result.RecordsIn, result.RecordsOut, exitCode, errMsg, duration, cwd)
}
