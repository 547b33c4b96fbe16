// Package mcpserver runs rp as a Model Context Protocol server over
// stdio, exposing a single tool that accepts a token string and runs it
// as a pipeline the same way -t would on the command line.
package mcpserver

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wrenfield/rp/internal/audit"
	"github.com/wrenfield/rp/internal/clipboard"
	"github.com/wrenfield/rp/internal/cli"
	"github.com/wrenfield/rp/internal/policy"
)

const version = "0.1.0"

// Serve runs the MCP server over stdio until the client disconnects.
// Every pipeline submitted through run_pipeline is checked against
// ceiling before it runs — unlike a CLI invocation, the caller is an
// agent, not a local user with an equivalent shell.
func Serve(ceiling policy.Tier, logger *audit.Logger, clip clipboard.Provider) error {
	s := server.NewMCPServer("rp", version)

	tool := mcp.NewTool("run_pipeline",
		mcp.WithDescription("Run an rp text-processing pipeline and return its stdout. "+
			"args is the same quoted token string rp -t would take: a source, zero or "+
			"more operators, and a sink, each introduced by a colon-prefixed command."),
		mcp.WithString("args",
			mcp.Required(),
			mcp.Description("the pipeline, e.g. \":of a b c :upper :to out\""),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return runPipelineTool(ctx, req, ceiling, logger, clip)
	})

	return server.ServeStdio(s)
}

func runPipelineTool(ctx context.Context, req mcp.CallToolRequest, ceiling policy.Tier, logger *audit.Logger, clip clipboard.Provider) (*mcp.CallToolResult, error) {
	tokenStr, err := req.RequireString("args")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := cli.RunPipeline(ctx, []string{"-t", tokenStr}, ceiling, logger, clip, bytes.NewReader(nil), &stdout, &stderr)
	if code != 0 {
		msg := stderr.String()
		if msg == "" {
			msg = fmt.Sprintf("pipeline exited with code %d", code)
		}
		return mcp.NewToolResultError(msg), nil
	}

	return mcp.NewToolResultText(stdout.String()), nil
}
