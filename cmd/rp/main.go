package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/wrenfield/rp/internal/audit"
	"github.com/wrenfield/rp/internal/cli"
	"github.com/wrenfield/rp/internal/clipboard"
	"github.com/wrenfield/rp/internal/config"
	"github.com/wrenfield/rp/internal/mcpserver"
	"github.com/wrenfield/rp/internal/policy"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "-V", "--version":
			fmt.Printf("rp %s\n", version)
			return 0
		case "-h", "--help":
			topic := ""
			if len(args) > 1 {
				topic = args[1]
			}
			return cli.RunHelp(os.Stdout, topic)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rp: config: %v\n", err)
		return 1
	}

	auditPath := cfg.Audit.Path
	if i := indexOf(args, "--audit-log"); i >= 0 && i+1 < len(args) {
		auditPath = args[i+1]
		args = append(args[:i], args[i+2:]...)
	}

	if len(args) > 0 && args[0] == "--audit" {
		return cli.RunAudit(os.Stdout, auditPath, args[1:])
	}

	logger, err := audit.NewLogger(auditPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rp: audit: %v\n", err)
		logger = nil
	}

	clip := &clipboard.System{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(args) > 0 && args[0] == "--mcp-serve" {
		if err := mcpserver.Serve(cfg.TierCeiling(), logger, clip); err != nil {
			fmt.Fprintf(os.Stderr, "rp: mcp-serve: %v\n", err)
			return 1
		}
		return 0
	}

	return cli.RunPipeline(ctx, args, policy.TierWrite, logger, clip, os.Stdin, os.Stdout, os.Stderr)
}

func indexOf(args []string, s string) int {
	for i, a := range args {
		if a == s {
			return i
		}
	}
	return -1
}
