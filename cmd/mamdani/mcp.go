package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani"
	"github.com/aretw0/mamdani/pkg/adapters/mcp"
)

var (
	mcpTransport string
	mcpPort      int
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long:  `Exposes the engine as MCP tools (fuzzify, infer, evaluate, describe, validate) over stdio or SSE.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, logger, err := setup()
		if err != nil {
			return err
		}
		srv := mcp.NewServer(engine, mamdani.Version, logger)

		switch mcpTransport {
		case "stdio":
			return srv.ServeStdio()
		case "sse":
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.ServeSSE(ctx, mcpPort)
		default:
			return fmt.Errorf("unknown transport %q (use stdio or sse)", mcpTransport)
		}
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().IntVar(&mcpPort, "port", 8080, "Port for the SSE transport")
	rootCmd.AddCommand(mcpCmd)
}
