// Backlog MCP Server
//
// Exposes a Backlog issue-tracking space to MCP hosts (Claude Desktop,
// editors, CLI agents) as tools, resources, and prompts over stdio.
//
// Usage:
//
//	backlog-mcp serve    # Start MCP server (stdio transport)
//
// Configuration (environment, or a .env file in the working directory):
//
//	BACKLOG_API_KEY     API key for the space (required)
//	BACKLOG_SPACE_ID    Space subdomain, e.g. "acme" (required)
//	BACKLOG_DOMAIN      Service domain, defaults to backlog.jp
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kinosai/backlog-mcp/internal/config"
	backlogserver "github.com/kinosai/backlog-mcp/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("backlog-mcp v%s\n", backlogserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	s := backlogserver.New(cfg)

	// Graceful shutdown on interrupt; the stdio server also exits on
	// its own when the host closes the pipe.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		os.Exit(0)
	}()

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `backlog-mcp v%s — Backlog MCP Server

Usage:
  backlog-mcp serve      Start the MCP server (stdio transport)
  backlog-mcp version    Print the version

Configuration:
  Set BACKLOG_API_KEY and BACKLOG_SPACE_ID in the environment (or a
  .env file), then add to your MCP host config:

  {
    "mcpServers": {
      "backlog": {
        "command": "backlog-mcp",
        "args": ["serve"],
        "env": {
          "BACKLOG_API_KEY": "...",
          "BACKLOG_SPACE_ID": "your-space"
        }
      }
    }
  }
`, backlogserver.Version)
}
