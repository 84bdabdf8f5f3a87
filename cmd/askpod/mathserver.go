package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/askpod/askpod"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

type mathArgs struct {
	A float64 `json:"a" jsonschema_description:"First operand"`
	B float64 `json:"b" jsonschema_description:"Second operand"`
}

var mathServerCmd = &cobra.Command{
	Use:   "math-server",
	Short: "Run the demo arithmetic tool server over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Stdout carries JSON-RPC; anything else must go to stderr.
		log.SetOutput(os.Stderr)

		schema, err := json.Marshal(askpod.GenerateSchema[mathArgs]())
		if err != nil {
			return fmt.Errorf("building tool schema: %w", err)
		}

		s := server.NewMCPServer("askpod-math", askpod.Version,
			server.WithToolCapabilities(false),
		)
		s.AddTool(mcp.NewToolWithRawSchema("add", "Add two numbers", schema), handleAdd)
		s.AddTool(mcp.NewToolWithRawSchema("multiply", "Multiply two numbers", schema), handleMultiply)

		return server.ServeStdio(s)
	},
}

func handleAdd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, err := operands(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatNumber(a + b)), nil
}

func handleMultiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, b, err := operands(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatNumber(a * b)), nil
}

func operands(request mcp.CallToolRequest) (float64, float64, error) {
	a, err := request.RequireFloat("a")
	if err != nil {
		return 0, 0, err
	}
	b, err := request.RequireFloat("b")
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func init() {
	rootCmd.AddCommand(mathServerCmd)
}
