// Package askpod - mcp.go
// Child-process transport, protocol session and tool adapter for MCP servers.
package askpod

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go"
)

// ServerSpec describes how to launch a tool server child process that speaks
// MCP over its standard input/output.
type ServerSpec struct {
	Command string
	Args    []string
	Env     []string
}

// ToolServer owns the child process and the protocol session layered on top
// of its stdio streams. Initialize must complete before Tools may be called;
// Close terminates the child and closes the streams.
type ToolServer struct {
	client      *client.Client
	serverInfo  mcp.Implementation
	initialized bool
	logger      *slog.Logger
}

// ConnectStdio starts the child process described by spec and wires up the
// duplex byte stream. Launch failures are returned and never retried.
func ConnectStdio(spec ServerSpec) (*ToolServer, error) {
	c, err := client.NewStdioMCPClient(spec.Command, spec.Env, spec.Args...)
	if err != nil {
		return nil, fmt.Errorf("launching tool server %q: %w", spec.Command, err)
	}
	return &ToolServer{
		client: c,
		logger: slog.Default(),
	}, nil
}

func (ts *ToolServer) SetLogger(logger *slog.Logger) {
	ts.logger = logger
}

// Initialize performs the MCP handshake. It must complete before any
// capability query is issued.
func (ts *ToolServer) Initialize(ctx context.Context) (*mcp.InitializeResult, error) {
	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "askpod",
		Version: Version,
	}
	initRequest.Params.Capabilities = mcp.ClientCapabilities{}

	result, err := ts.client.Initialize(ctx, initRequest)
	if err != nil {
		return nil, fmt.Errorf("initializing tool server session: %w", err)
	}
	ts.initialized = true
	ts.serverInfo = result.ServerInfo
	ts.logger.Info("Tool server session initialized", "server", result.ServerInfo.Name, "version", result.ServerInfo.Version)
	return result, nil
}

// Initialized reports whether the handshake has completed.
func (ts *ToolServer) Initialized() bool {
	return ts.initialized
}

// Tools queries the server's declared tools and adapts each into the Tool
// interface the agent loop invokes. Calling it before Initialize fails with
// ErrNotInitialized rather than silently returning an empty list. A server
// declaring zero tools yields an empty, non-nil slice.
func (ts *ToolServer) Tools(ctx context.Context) ([]Tool, error) {
	if !ts.initialized {
		return nil, ErrNotInitialized
	}
	result, err := ts.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("listing tools: %w", err)
	}
	tools := make([]Tool, 0, len(result.Tools))
	for _, def := range result.Tools {
		tools = append(tools, &mcpTool{server: ts, def: def})
	}
	return tools, nil
}

// Close terminates the child process and closes its streams. Safe to defer
// right after ConnectStdio so cleanup runs on success and failure alike.
func (ts *ToolServer) Close() error {
	return ts.client.Close()
}

// mcpTool adapts one MCP tool descriptor into the agent's Tool interface.
// It holds no state of its own; Execute round-trips a call through the
// owning server's session.
type mcpTool struct {
	server *ToolServer
	def    mcp.Tool
}

var _ Tool = &mcpTool{}

func (t *mcpTool) Name() string {
	return t.def.Name
}

func (t *mcpTool) Description() string {
	return t.def.Description
}

func (t *mcpTool) StatusMessage() string {
	return fmt.Sprintf("Calling %s", t.def.Name)
}

func (t *mcpTool) OpenAI() []openai.ChatCompletionToolParam {
	return []openai.ChatCompletionToolParam{
		{
			Function: openai.FunctionDefinitionParam{
				Name:        t.def.Name,
				Description: openai.String(t.def.Description),
				Parameters:  toFunctionParameters(t.def.InputSchema),
			},
		},
	}
}

func (t *mcpTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	if !t.server.initialized {
		return "", ErrNotInitialized
	}
	request := mcp.CallToolRequest{}
	request.Params.Name = t.def.Name
	request.Params.Arguments = args

	result, err := t.server.client.CallTool(ctx, request)
	if err != nil {
		return "", fmt.Errorf("calling tool %s: %w", t.def.Name, err)
	}
	text := flattenContent(result.Content)
	if result.IsError {
		// The server rejected the call; the model may fix the arguments.
		return "", &RetryableError{Err: fmt.Errorf("tool %s: %s", t.def.Name, text)}
	}
	return text, nil
}

// toFunctionParameters converts an MCP input schema into the OpenAI function
// parameter convention. Both sides are plain JSON schema, so this is a field
// copy.
func toFunctionParameters(schema mcp.ToolInputSchema) openai.FunctionParameters {
	params := openai.FunctionParameters{"type": "object"}
	if schema.Type != "" {
		params["type"] = schema.Type
	}
	if len(schema.Properties) > 0 {
		params["properties"] = schema.Properties
	}
	if len(schema.Required) > 0 {
		params["required"] = schema.Required
	}
	return params
}

func flattenContent(contents []mcp.Content) string {
	parts := make([]string, 0, len(contents))
	for _, content := range contents {
		if text, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
