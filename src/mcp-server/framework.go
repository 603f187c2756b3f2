// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-path-validator/src/config"
	"github.com/H0llyW00dzZ/x509-path-validator/src/mcp-server/templates"
)

// serverName is the name reported to MCP clients.
const serverName = "X.509 Path Validator"

// ErrVersionRequired is returned by [ServerBuilder.Build] when no version was set.
var ErrVersionRequired = errors.New("server version is required")

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig defines tool handlers that require access to the
// shared configuration, such as the validation time or bundle order.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error)

// ToolDefinition holds a tool definition and its handler.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Short role name used by the instructions template
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig holds a tool definition that requires configuration access.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
//
// This struct is used internally by ServerBuilder and should not be instantiated directly.
type ServerDependencies struct {
	Config          *config.Config
	Embed           templates.EmbedFS
	Version         string
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
	Instructions    string
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("1.0.0").
//	    WithDefaultTools().
//	    WithDefaultResources().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct {
	deps             ServerDependencies
	defaultResources bool
}

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the shared configuration. A nil config is replaced by
// [config.Default] at build time.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithEmbed sets the filesystem holding the instructions template and
// documentation resources. Defaults to [templates.MagicEmbed].
func (b *ServerBuilder) WithEmbed(fs templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = fs
	return b
}

// WithVersion sets the server version string reported to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithTools adds tool definitions that don't require configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions whose handlers receive the configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds resources to the MCP server.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithInstructions sets the instructions sent to clients on initialization.
// When unset, Build renders them from the embedded template and the
// registered tools.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithDefaultTools adds the validation, period and inspection tools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools()
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, toolsWithConfig...)
	return b
}

// WithDefaultResources adds the version resource and one docs:// resource per
// embedded document.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	b.defaultResources = true
	return b
}

// Build creates the [MCP] server with all configured dependencies.
//
// Returns:
//   - *server.MCPServer: The configured server
//   - error: [ErrVersionRequired], or an error rendering the instructions or
//     reading the documentation
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if b.deps.Version == "" {
		return nil, ErrVersionRequired
	}
	if b.deps.Config == nil {
		b.deps.Config = config.Default()
	}
	if b.deps.Embed == nil {
		b.deps.Embed = templates.MagicEmbed
	}

	instructions := b.deps.Instructions
	if instructions == "" {
		var err error
		instructions, err = loadInstructions(b.deps.Embed, b.deps.Tools, b.deps.ToolsWithConfig)
		if err != nil {
			return nil, err
		}
	}

	s := server.NewMCPServer(
		serverName,
		b.deps.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions(instructions),
	)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}

	cfg := b.deps.Config
	for _, tool := range b.deps.ToolsWithConfig {
		handler := tool.Handler
		s.AddTool(tool.Tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handler(ctx, request, cfg)
		})
	}

	resources := b.deps.Resources
	if b.defaultResources {
		defaults, err := createResources(b.deps.Embed, b.deps.Version)
		if err != nil {
			return nil, err
		}
		resources = append(defaults, resources...)
	}
	for _, resource := range resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	return s, nil
}
