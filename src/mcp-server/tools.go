// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names.
const (
	toolValidatePath = "validate_cert_path"
	toolCheckPeriod  = "check_cert_period"
	toolInspect      = "inspect_certificate"
)

const formatDescription = "Output format: 'text', 'json', 'table' or 'tree' (default: configured output format)"

// createTools creates and returns all MCP tool definitions with their handlers.
//
// Returns:
//   - A slice of ToolDefinition for tools without config dependencies
//   - A slice of ToolDefinitionWithConfig for tools that read the validation settings
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool(toolInspect,
				mcp.WithDescription("Describe X.509 certificates: names, serial, validity, key and signature algorithms and every typed extension"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded PEM, DER or PKCS#7 data"),
				),
				mcp.WithString("format", mcp.Description(formatDescription)),
			),
			Handler: handleInspectCertificate,
			Role:    "inspector",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool(toolValidatePath,
				mcp.WithDescription("Validate an X.509 certification path (leaf plus intermediates) against a trust anchor, checking validity periods, basic constraints, key usage, name and key identifier linkage, signatures and path length"),
				mcp.WithString("anchor",
					mcp.Required(),
					mcp.Description("Trust anchor certificate: file path or base64-encoded data"),
				),
				mcp.WithString("chain",
					mcp.Required(),
					mcp.Description("Leaf and intermediate certificates: file path or base64-encoded bundle, issuer-most first and leaf last"),
				),
				mcp.WithBoolean("leaf_first",
					mcp.Description("The chain bundle lists the leaf first (default: configured validation.leafFirst)"),
				),
				mcp.WithString("at",
					mcp.Description("Validation time in RFC 3339 (default: configured validation.at or now)"),
				),
				mcp.WithString("format", mcp.Description(formatDescription)),
			),
			Handler: handleValidateCertPath,
			Role:    "pathValidator",
		},
		{
			Tool: mcp.NewTool(toolCheckPeriod,
				mcp.WithDescription("Check that every certificate in a file or bundle is inside its validity period"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded data; bundles are checked certificate by certificate"),
				),
				mcp.WithString("at",
					mcp.Description("Validation time in RFC 3339 (default: configured validation.at or now)"),
				),
				mcp.WithString("format", mcp.Description(formatDescription)),
			),
			Handler: handleCheckCertPeriod,
			Role:    "periodChecker",
		},
	}

	return tools, toolsWithConfig
}
