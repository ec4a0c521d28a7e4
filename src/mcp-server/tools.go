// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names.
const (
	toolRenderCertTree    = "render_cert_tree"
	toolExtractValidCerts = "extract_valid_certs"
)

// createTools creates and returns all MCP tool definitions with their handlers.
//
// Returns:
//   - A slice of ToolDefinition for tools without config dependencies
//   - A slice of ToolDefinitionWithConfig for tools that read tool defaults from the server configuration
//
// The function defines the following tools:
//   - render_cert_tree: Renders the certificate hierarchy of a PEM bundle
//   - extract_valid_certs: Returns the certificates of a PEM bundle that are currently valid
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool(toolExtractValidCerts,
				mcp.WithDescription("Return the certificates of a PEM bundle that are currently valid, verbatim and in tree order"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("PEM bundle file path or base64-encoded PEM bundle"),
				),
			),
			Handler: handleExtractValidCerts,
			Role:    "validExtractor",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool(toolRenderCertTree,
				mcp.WithDescription("Render the certificate hierarchy of a PEM bundle, marking missing issuers and expired or expiring certificates"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("PEM bundle file path or base64-encoded PEM bundle"),
				),
				mcp.WithBoolean("show_position",
					mcp.Description("Annotate each certificate with its position in the bundle (default from config)"),
				),
				mcp.WithBoolean("show_expiry",
					mcp.Description("Annotate valid certificates with their expiry date (default from config)"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'text', 'table', or 'json' (default from config, usually text)"),
					mcp.Enum(FormatText, FormatTable, FormatJSON),
				),
				mcp.WithNumber("warn_days",
					mcp.Description("Days before expiry at which a certificate is flagged as going to expire (default from config, usually 30)"),
					mcp.Min(1),
				),
			),
			Handler: handleRenderCertTree,
			Role:    "treeRenderer",
		},
	}

	return tools, toolsWithConfig
}
