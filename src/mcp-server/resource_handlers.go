// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/pem-cert-tree/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs.
const (
	uriConfigTemplate = "config://template"
	uriConfigSchema   = "config://schema"
	uriVersion        = "info://version"
)

// createResources creates and returns all MCP resource definitions with their handlers.
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(uriConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("Example server configuration holding the built-in defaults"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(uriConfigSchema, "Configuration Schema",
				mcp.WithResourceDescription("JSON schema every configuration file is validated against"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: handleConfigSchemaResource,
		},
		{
			Resource: mcp.NewResource(uriVersion, "Server Version",
				mcp.WithResourceDescription("Server name, version and available tools"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
	}
}

// handleConfigResource provides a JSON configuration holding the built-in defaults.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(defaultConfig(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigTemplate,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleConfigSchemaResource serves the embedded configuration schema.
func handleConfigSchemaResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	schema, err := templates.MagicEmbed.ReadFile(templates.ConfigSchemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config schema: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigSchema,
			MIMEType: "application/schema+json",
			Text:     string(schema),
		},
	}, nil
}

// handleVersionResource provides server metadata including version and tool names.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tools, toolsWithConfig := createTools()

	names := make([]string, 0, len(tools)+len(toolsWithConfig))
	for _, t := range toolsWithConfig {
		names = append(names, t.Tool.Name)
	}
	for _, t := range tools {
		names = append(names, t.Tool.Name)
	}

	info := map[string]any{
		"name":    serverName,
		"version": GetVersion(),
		"tools":   names,
		"formats": []string{FormatText, FormatTable, FormatJSON},
	}

	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriVersion,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
