// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// The embedded files are the server instructions sent to MCP clients during the
// initialization handshake, the CLI help text of the server binary and the JSON
// schema every configuration file is validated against.
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/pem-cert-tree/src/mcp-server/templates"
//
//	schema, err := templates.MagicEmbed.ReadFile(templates.ConfigSchemaFile)
//	if err != nil {
//		return fmt.Errorf("failed to read config schema: %w", err)
//	}
package templates
