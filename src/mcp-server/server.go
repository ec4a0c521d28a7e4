// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/pem-cert-tree/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/pem-cert-tree/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the version announced by the MCP server.
func GetVersion() string {
	return appVersion
}

// Run builds the MCP server command and executes it with os.Args.
//
// The server renders certificate trees and extracts valid certificates from PEM
// bundles over stdio. SIGINT and SIGTERM stop it gracefully.
//
// Parameters:
//   - version: Version string announced to clients and printed by --version
//
// Returns:
//   - error: Configuration, template or transport error; nil on graceful shutdown
func Run(version string) error {
	appVersion = version

	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(templates.MagicEmbed, tools, toolsWithConfig)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	framework := NewCLIFramework("", ServerDependencies{
		Embed:           templates.MagicEmbed,
		Version:         version,
		Tools:           tools,
		ToolsWithConfig: toolsWithConfig,
		Resources:       createResources(),
		Prompts:         createPrompts(),
		Instructions:    instructions,
	})

	rootCmd, err := framework.BuildRootCommand()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
