// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("bundle-audit",
				mcp.WithPromptDescription("Review a PEM bundle for missing issuers and expired certificates, then produce a cleaned bundle"),
				mcp.WithArgument("certificate_path",
					mcp.ArgumentDescription("Path to the PEM bundle or base64-encoded bundle"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("warn_days",
					mcp.ArgumentDescription("Number of days before expiry to flag a certificate (default: 30)"),
				),
			),
			Handler: handleBundleAuditPrompt,
		},
	}
}

// handleBundleAuditPrompt handles the bundle audit workflow prompt
func handleBundleAuditPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	certPath := request.Params.Arguments["certificate_path"]
	if certPath == "" {
		return nil, fmt.Errorf("certificate_path argument is required")
	}

	warnDays := request.Params.Arguments["warn_days"]
	if warnDays == "" {
		warnDays = "30"
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(fmt.Sprintf("Please audit the PEM bundle %s.", certPath)),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll audit the bundle in three steps:

1. Call %[1]s with certificate=%[3]s, show_position=true, show_expiry=true and warn_days=%[4]s to see the hierarchy.
2. Report every issuer marked (NOT PRESENT IN THIS PEM FILE), every [EXPIRED on: ...] certificate and every [going to expire on: ...] certificate, with its position.
3. Call %[2]s with certificate=%[3]s to produce a bundle holding only the certificates that are still valid.`,
				toolRenderCertTree, toolExtractValidCerts, certPath, warnDays)),
		),
	}

	return mcp.NewGetPromptResult("PEM bundle audit", messages), nil
}
