// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/H0llyW00dzZ/pem-cert-tree/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/pem-cert-tree/src/internal/x509/certs"
	x509tree "github.com/H0llyW00dzZ/pem-cert-tree/src/internal/x509/tree"
	"github.com/H0llyW00dzZ/pem-cert-tree/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
)

// noCertsMessage is returned when a bundle holds no certificate blocks.
const noCertsMessage = "No certs found in the pem file"

// errUnreadableInput is returned when the certificate argument is neither a readable file nor base64.
var errUnreadableInput = errors.New("not a valid file path or base64 data")

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string // Maps tool roles to tool names for template use
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the embedded instructions template with the given tools.
//
// Returns:
//   - string: The rendered instruction text describing server capabilities and tool usage
//   - error: If the embedded file cannot be read or template parsing fails
func loadInstructions(embed templates.EmbedFS, tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig) (string, error) {
	templateBytes, err := embed.ReadFile(templates.InstructionsFile)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{ToolRoles: make(map[string]string)}
	add := func(tool mcp.Tool, role string) {
		data.Tools = append(data.Tools, toolInfo{Name: tool.Name, Description: tool.Description})
		if role != "" {
			data.ToolRoles[role] = tool.Name
		}
	}
	for _, tool := range toolsWithConfig {
		add(tool.Tool, tool.Role)
	}
	for _, tool := range tools {
		add(tool.Tool, tool.Role)
	}

	tmpl, err := template.New("instructions").Option("missingkey=error").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}

// readCertificateInput returns the bundle bytes named by input, trying a file path first
// and base64-encoded data second.
func readCertificateInput(input string) ([]byte, error) {
	if data, err := os.ReadFile(input); err == nil {
		return data, nil
	}
	if decoded, err := base64.StdEncoding.DecodeString(input); err == nil {
		return decoded, nil
	}
	return nil, errUnreadableInput
}

// loadForest reads and decodes the bundle named by input and builds its forest.
// Decoding stops as soon as ctx is done.
// An empty forest with a nil error means the bundle holds no certificates.
func loadForest(ctx context.Context, input string) ([]*x509tree.Node, error) {
	data, err := readCertificateInput(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}

	records, err := x509certs.New().RecordsContext(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}

	return x509tree.Build(records), nil
}

// countNodes returns the number of real and placeholder nodes in the forest.
func countNodes(forest []*x509tree.Node) (present, missing int) {
	x509tree.Walk(forest, func(n *x509tree.Node, _ int, _ bool) {
		if n.Placeholder {
			missing++
		} else {
			present++
		}
	})
	return present, missing
}

// handleRenderCertTree renders the certificate hierarchy of a PEM bundle.
//
// Parameters:
//   - ctx: Context for cancellation; bounded by the configured timeout
//   - request: MCP tool call request with the bundle and rendering options
//   - config: Server configuration supplying default options
//
// Returns:
//   - The tool execution result holding the rendered tree, table or JSON document
//   - An error only for cancellation; invalid input is reported as a tool error result
func handleRenderCertTree(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	format := request.GetString("format", config.Defaults.Format)
	switch format {
	case FormatText, FormatTable, FormatJSON:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use 'text', 'table' or 'json'", format)), nil
	}

	warnDays := request.GetFloat("warn_days", float64(config.Defaults.WarnDays))
	if warnDays < 1 {
		return mcp.NewToolResultError(fmt.Sprintf("warn_days must be at least 1, got %v", warnDays)), nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(config.Defaults.Timeout)*time.Second)
	defer cancel()

	forest, err := loadForest(ctx, certInput)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s: %w", toolRenderCertTree, ctxErr)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(forest) == 0 {
		return mcp.NewToolResultText(noCertsMessage), nil
	}

	opts := x509tree.Options{
		Now:          time.Now(),
		ShowPosition: request.GetBool("show_position", config.Defaults.ShowPosition),
		ShowExpiry:   request.GetBool("show_expiry", config.Defaults.ShowExpiry),
		WarnWindow:   time.Duration(warnDays * float64(24*time.Hour)),
	}

	switch format {
	case FormatJSON:
		data, err := x509tree.ToJSON(forest, opts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode tree: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	case FormatTable:
		return mcp.NewToolResultText(x509tree.RenderTable(forest, opts)), nil
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	present, missing := countNodes(forest)
	fmt.Fprintf(buf, "Certificate tree: %d certificate(s), %d missing issuer(s)\n\n", present, missing)
	if err := x509tree.WriteTree(buf, forest, opts); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render tree: %v", err)), nil
	}

	return mcp.NewToolResultText(buf.String()), nil
}

// handleExtractValidCerts returns the currently valid certificates of a PEM bundle.
// The PEM blocks are emitted byte for byte as they appear in the input, in tree order.
func handleExtractValidCerts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	forest, err := loadForest(ctx, certInput)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s: %w", toolExtractValidCerts, ctxErr)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(forest) == 0 {
		return mcp.NewToolResultText(noCertsMessage), nil
	}

	now := time.Now()
	present, _ := countNodes(forest)
	valid := x509tree.SelectValid(forest, now)

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	fmt.Fprintf(buf, "Kept %d of %d certificate(s)\n\n", len(valid), present)
	if err := x509tree.WriteValid(buf, forest, now); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to write certificates: %v", err)), nil
	}

	return mcp.NewToolResultText(buf.String()), nil
}
