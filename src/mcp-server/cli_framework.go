// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/pem-cert-tree/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/pem-cert-tree/src/logger"
	"github.com/H0llyW00dzZ/pem-cert-tree/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// cliHelpData holds the data used to populate the CLI help template.
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
}

// CLIFramework integrates Cobra CLI with MCP server capabilities.
//
// Key features:
//   - Dynamic executable naming based on the actual binary path
//   - [Gopls-style] --instructions flag printing the server instructions
//   - Configuration file support via --config flag or MCP_PEM_TREE_CONFIG_FILE environment variable
//   - MCP server startup over stdio when no arguments are provided
//
// [Gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile string
	deps       ServerDependencies
	stderr     io.Writer
}

// NewCLIFramework creates a new CLI framework instance with MCP server integration.
//
// Parameters:
//   - configFile: Default configuration file path; empty falls back to the environment variable
//   - deps: Server dependencies (embed, version, tools, resources, prompts, instructions)
//
// Configuration loading is deferred until the server starts so that --config can override it.
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	return &CLIFramework{
		configFile: configFile,
		deps:       deps,
		stderr:     os.Stderr,
	}
}

// BuildRootCommand creates the root Cobra command.
//
// Command behavior:
//   - With --instructions: Prints the server instructions and exits
//   - Without arguments: Starts the MCP server on the command's stdin and stdout
//   - With arguments: Returns an error
//
// Returns:
//   - *cobra.Command: Root command, or an error when the embedded help template is unusable
func (cf *CLIFramework) BuildRootCommand() (*cobra.Command, error) {
	if cf.deps.Embed == nil {
		return nil, errors.New("mcpserver: embed filesystem not initialized")
	}

	exeName := posix.GetExecutableName()

	var showInstructions bool
	rootCmd := &cobra.Command{
		Use:           exeName,
		Short:         "PEM certificate tree MCP server",
		Version:       cf.deps.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showInstructions {
				_, err := io.WriteString(cmd.OutOrStdout(), cf.deps.Instructions)
				return err
			}
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %s for %q", strings.Join(args, " "), exeName)
			}
			return cf.startMCPServer(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&showInstructions, "instructions", false, "print usage workflows for the certificate tree tools")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to MCP server configuration file (JSON or YAML)")

	longDesc, examples, err := cf.loadCLIHelp(cliHelpData{
		ExeName:              exeName,
		InstructionsFlagName: "--" + rootCmd.PersistentFlags().Lookup("instructions").Name,
		ConfigFlagName:       "--" + rootCmd.PersistentFlags().Lookup("config").Name,
	})
	if err != nil {
		return nil, err
	}
	rootCmd.Long = longDesc
	rootCmd.Example = examples

	return rootCmd, nil
}

// loadCLIHelp executes the embedded CLI help template and splits it at the
// "## Examples" heading into the Long description and the Examples section.
func (cf *CLIFramework) loadCLIHelp(data cliHelpData) (longDesc, examples string, err error) {
	templateBytes, err := cf.deps.Embed.ReadFile(templates.CLIHelpFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return parseTemplateResult(result.String())
}

// parseTemplateResult splits rendered help text at the line holding "## Examples".
func parseTemplateResult(templateResult string) (longDesc, examples string, err error) {
	const examplesMarker = "## Examples"

	before, after, found := strings.Cut(templateResult, examplesMarker)
	if !found {
		return "", "", fmt.Errorf("CLI help template has invalid format - missing %q section", examplesMarker)
	}

	// Drop the remainder of the marker line.
	if i := strings.IndexByte(after, '\n'); i >= 0 {
		after = after[i+1:]
	} else {
		after = ""
	}

	return strings.TrimSpace(before), strings.TrimSpace(after), nil
}

// startMCPServer loads the configuration, builds the server and serves MCP over in and out
// until ctx is cancelled or the input ends.
//
// Returns:
//   - nil: When the server stops because ctx was cancelled
//   - error: Configuration loading, server building or transport errors
func (cf *CLIFramework) startMCPServer(ctx context.Context, in io.Reader, out io.Writer) error {
	config, err := loadConfig(cf.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := cf.deps.Logger
	if log == nil {
		log = logger.NewMCPLogger(cf.stderr, !config.Log.Enabled)
	}

	mcpServer, err := NewServerBuilder().
		WithConfig(config).
		WithEmbed(cf.deps.Embed).
		WithVersion(cf.deps.Version).
		WithLogger(log).
		WithTools(cf.deps.Tools...).
		WithToolsWithConfig(cf.deps.ToolsWithConfig...).
		WithResources(cf.deps.Resources...).
		WithPrompts(cf.deps.Prompts...).
		WithInstructions(cf.deps.Instructions).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	log.Printf("%s MCP server %s started", serverName, cf.deps.Version)

	stdioServer := server.NewStdioServer(mcpServer)
	if err = stdioServer.Listen(ctx, in, out); err != nil && errors.Is(err, context.Canceled) {
		log.Println("MCP server stopped")
		return nil
	}

	return err
}
