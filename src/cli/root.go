// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/pem-cert-tree/src/internal/helper/posix"
	x509certs "github.com/H0llyW00dzZ/pem-cert-tree/src/internal/x509/certs"
	x509tree "github.com/H0llyW00dzZ/pem-cert-tree/src/internal/x509/tree"
	"github.com/H0llyW00dzZ/pem-cert-tree/src/logger"
	"github.com/spf13/cobra"
)

var (
	// ErrNotPEMFile is returned when the input file name does not end in "pem".
	ErrNotPEMFile = errors.New("the cert must be in pem format")

	// ErrInvalidWarnDays is returned when --warn-days is below one day.
	ErrInvalidWarnDays = errors.New("warn-days must be at least 1")
)

// NoCertsMessage is printed when the bundle holds no certificate blocks.
const NoCertsMessage = "No certs found in the pem file"

// options holds the parsed command-line flags of one invocation.
type options struct {
	position      bool
	expiry        bool
	removeExpired bool
	table         bool
	json          bool
	warnDays      int
	output        string
}

// Execute runs the root command with os.Args, returning any error to the caller.
// Progress and diagnostics go through log; the tree goes to stdout.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	cmd := NewCommand(version, log, time.Now)
	return cmd.ExecuteContext(ctx)
}

// NewCommand builds the root command. clock supplies the instant used for
// expiry classification and valid-certificate selection.
func NewCommand(version string, log logger.Logger, clock func() time.Time) *cobra.Command {
	opts := &options{}
	name := posix.GetExecutableName()

	cmd := &cobra.Command{
		Use:   name + " FILE",
		Short: "View tree of certificates from pem file",
		Long: `Reads a PEM bundle and prints the signing hierarchy of the certificates it contains.
Issuers referenced but absent from the bundle are shown as placeholders.`,
		Example: fmt.Sprintf(`  %[1]s bundle.pem
  %[1]s -p -e bundle.pem
  %[1]s -r bundle.pem 2> valid.pem
  %[1]s --table bundle.pem`, name),
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts, clock(), log)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.position, "position", "p", false, "show position of cert in file")
	flags.BoolVarP(&opts.expiry, "expiry", "e", false, "show expiry date")
	flags.BoolVarP(&opts.removeExpired, "remove_expired", "r", false, "remove expired certs and output the good ones to stderr")
	flags.StringVarP(&opts.output, "output", "o", "", "write the certs kept by --remove_expired to OUTPUT_FILE instead of stderr")
	flags.BoolVar(&opts.table, "table", false, "display the tree as a markdown table")
	flags.BoolVar(&opts.json, "json", false, "display the tree as JSON")
	flags.IntVar(&opts.warnDays, "warn-days", int(x509tree.DefaultWarnWindow/(24*time.Hour)), "days before expiry at which a cert is reported as going to expire")
	cmd.MarkFlagsMutuallyExclusive("table", "json")

	return cmd
}

// run reads the bundle, builds the forest and writes the selected views.
func run(cmd *cobra.Command, file string, opts *options, now time.Time, log logger.Logger) error {
	if !strings.HasSuffix(file, "pem") {
		return fmt.Errorf("%w: %s", ErrNotPEMFile, file)
	}
	if opts.warnDays < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWarnDays, opts.warnDays)
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	records, err := x509certs.New().Records(data)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}

	stdout := cmd.OutOrStdout()
	if len(records) == 0 {
		_, err = fmt.Fprintln(stdout, NoCertsMessage)
		return err
	}

	forest := x509tree.Build(records)

	treeOpts := x509tree.Options{
		Now:          now,
		ShowPosition: opts.position,
		ShowExpiry:   opts.expiry,
		WarnWindow:   time.Duration(opts.warnDays) * 24 * time.Hour,
	}
	if err = writeView(stdout, forest, treeOpts, opts); err != nil {
		return fmt.Errorf("error writing tree: %w", err)
	}

	if opts.removeExpired {
		if err = writeValid(cmd.ErrOrStderr(), forest, now, opts.output, log); err != nil {
			return err
		}
	}

	return nil
}

// writeView writes the forest in the format selected by the flags.
func writeView(w io.Writer, forest []*x509tree.Node, treeOpts x509tree.Options, opts *options) error {
	switch {
	case opts.table:
		_, err := io.WriteString(w, x509tree.RenderTable(forest, treeOpts))
		return err
	case opts.json:
		data, err := x509tree.ToJSON(forest, treeOpts)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return x509tree.WriteTree(w, forest, treeOpts)
	}
}

// writeValid emits the currently valid certificates to stderr or to the output file.
func writeValid(stderr io.Writer, forest []*x509tree.Node, now time.Time, output string, log logger.Logger) error {
	if output == "" {
		if err := x509tree.WriteValid(stderr, forest, now); err != nil {
			return fmt.Errorf("error writing valid certs: %w", err)
		}
		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err = x509tree.WriteValid(f, forest, now); err != nil {
		f.Close()
		return fmt.Errorf("error writing valid certs: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("error closing output file: %w", err)
	}

	log.Printf("Wrote %d valid certificate(s) to %s", len(x509tree.SelectValid(forest, now)), output)
	return nil
}
