// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for pem-cert-tree.
//
// It implements a Cobra-based command that reads a PEM bundle, reconstructs the
// signing hierarchy of its certificates and prints it as an indented tree, a
// markdown table or JSON. With --remove_expired the certificates that are still
// valid are re-emitted byte for byte on stderr (or to --output), so the command
// can be used to clean a bundle:
//
//	pem-cert-tree -r bundle.pem 2> cleaned.pem
//
// Errors are returned to the caller instead of terminating the process; the
// entry point in cmd/pem-cert-tree decides the exit code.
package cli
