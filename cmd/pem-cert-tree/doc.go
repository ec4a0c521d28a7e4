// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// pem-cert-tree is a command-line tool for viewing the certificate hierarchy
// stored in a PEM bundle.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/pem-cert-tree/cmd/pem-cert-tree@latest
//
// # Usage
//
//	pem-cert-tree FILE [FLAGS]
//
// # Flags
//
//	-p, --position        Show position of each cert in the file
//	-e, --expiry          Show expiry date of valid certs
//	-r, --remove_expired  Output the certs that are still valid to stderr
//	-o, --output          Write the certs kept by -r to a file instead of stderr
//	    --table           Display the tree as a markdown table
//	    --json            Display the tree as JSON
//	    --warn-days       Days before expiry at which a cert is flagged (default: 30)
//
// # Examples
//
// View a bundle with positions and expiry dates:
//
//	pem-cert-tree -p -e ca-bundle.pem
//
//	━ Root CA                   [3] [valid until: 2034-01-01 00:00:00]
//	    ┗━ Intermediate CA      [2] [valid until: 2029-01-01 00:00:00]
//	        ┗━ leaf.example.com [1] [EXPIRED on: 2025-05-31 00:00:00]
//
// Drop expired certificates from a bundle:
//
//	pem-cert-tree -r ca-bundle.pem 2> cleaned.pem
//
// The process exits with status 1 on error and 130 when interrupted.
package main
