// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// pem-cert-tree-mcp is a Model Context Protocol server exposing PEM bundle
// tree rendering and valid-certificate extraction over stdio.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/pem-cert-tree/cmd/pem-cert-tree-mcp@latest
//
// # Usage
//
//	pem-cert-tree-mcp [--config FILE] [--instructions]
//
// Without flags the server speaks MCP on stdin and stdout. The configuration
// file (JSON or YAML) may also be given through MCP_PEM_TREE_CONFIG_FILE:
//
//	defaults:
//	  warnDays: 14
//	  timeoutSeconds: 10
//	  format: text
//	  showPosition: true
//	log:
//	  enabled: true
//
// # Tools
//
//   - render_cert_tree: render the certificate hierarchy as text, table or JSON
//   - extract_valid_certs: return the certificates that are still valid
package main
