// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for inspecting PEM certificate bundles.
//
// It exposes two tools over stdio:
//   - render_cert_tree: the signing hierarchy of a bundle as an indented tree,
//     a markdown table or JSON, with missing issuers and expiry annotated
//   - extract_valid_certs: the certificates of a bundle that are currently valid
//
// The server is assembled with [ServerBuilder] and fronted by a Cobra command
// built by [CLIFramework]. Configuration is read from JSON or YAML and validated
// against an embedded JSON schema before use.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
