// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509tree reconstructs the signing hierarchy of an unordered [PEM] bundle.
// It provides capabilities to:
//   - Build a forest of certificate trees linked purely by subject/issuer common names.
//   - Synthesize placeholder nodes for issuers referenced but absent from the bundle.
//   - Render the forest as an indented tree with position and expiry annotations.
//   - Select the raw PEM text of every currently-valid certificate for re-emission.
//
// The package performs no I/O of its own beyond writing to a caller-supplied [io.Writer]
// and never parses certificate encodings; records are produced by the x509certs package.
// The current time is always passed in explicitly so output is deterministic.
//
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509tree
