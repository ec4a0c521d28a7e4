// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers shared by the command-line entry points.
//
// The CLI uses GetExecutableName to build its usage line, so that the help text
// shows the name the binary was actually invoked as:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName() + " FILE",
//	}
//
// Path handling accepts both separators, so a Windows-style argv[0] is reduced to
// its base name even on a [Unix-like] host:
//
//   - "/usr/local/bin/pem-cert-tree" → "pem-cert-tree"
//   - "C:\tools\pem-cert-tree.exe" → "pem-cert-tree"
//   - "" → "pem-cert-tree" (fallback)
//
// [POSIX]: https://grokipedia.com/page/POSIX
// [Unix-like]: https://grokipedia.com/page/Unix-like
package posix
