// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// FallbackName is returned when argv[0] carries no usable name.
const FallbackName = "pem-cert-tree"

// GetExecutableName returns the name the current process was invoked as,
// without directory and without a trailing ".exe".
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return ExecutableName(os.Args[0])
}

// ExecutableName reduces an argv[0] value to a clean command name.
// Both '/' and '\' are treated as separators regardless of the host OS.
func ExecutableName(arg0 string) string {
	parts := strings.FieldsFunc(arg0, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return FallbackName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" || name == "." {
		return FallbackName
	}
	return name
}
