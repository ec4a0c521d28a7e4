// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

const (
	beginMarker = "-----BEGIN CERTIFICATE-----"
	endMarker   = "-----END CERTIFICATE-----"
)

var (
	// ErrNestedBegin indicates a BEGIN marker found while a certificate block was already open.
	ErrNestedBegin = errors.New("x509certs: certificate start found but a certificate is already started")

	// ErrEndWithoutBegin indicates an END marker found with no open certificate block.
	ErrEndWithoutBegin = errors.New("x509certs: certificate end found without start")

	// ErrUnterminated indicates that the bundle ended inside a certificate block.
	ErrUnterminated = errors.New("x509certs: the file is corrupted, last certificate is not terminated")
)

// Block is the verbatim text of one certificate in a PEM bundle.
type Block struct {
	Position int    // 1-based index of the block in the bundle
	Text     string // Block text from the BEGIN line to the END line, newlines included
}

// SplitPEM scans a PEM bundle line by line and returns its certificate blocks.
//
// Lines outside certificate blocks are ignored, so comments and other PEM types
// between certificates are skipped. Block text is kept byte for byte, which lets
// selected certificates be re-emitted exactly as they were read.
//
// Returns:
//   - []Block: Certificate blocks in bundle order (nil when there are none)
//   - error: [ErrNestedBegin], [ErrEndWithoutBegin] or [ErrUnterminated], wrapped with the line number
func SplitPEM(data []byte) ([]Block, error) {
	var (
		blocks  []Block
		current strings.Builder
		open    bool
		lineNo  int
	)

	r := bufio.NewReader(bytes.NewReader(data))
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lineNo++
			switch {
			case strings.Contains(line, beginMarker):
				if open {
					return nil, fmt.Errorf("line %d: %w", lineNo, ErrNestedBegin)
				}
				open = true
				current.WriteString(line)
			case strings.Contains(line, endMarker):
				if !open {
					return nil, fmt.Errorf("line %d: %w", lineNo, ErrEndWithoutBegin)
				}
				current.WriteString(line)
				blocks = append(blocks, Block{Position: len(blocks) + 1, Text: current.String()})
				current.Reset()
				open = false
			case open:
				current.WriteString(line)
			}
		}
		if err != nil {
			break
		}
	}

	if open {
		return nil, ErrUnterminated
	}

	return blocks, nil
}
