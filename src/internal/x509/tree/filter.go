// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	"io"
	"time"

	"github.com/H0llyW00dzZ/pem-cert-tree/src/internal/helper/gc"
)

// IsCurrentlyValid reports whether n is a real certificate that has not expired at now.
func IsCurrentlyValid(n *Node, now time.Time) bool {
	return !n.Placeholder && n.HasExpiry() && now.Before(n.Expiry)
}

// SelectValid returns the raw PEM text of every certificate still valid at now,
// in the same pre-order as [Render].
//
// The expiry of a node never prunes its descendants: a valid certificate below an
// expired or missing issuer is still selected.
func SelectValid(forest []*Node, now time.Time) []string {
	var out []string
	Walk(forest, func(n *Node, _ int, _ bool) {
		if IsCurrentlyValid(n, now) {
			out = append(out, n.Raw)
		}
	})
	return out
}

// WriteValid writes the concatenated PEM text selected by [SelectValid] to w.
// Each block is written exactly as it appeared in the bundle.
func WriteValid(w io.Writer, forest []*Node, now time.Time) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, raw := range SelectValid(forest, now) {
		buf.WriteString(raw)
	}

	_, err := buf.WriteTo(w)
	return err
}
