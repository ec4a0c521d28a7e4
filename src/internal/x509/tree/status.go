// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	"fmt"
	"time"
)

// DefaultWarnWindow is how long before expiry a certificate is reported as expiring.
const DefaultWarnWindow = 30 * 24 * time.Hour

// ExpiryLayout is the layout used to print expiry timestamps.
const ExpiryLayout = "2006-01-02 15:04:05"

// ExpiryStatus classifies a node against the current time.
type ExpiryStatus string

const (
	// StatusMissing marks a placeholder node that has no certificate in the bundle.
	StatusMissing ExpiryStatus = "missing"
	// StatusUnknown marks a real node whose expiry is unknown.
	StatusUnknown ExpiryStatus = "unknown"
	// StatusExpired marks a node whose expiry lies in the past.
	StatusExpired ExpiryStatus = "expired"
	// StatusExpiring marks a node that expires within the warning window.
	StatusExpiring ExpiryStatus = "expiring"
	// StatusValid marks a node that stays valid beyond the warning window.
	StatusValid ExpiryStatus = "valid"
)

// Options controls how a forest is rendered.
type Options struct {
	Now          time.Time     // Reference time for expiry checks
	ShowPosition bool          // Annotate real nodes with their position in the bundle
	ShowExpiry   bool          // Annotate nodes that are neither expired nor expiring
	WarnWindow   time.Duration // Expiring window, DefaultWarnWindow when zero
}

func (o Options) warnWindow() time.Duration {
	if o.WarnWindow <= 0 {
		return DefaultWarnWindow
	}
	return o.WarnWindow
}

// Status classifies n against opts.Now and the warning window.
func Status(n *Node, opts Options) ExpiryStatus {
	switch {
	case n.Placeholder:
		return StatusMissing
	case !n.HasExpiry():
		return StatusUnknown
	case opts.Now.After(n.Expiry):
		return StatusExpired
	case opts.Now.Add(opts.warnWindow()).After(n.Expiry):
		return StatusExpiring
	default:
		return StatusValid
	}
}

// FormatExpiry prints an expiry timestamp in UTC.
func FormatExpiry(t time.Time) string { return t.UTC().Format(ExpiryLayout) }

// expiryNote returns the bracketed expiry annotation of n, or "" when none applies.
func expiryNote(n *Node, opts Options) string {
	if !n.HasExpiry() {
		return ""
	}

	switch Status(n, opts) {
	case StatusExpired:
		return fmt.Sprintf("[EXPIRED on: %s]", FormatExpiry(n.Expiry))
	case StatusExpiring:
		return fmt.Sprintf("[going to expire on: %s]", FormatExpiry(n.Expiry))
	case StatusValid:
		if opts.ShowExpiry {
			return fmt.Sprintf("[valid until: %s]", FormatExpiry(n.Expiry))
		}
	}
	return ""
}
