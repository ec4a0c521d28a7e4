// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import "time"

// UnknownIssuer is the issuer recorded on synthesized placeholder nodes.
const UnknownIssuer = "Unknown issuer"

// Record holds the decoded fields of a single certificate in a bundle.
//
// Subject and Issuer are common names, or empty when the certificate has none.
// A zero Expiry means the expiry is unknown.
type Record struct {
	Subject  string    // Subject common name
	Issuer   string    // Issuer common name
	Expiry   time.Time // NotAfter of the certificate
	Position int       // 1-based index of the certificate in the bundle
	Raw      string    // Verbatim PEM block text
}

// Node is a real or placeholder certificate in the reconstructed forest.
//
// A placeholder stands in for an issuer that some certificate references but
// that never appears as a subject in the bundle. Placeholders have no Raw text,
// no Expiry and a zero Position.
type Node struct {
	Subject     string
	Issuer      string
	Raw         string
	Expiry      time.Time
	Position    int
	Placeholder bool
	Children    []*Node
}

// newNode creates a real node from a decoded record.
func newNode(r Record) *Node {
	return &Node{
		Subject:  r.Subject,
		Issuer:   r.Issuer,
		Raw:      r.Raw,
		Expiry:   r.Expiry,
		Position: r.Position,
	}
}

// newPlaceholder creates a placeholder node standing in for the named issuer.
func newPlaceholder(subject string) *Node {
	return &Node{
		Subject:     subject,
		Issuer:      UnknownIssuer,
		Placeholder: true,
	}
}

// resolve overwrites a placeholder with real certificate data.
// Children already attached to the node are kept.
func (n *Node) resolve(r Record) {
	n.Subject = r.Subject
	n.Issuer = r.Issuer
	n.Raw = r.Raw
	n.Expiry = r.Expiry
	n.Position = r.Position
	n.Placeholder = false
}

// AddChild appends child to the node's children.
func (n *Node) AddChild(child *Node) { n.Children = append(n.Children, child) }

// IsSelfSigned reports whether the node names itself as its issuer.
func (n *Node) IsSelfSigned() bool { return n.Subject == n.Issuer }

// HasExpiry reports whether the expiry of the node is known.
func (n *Node) HasExpiry() bool { return !n.Expiry.IsZero() }
