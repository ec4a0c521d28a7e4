// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	"encoding/json"
	"time"
)

// NodeView is the JSON shape of a node and its descendants.
type NodeView struct {
	Subject     string       `json:"subject"`
	Issuer      string       `json:"issuer"`
	Position    int          `json:"position,omitempty"`
	Placeholder bool         `json:"placeholder"`
	Expiry      *time.Time   `json:"expiry,omitempty"`
	Status      ExpiryStatus `json:"status"`
	Children    []NodeView   `json:"children,omitempty"`
}

// ForestView is the JSON document produced by [ToJSON].
type ForestView struct {
	Timestamp string     `json:"timestamp"`
	Total     int        `json:"total"`
	Missing   int        `json:"missing"`
	Roots     []NodeView `json:"roots"`
}

// View converts n and its descendants into their JSON shape.
func View(n *Node, opts Options) NodeView {
	return view(n, opts, make(map[*Node]bool))
}

func view(n *Node, opts Options, path map[*Node]bool) NodeView {
	v := NodeView{
		Subject:     n.Subject,
		Issuer:      n.Issuer,
		Position:    n.Position,
		Placeholder: n.Placeholder,
		Status:      Status(n, opts),
	}
	if n.HasExpiry() {
		expiry := n.Expiry.UTC()
		v.Expiry = &expiry
	}
	if path[n] {
		return v
	}

	path[n] = true
	for _, child := range n.Children {
		v.Children = append(v.Children, view(child, opts, path))
	}
	delete(path, n)
	return v
}

// ToJSON converts the forest to an indented JSON document for external tools.
//
// Returns:
//   - []byte: JSON representation of the forest
//   - error: Error if JSON marshaling fails
func ToJSON(forest []*Node, opts Options) ([]byte, error) {
	data := ForestView{
		Timestamp: opts.Now.UTC().Format(time.RFC3339),
		Roots:     make([]NodeView, 0, len(forest)),
	}

	Walk(forest, func(n *Node, _ int, _ bool) {
		data.Total++
		if n.Placeholder {
			data.Missing++
		}
	})

	for _, root := range forest {
		data.Roots = append(data.Roots, View(root, opts))
	}

	return json.MarshalIndent(data, "", "  ")
}
