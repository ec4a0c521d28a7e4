// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

// VisitFunc is called for every node of a pre-order walk.
// level is 0 for roots; last reports whether the node is the final child of its parent.
type VisitFunc func(n *Node, level int, last bool)

// Walk visits every node of the forest in pre-order, roots in forest order and
// children in insertion order.
//
// A node that reappears on its own ancestry path is visited but not descended into
// again, so an issuer cycle cannot recurse forever.
func Walk(forest []*Node, visit VisitFunc) {
	path := make(map[*Node]bool)
	for _, root := range forest {
		walk(root, 0, false, path, visit)
	}
}

func walk(n *Node, level int, last bool, path map[*Node]bool, visit VisitFunc) {
	visit(n, level, last)
	if path[n] {
		return
	}

	path[n] = true
	for i, child := range n.Children {
		walk(child, level+1, i == len(n.Children)-1, path, visit)
	}
	delete(path, n)
}
