// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

// rootSet is the set of nodes currently believed to be roots, keyed by subject.
// It remembers the order in which roots were registered so that [Build] returns
// the forest in a stable order.
type rootSet struct {
	byName map[string]*Node
	order  []*Node
}

func newRootSet() *rootSet {
	return &rootSet{byName: make(map[string]*Node)}
}

func (s *rootSet) get(name string) (*Node, bool) {
	n, ok := s.byName[name]
	return n, ok
}

func (s *rootSet) put(name string, n *Node) {
	if old, ok := s.byName[name]; ok {
		if old == n {
			return
		}
		s.remove(name)
	}
	s.byName[name] = n
	s.order = append(s.order, n)
}

func (s *rootSet) remove(name string) {
	n, ok := s.byName[name]
	if !ok {
		return
	}
	delete(s.byName, name)
	for i, r := range s.order {
		if r == n {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// nodes returns the surviving roots in registration order.
func (s *rootSet) nodes() []*Node {
	if len(s.order) == 0 {
		return nil
	}
	forest := make([]*Node, 0, len(s.order))
	for _, n := range s.order {
		if s.byName[n.Subject] == n {
			forest = append(forest, n)
		}
	}
	return forest
}

// Build reconstructs the signing forest of a bundle from its decoded records.
//
// Records are linked purely by string equality of issuer and subject common names;
// no signature is checked. The records are consumed in bundle order:
//
//  1. A record whose subject is a pending placeholder root takes over that placeholder
//     in place, keeping the children already attached to it, and leaves the root set.
//  2. A self-signed record becomes a root.
//  3. Any other record is attached to its issuer, looked up first among the roots and
//     then among every real certificate seen so far.
//  4. When the issuer is unknown, a placeholder root is synthesized for it and the record
//     is attached to that placeholder.
//
// Two certificates sharing a common name are treated as the same identity: the later one
// replaces the earlier in the issuer lookup.
//
// Certificates whose issuers form a cycle (A issued by B, B issued by A) never reach a
// root and are absent from the returned forest.
//
// Parameters:
//   - records: Decoded certificates in bundle order
//
// Returns:
//   - []*Node: Roots of the forest, in the order they became roots (nil for no records)
func Build(records []Record) []*Node {
	roots := newRootSet()
	all := make(map[string]*Node, len(records))

	for _, r := range records {
		node := newNode(r)

		if pending, ok := roots.get(r.Subject); ok {
			pending.resolve(r)
			roots.remove(r.Subject)
			node = pending
		}

		all[node.Subject] = node

		if node.IsSelfSigned() {
			roots.put(node.Subject, node)
			continue
		}

		if parent, ok := roots.get(node.Issuer); ok {
			parent.AddChild(node)
			continue
		}

		if parent, ok := all[node.Issuer]; ok {
			parent.AddChild(node)
			continue
		}

		missing := newPlaceholder(node.Issuer)
		roots.put(missing.Subject, missing)
		missing.AddChild(node)
	}

	return roots.nodes()
}
