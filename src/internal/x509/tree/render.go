// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	"io"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/pem-cert-tree/src/internal/helper/gc"
	"github.com/mattn/go-runewidth"
)

const (
	// indentWidth is the number of spaces per tree level.
	indentWidth = 4

	rootConnector = "\u2501"       // ━
	lastConnector = "\u2517\u2501" // ┗━
	midConnector  = "\u2523\u2501" // ┣━

	// MissingMarker is appended to the label of placeholder nodes.
	MissingMarker = " (NOT PRESENT IN THIS PEM FILE)"
)

// widthCond measures label widths with box-drawing glyphs counted as one column,
// whatever the locale of the terminal.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// line is one rendered node, split into its two columns.
type line struct {
	label      string
	annotation string
}

// label builds the tree column of n.
func label(n *Node, level int, last bool) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", level*indentWidth))
	switch {
	case level == 0:
		b.WriteString(rootConnector)
	case last:
		b.WriteString(lastConnector)
	default:
		b.WriteString(midConnector)
	}
	b.WriteByte(' ')
	b.WriteString(strings.TrimSpace(n.Subject))
	if n.Placeholder {
		b.WriteString(MissingMarker)
	}
	return b.String()
}

// annotation builds the annotation column of n.
func annotation(n *Node, opts Options) string {
	parts := make([]string, 0, 2)
	if opts.ShowPosition && !n.Placeholder {
		parts = append(parts, "["+strconv.Itoa(n.Position)+"]")
	}
	if note := expiryNote(n, opts); note != "" {
		parts = append(parts, note)
	}
	return strings.Join(parts, " ")
}

// collect walks the forest and returns its columns plus the widest label.
func collect(forest []*Node, opts Options) ([]line, int) {
	var (
		lines []line
		width int
	)
	Walk(forest, func(n *Node, level int, last bool) {
		l := line{label: label(n, level, last), annotation: annotation(n, opts)}
		width = max(width, widthCond.StringWidth(l.label))
		lines = append(lines, l)
	})
	return lines, width
}

// Render formats the forest as an indented tree, one string per node in pre-order.
//
// Every label is padded to the widest label of the whole forest so that annotations
// line up in a single column. Rendering does not modify the forest.
//
// Parameters:
//   - forest: Roots returned by [Build]
//   - opts: Reference time and annotation switches
//
// Returns:
//   - []string: Display lines without trailing newlines (nil for an empty forest)
func Render(forest []*Node, opts Options) []string {
	lines, width := collect(forest, opts)
	if len(lines) == 0 {
		return nil
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, formatLine(l, width))
	}
	return out
}

func formatLine(l line, width int) string {
	if l.annotation == "" {
		return l.label
	}
	pad := width - widthCond.StringWidth(l.label)
	return l.label + strings.Repeat(" ", pad) + " " + l.annotation
}

// WriteTree writes the rendered forest to w, one line per node.
//
// The output is assembled in a pooled buffer and written with a single call.
//
// Returns:
//   - error: Error returned by w, if any
func WriteTree(w io.Writer, forest []*Node, opts Options) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, s := range Render(forest, opts) {
		buf.WriteString(s)
		buf.WriteByte('\n')
	}

	_, err := buf.WriteTo(w)
	return err
}
