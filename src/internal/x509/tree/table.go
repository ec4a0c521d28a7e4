// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders the forest as a markdown table, one row per node in pre-order.
//
// The subject column is indented by depth so the hierarchy stays readable. Placeholder
// rows carry no position or expiry.
//
// Parameters:
//   - forest: Roots returned by [Build]
//   - opts: Reference time and warning window (annotation switches are ignored)
//
// Returns:
//   - string: Markdown table representation of the forest
func RenderTable(forest []*Node, opts Options) string {
	if len(forest) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"#", "Subject", "Issuer", "Position", "Expires", "Status"}
	table.Header(headers)

	var rows [][]string
	Walk(forest, func(n *Node, level int, _ bool) {
		position, expires := "-", "-"
		if !n.Placeholder {
			position = strconv.Itoa(n.Position)
		}
		if n.HasExpiry() {
			expires = FormatExpiry(n.Expiry)
		}

		rows = append(rows, []string{
			strconv.Itoa(len(rows) + 1),
			strings.Repeat("  ", level) + strings.TrimSpace(n.Subject),
			n.Issuer,
			position,
			expires,
			string(Status(n, opts)),
		})
	})

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
