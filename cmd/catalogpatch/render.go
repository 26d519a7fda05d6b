package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shashiranjanraj/catalogpatch/pkg/patch"
)

var (
	accent  = lipgloss.Color("#D97706")
	dim     = lipgloss.Color("#6B7280")
	faint   = lipgloss.Color("#3F3F46")
	success = lipgloss.Color("#22C55E")
	warning = lipgloss.Color("#F59E0B")
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	appliedStyle  = lipgloss.NewStyle().Foreground(success)
	pendingStyle  = lipgloss.NewStyle().Foreground(warning)
	separatorLine = lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("─", 72))
)

// renderStatus renders the patch:status table.
func renderStatus(statuses []patch.Status) string {
	if len(statuses) == 0 {
		return dimStyle.Render("No patches registered.") + "\n"
	}

	nameWidth := len("Patch")
	for _, s := range statuses {
		nameWidth = max(nameWidth, len(s.Name))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %-6s  %-7s  %s", nameWidth, "Patch", "Kind", "Status", "Batch")))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")

	pending := 0
	for _, s := range statuses {
		status, batch := appliedStyle.Render(fmt.Sprintf("%-7s", "Applied")), fmt.Sprint(s.Batch)
		if !s.Applied {
			pending++
			status, batch = pendingStyle.Render(fmt.Sprintf("%-7s", "Pending")), "-"
		}
		fmt.Fprintf(&b, "%-*s  %-6s  %s  %s\n", nameWidth, s.Name, s.Kind, status, dimStyle.Render(batch))
	}

	b.WriteString(separatorLine)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d patches, %d pending", len(statuses), pending)))
	b.WriteString("\n")
	return b.String()
}
