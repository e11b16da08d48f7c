package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sallfarr77/ossh/internal/sshconfig"
)

// renderHostTable formats the configured hosts as a bordered table,
// one row per alias in listing order.
func renderHostTable(entries []sshconfig.HostEntry) string {
	headerRowStyle := lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(primaryColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		}).
		Headers(
			T("col_index"),
			T("col_alias"),
			T("col_hostname"),
			T("col_user"),
			T("col_port"),
			T("col_auth"),
		)

	for i, e := range entries {
		t.Row(
			strconv.Itoa(i+1),
			e.Alias,
			orDash(e.Hostname),
			orDash(e.User),
			e.Port,
			authLabel(e),
		)
	}
	return t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func authLabel(e sshconfig.HostEntry) string {
	if e.AuthMode() == sshconfig.AuthKey {
		return T("auth_key")
	}
	return T("auth_password")
}
