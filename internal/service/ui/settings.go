package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sandevgo/ragconf/internal/config"
)

// NotSet is shown in place of an empty API key.
const NotSet = "(not set)"

// RenderSettings draws the redacted settings as a two column table.
func RenderSettings(s *config.Settings) string {
	entries := s.Entries()

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		value := e.Value
		if e.Key == config.APIKeyVar && value == "" {
			value = NotSet
		}
		rows = append(rows, []string{e.Key, value})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(DescStyle).
		Headers("SETTING", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(TitleStyle.UnsetMarginBottom())
			case col == 0:
				return base.Inherit(UsageStyle)
			case row < len(rows) && rows[row][1] == NotSet:
				return base.Inherit(WarnStyle)
			default:
				return base
			}
		})

	return t.String()
}
