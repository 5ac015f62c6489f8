package report

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#a78bfa")
	muted   = lipgloss.Color("#808080")
	subtle  = lipgloss.Color("#585858")
	warning = lipgloss.Color("#f1a208")
)

type styles struct {
	Album    lipgloss.Style // album header
	Work     lipgloss.Style
	Movement lipgloss.Style
	Rule     lipgloss.Style // grammar name column
	Break    lipgloss.Style // work started after a mismatch
	Total    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Album:    lipgloss.NewStyle().Bold(true),
		Work:     lipgloss.NewStyle().Foreground(primary),
		Movement: lipgloss.NewStyle(),
		Rule:     lipgloss.NewStyle().Foreground(subtle),
		Break:    lipgloss.NewStyle().Foreground(warning),
		Total:    lipgloss.NewStyle().Bold(true).Foreground(muted),
	}
}
