package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/denv/dotenv"
)

// Terminal styles shared by the list and check subcommands.
var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	punctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusStyle = map[dotenv.Status]lipgloss.Style{
		dotenv.StatusCopied:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		dotenv.StatusInterpolated: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		dotenv.StatusCircular:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

func renderKey(key string, color bool) string {
	if !color {
		return key
	}

	return keyStyle.Render(key)
}

func renderPunct(s string, color bool) string {
	if !color {
		return s
	}

	return punctStyle.Render(s)
}

func renderStatus(status dotenv.Status, color bool) string {
	if !color {
		return status.String()
	}

	return statusStyle[status].Render(status.String())
}
