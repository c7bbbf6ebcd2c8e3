package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
	priceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
)

func price(v float64) string {
	return priceStyle.Render(fmt.Sprintf("$%.2f", v))
}

// progressBar renders percent as a fixed-width block bar.
func progressBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return barStyle.Render(bar) + fmt.Sprintf(" %.0f%%", percent)
}
