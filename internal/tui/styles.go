package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorHighlight = lipgloss.Color("11")  // bright yellow
	colorError     = lipgloss.Color("9")   // bright red

	// Card panel
	styleCardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	styleSubject = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	styleFrom = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleMeta = lipgloss.NewStyle().
			Foreground(colorDim)

	styleBody = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Kind badges
	styleBadgeEvent = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	styleBadgeTask = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	// Parsed event box
	styleEventLine = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	styleStatusOK = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Padding(0, 1)

	styleStatusErr = lipgloss.NewStyle().
			Foreground(colorError).
			Padding(0, 1)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true).
			Padding(0, 1)

	styleDone = lipgloss.NewStyle().
			Foreground(colorDim).
			Align(lipgloss.Center, lipgloss.Center)
)
