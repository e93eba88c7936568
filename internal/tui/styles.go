package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	organizerStyle = lipgloss.NewStyle().Foreground(colorSubtext1).Bold(true)
	dateStyle      = lipgloss.NewStyle().Foreground(colorInfo)
	likesStyle     = lipgloss.NewStyle().Foreground(colorError)
	welcomeStyle   = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)

	eventBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	focusedBoxStyle = eventBoxStyle.BorderForeground(colorFocus)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	sectionLabelStyle = lipgloss.NewStyle().Bold(true)

	capacityStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorStyle = lipgloss.NewStyle().Foreground(colorError)
	hintStyle  = lipgloss.NewStyle().Foreground(colorWarning)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	fieldLabelStyle = lipgloss.NewStyle().Foreground(colorOverlay0).Width(14)
)
