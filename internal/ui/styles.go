package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent   = lipgloss.Color("#bfd34a")
	linkFg   = lipgloss.Color("#FFA500")
	white    = lipgloss.Color("#FFFFFF")
	dim      = lipgloss.Color("#9A9A9A")
	ownBg    = lipgloss.Color("#39414A")
	otherBg  = lipgloss.Color("#191919")
	panelBg  = lipgloss.Color("#1A1A1A")
	errorFg  = lipgloss.Color("#FF6666")
	statusFg = lipgloss.Color("#DDDDDD")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	hintStyle    = lipgloss.NewStyle().Foreground(dim)
	statusStyle  = lipgloss.NewStyle().Foreground(statusFg).Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorFg)
	labelStyle   = lipgloss.NewStyle().Foreground(white).MarginLeft(2)
	counterStyle = lipgloss.NewStyle().Foreground(white)
	panelStyle   = lipgloss.NewStyle().Background(panelBg).Padding(0, 1)

	authorStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(dim)
	linkStyle   = lipgloss.NewStyle().Foreground(linkFg).Underline(true)
	textStyle   = lipgloss.NewStyle().Foreground(white)
)

func statusBlock(own bool) lipgloss.Style {
	bg := otherBg
	if own {
		bg = ownBg
	}
	return lipgloss.NewStyle().Background(bg).Padding(0, 1).MarginBottom(1)
}
