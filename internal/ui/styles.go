package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorAccent  = lipgloss.Color("#4ecca3")
	ColorDim     = lipgloss.Color("#555555")
	ColorSuccess = lipgloss.Color("#4ecca3")
	ColorError   = lipgloss.Color("#e94560")
)

// Border styles
var (
	FocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent)

	UnfocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim)
)

// Text styles
var (
	AccentText = lipgloss.NewStyle().Foreground(ColorAccent)
	DimText    = lipgloss.NewStyle().Foreground(ColorDim)
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SortedHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Underline(true)
)

// Table cell styles
var (
	CellNormal   = lipgloss.NewStyle()
	CellSelected = lipgloss.NewStyle().Reverse(true)
	RowSelected  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	CellEditing  = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a3a2a")).
			Foreground(ColorAccent).
			Bold(true)
)

// Status bar
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#cccccc")).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(ColorError).
				Padding(0, 1)

	StatusSuccessStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(ColorSuccess).
				Padding(0, 1)
)

// Top bar style
var TopBarStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("#333333")).
	Foreground(lipgloss.Color("#cccccc")).
	Padding(0, 1)
