package icons

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
const (
	green = lipgloss.Color("#9ece6a")
	red   = lipgloss.Color("#f7768e")
	amber = lipgloss.Color("#e0af68")
	blue  = lipgloss.Color("#7aa2f7")
	gray  = lipgloss.Color("#565f89")
)

// Status icons
const (
	CheckMark = "✓"
	CrossMark = "✗"
	Modified  = "●"
	Locked    = "⊘"
)

// Icon styles
var (
	CheckMarkStyle = lipgloss.NewStyle().Foreground(green).Bold(true)
	CrossMarkStyle = lipgloss.NewStyle().Foreground(red).Bold(true)
	ModifiedStyle  = lipgloss.NewStyle().Foreground(amber).Bold(true)
	LockedStyle    = lipgloss.NewStyle().Foreground(gray)
	HeaderStyle    = lipgloss.NewStyle().Foreground(blue).Bold(true)
	DimStyle       = lipgloss.NewStyle().Foreground(gray)
)

func StyledCheckMark() string {
	return CheckMarkStyle.Render(CheckMark)
}

func StyledCrossMark() string {
	return CrossMarkStyle.Render(CrossMark)
}

func StyledModified() string {
	return ModifiedStyle.Render(Modified)
}

func StyledLocked() string {
	return LockedStyle.Render(Locked)
}
