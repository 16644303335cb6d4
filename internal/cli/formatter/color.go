package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/timesheet/internal/report"
	"github.com/charmbracelet/lipgloss"
)

// Palette keyed to the blues of the rendered report.
var (
	ColorAccent    = lipgloss.Color("#2d7dce")
	ColorTitle     = lipgloss.Color("#5fa8e8")
	ColorHighlight = lipgloss.Color("#c0e6f5")
	ColorOK        = lipgloss.Color("#6cc08b")
	ColorWarn      = lipgloss.Color("#e5c07b")
	ColorError     = lipgloss.Color("#e06c75")
	ColorDim       = lipgloss.Color("#7f8c98")
	ColorFg        = lipgloss.Color("#dde6ee")
)

var (
	StyleAccent    = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleTitle     = lipgloss.NewStyle().Foreground(ColorTitle).Bold(true)
	StyleHighlight = lipgloss.NewStyle().Foreground(ColorHighlight)
	StyleOK        = lipgloss.NewStyle().Foreground(ColorOK)
	StyleWarn      = lipgloss.NewStyle().Foreground(ColorWarn)
	StyleError     = lipgloss.NewStyle().Foreground(ColorError)
	StyleDim       = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg        = lipgloss.NewStyle().Foreground(ColorFg)
	StyleBold      = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Hours renders an hour amount. Values poisoned by a malformed cell show as
// a red "NaN"; zero is dimmed.
func Hours(h float64) string {
	switch {
	case math.IsNaN(h) || math.IsInf(h, 0):
		return StyleError.Render(report.Hours(h).String())
	case h == 0:
		return StyleDim.Render("0")
	default:
		return StyleFg.Render(report.Hours(h).String())
	}
}

// Header renders an uppercased section title over a dim rule.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleTitle.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// ErrorLine renders a one-line error message.
func ErrorLine(msg string) string {
	return StyleError.Render("✖ " + msg)
}

// SuccessLine renders a one-line confirmation.
func SuccessLine(msg string) string {
	return StyleOK.Render("✔ " + msg)
}
