package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this file.
var (
	// ColorCyan is used for identifiable nouns: versions, application names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for skipped steps.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failed steps.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Step outcomes for shell steps.
const (
	StepOK      = "ok"
	StepSkipped = "skipped"
	StepFailed  = "failed"
)

// StepStyle returns the style for a step outcome. Unknown outcomes are unstyled.
func StepStyle(outcome string) lipgloss.Style {
	switch outcome {
	case StepOK:
		return lipgloss.NewStyle().Foreground(ColorGreenCheck)
	case StepSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StepFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatFound renders a discovered item ("Found `name`") for list commands.
func FormatFound(name string) string {
	return "Found " + StyleNoun.Render("`"+name+"`")
}

// FormatStep renders a step description followed by its styled outcome.
func FormatStep(step, outcome string) string {
	return step + " " + StyleDim.Render("→") + " " + StepStyle(outcome).Render(outcome)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + StyleSummary.Render(msg)
}
