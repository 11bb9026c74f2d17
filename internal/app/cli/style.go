package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"shade/internal/app/color"
	"shade/internal/config"
)

// Headline and title styles
var (
	headline   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#03A9F4")).MarginTop(1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
)

// Body and label styles
var (
	body  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
	label = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Italic(true)
)

// Semantic styles
var (
	sectionHeader = headline.MarginBottom(1)
	commandName   = titleStyle
	exampleCode   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	errorLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5252"))
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5252"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#03A9F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app name, version and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, body.Render(config.AppDescription))
}

// RenderError renders an error line for stderr
func RenderError(err error) string {
	return errorLabel.Render("Error:") + " " + err.Error()
}

// Swatch renders the hex value on its own color, text picks black or white for legibility
func Swatch(c color.Color, styled bool) string {
	if !styled {
		return c.Hex()
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(c.TextColor().Hex())).
		Padding(0, 1).
		Render(c.Hex())
}

// RenderContrast renders a ratio, marked against the legibility threshold
func RenderContrast(ratio float64, styled bool) string {
	text := fmt.Sprintf("%5.2f:1", ratio)

	if !styled {
		return text
	}

	if ratio >= color.LegibleContrast {
		return passStyle.Render(text)
	}

	return failStyle.Render(text)
}

func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(f.Fd())
}
