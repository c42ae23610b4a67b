// Package cli holds the shared terminal output surface: one colour palette
// used by both the kong help printer and the command output, plus the small
// set of styles the commands print with.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Palette. Help sections, command output and status markers all draw from
// these so the CLI reads as one surface.
var (
	accentColor = lipgloss.Color("#005FAF") // Clearcall blue
	alertColor  = lipgloss.Color("#A40000")
	activeColor = lipgloss.Color("#FFA500")
	okColor     = lipgloss.Color("#00AA00")
	cmdColor    = lipgloss.Color("#00AAAA")
	mutedColor  = lipgloss.Color("#888888")
)

var (
	// TitleStyle heads the version banner and the devices listing.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	// ErrorStyle prefixes fatal command errors on stderr.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(alertColor)

	// KeyStyle and ValueStyle render the label/value pairs the version and
	// normalize commands print.
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))
)

// PrintVersion prints the banner and version pair.
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("Clearcall ☎"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints a fatal command error to stderr.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}
