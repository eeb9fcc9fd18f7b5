package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// Color palette - Swift orange with terminal neutrals
var (
	Orange   = lipgloss.Color("#F05138") // Swift orange
	Ember    = lipgloss.Color("#E8833A") // Warm accent
	Gold     = lipgloss.Color("#F4D03F") // Highlights
	Blue     = lipgloss.Color("#5DADE2") // Info
	Green    = lipgloss.Color("#58D68D") // Success
	Pink     = lipgloss.Color("#FF6B9D") // Errors
	Copper   = lipgloss.Color("#DC7633") // Warnings
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
)

var (
	// Title for primary headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Orange)

	// Subtitle for secondary headings
	Subtitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Ember)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Green)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Pink).
		Bold(true)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Copper)

	// Info messages
	Info = lipgloss.NewStyle().
		Foreground(Blue)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Dim - even more subtle
	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)

	// Highlight for important items
	Highlight = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	// Code/command style
	Code = lipgloss.NewStyle().
		Foreground(Ember)
)

// Logo returns the swiftscribe header
func Logo() string {
	if !IsTTY {
		return "\n  SWIFTSCRIBE - Swift Code Review Skill\n"
	}

	bird := lipgloss.NewStyle().Foreground(Orange).Render("🕊")
	name := lipgloss.NewStyle().Foreground(Orange).Bold(true).Render("swiftscribe")
	tag := lipgloss.NewStyle().Foreground(Gray).Render("Swift code-review skill for AI agents")
	return fmt.Sprintf("\n  %s %s\n  %s\n", bird, name, tag)
}

// Divider returns a horizontal divider
func Divider(width int) string {
	return lipgloss.NewStyle().
		Foreground(DarkGray).
		Render(strings.Repeat("─", width))
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := lipgloss.NewStyle().
		Foreground(Orange).
		Bold(true).
		Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Pink)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Copper)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Blue)
}

// PageFooter creates a consistent page footer
func PageFooter() string {
	if !IsTTY {
		return "\n"
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	padSide := (width - 5) / 2
	left := strings.Repeat("─", padSide)
	right := strings.Repeat("─", width-padSide-5)
	line := lipgloss.NewStyle().Foreground(DarkGray).Render(left + " ✦ " + right)
	return "\n" + line + "\n"
}

// Truncate truncates text to max length with ellipsis
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max-3] + "..."
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
