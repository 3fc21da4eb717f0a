package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Gold     = lipgloss.Color("#F4D03F")
	Amber    = lipgloss.Color("#E59866")
	Copper   = lipgloss.Color("#DC7633")
	Green    = lipgloss.Color("#58D68D")
	Pink     = lipgloss.Color("#FF6B9D")
	Magenta  = lipgloss.Color("#E91E8C")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Title for headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

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

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Code/command style
	Code = lipgloss.NewStyle().
		Foreground(Magenta)
)

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINES - [+] success, [!] warning, [-] error
// ═══════════════════════════════════════════════════════════════════════════════

const (
	PrefixOK    = "[+]"
	PrefixWarn  = "[!]"
	PrefixError = "[-]"
)

// StatusLine creates a status line with prefix and message
func StatusLine(prefix, message string, style lipgloss.Style) string {
	return statusLine(prefix, message, style, IsTTY)
}

func statusLine(prefix, message string, style lipgloss.Style, color bool) string {
	if !color {
		return fmt.Sprintf("%s %s", prefix, message)
	}
	return fmt.Sprintf("%s %s", style.Render(prefix), message)
}

// SuccessLine creates a "[+]" status line
func SuccessLine(message string) string {
	return StatusLine(PrefixOK, message, Success)
}

// WarningLine creates a "[!]" status line
func WarningLine(message string) string {
	return StatusLine(PrefixWarn, message, Warning)
}

// ErrorLine creates a "[-]" status line
func ErrorLine(message string) string {
	return StatusLine(PrefixError, message, Error)
}

// The Fprint variants color only when w itself is a terminal, so
// redirecting stderr never captures escape codes.

// FprintSuccess writes a "[+]" line to w
func FprintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, statusLine(PrefixOK, message, Success, IsTerminal(w)))
}

// FprintWarning writes a "[!]" line to w
func FprintWarning(w io.Writer, message string) {
	fmt.Fprintln(w, statusLine(PrefixWarn, message, Warning, IsTerminal(w)))
}

// FprintError writes a "[-]" line to w
func FprintError(w io.Writer, message string) {
	fmt.Fprintln(w, statusLine(PrefixError, message, Error, IsTerminal(w)))
}

// ═══════════════════════════════════════════════════════════════════════════════
// BANNERS
// ═══════════════════════════════════════════════════════════════════════════════

const bannerWidth = 53

// Banner returns a framed single-line heading
func Banner(title string) string {
	return Panel(title)
}

// Panel frames a title and optional body lines in a double border.
// An empty line in body is kept as a spacer.
func Panel(title string, body ...string) string {
	if !IsTTY {
		var b strings.Builder
		rule := strings.Repeat("=", bannerWidth)
		b.WriteString(rule + "\n")
		b.WriteString("  " + title + "\n")
		if len(body) > 0 {
			b.WriteString(strings.Repeat("-", bannerWidth) + "\n")
			for _, line := range body {
				b.WriteString("  " + line + "\n")
			}
		}
		b.WriteString(rule)
		return b.String()
	}

	heading := lipgloss.PlaceHorizontal(bannerWidth-4, lipgloss.Center, Title.Render(title))
	content := heading
	if len(body) > 0 {
		content += "\n" + Divider(bannerWidth-4) + "\n" + strings.Join(body, "\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Amber).
		Width(bannerWidth - 2).
		Padding(0, 1).
		Render(content)
}

// Divider returns a horizontal divider
func Divider(width int) string {
	return Render(lipgloss.NewStyle().Foreground(DarkGray), strings.Repeat("─", width))
}

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderMuted renders text in muted style (TTY-aware)
func RenderMuted(text string) string {
	return Render(Muted, text)
}

// RenderCode renders text in code style (TTY-aware)
func RenderCode(text string) string {
	return Render(Code, text)
}
