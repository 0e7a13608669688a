package ui

import "runtime"

// ANSI Color codes
const (
	colorReset     = "\033[0m"
	colorBrightRed = "\033[91m"
)

func Colorize(text, color string) string {
	if runtime.GOOS == "windows" {
		return text
	}

	return color + text + colorReset
}

func BrightRed(text string) string { return Colorize(text, colorBrightRed) }

// Error marks a fatal diagnostic.
func Error(text string) string { return BrightRed("❌ " + text) }
