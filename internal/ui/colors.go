package ui

// ANSI color codes used by the logger
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	White  = "\033[37m"
)

// Colorize wraps text with a color code and resets afterwards
func Colorize(text string, color string) string {
	return color + text + Reset
}
