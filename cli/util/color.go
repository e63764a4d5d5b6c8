package util

import "github.com/mgutz/ansi"

var (
	bold      = ansi.ColorFunc("default+b")
	highlight = ansi.ColorFunc("cyan")
)

// Bold makes the input string bold.
func Bold(s string) string {
	return bold(s)
}

// Highlight colors a file system path in user facing messages.
func Highlight(path string) string {
	return highlight(path)
}
