// Package renderer styles the game's text output.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
)

var (
	ColorRoom    color.Style
	ColorWarning color.Style
	ColorDenied  color.Style
	ColorEnding  color.Style
	ColorSubtle  color.Style

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([a-z A-Z0-9_,:'!.-]+)}`)
)

// InitColors initializes the color styles. Colour output is switched off entirely
// when enabled is false.
func InitColors(enabled bool) {
	color.Enable = enabled

	ColorRoom = color.Style{color.FgCyan, color.OpBold}
	ColorWarning = color.Style{color.FgYellow}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorEnding = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
}

// FormatString formats a string with fmt.Sprintf and expands its markup
func FormatString(msg string, a ...any) string {
	return Markup(fmt.Sprintf(msg, a...))
}

// Markup expands special markup in s. ROOM{n} highlights a room number;
// unknown functions are left as written.
func Markup(s string) string {
	ret := s

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "ROOM":
			val = ColorRoom.Sprint(operand)
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// Rule returns a horizontal separator of the given width
func Rule(width int) string {
	return ColorSubtle.Sprint(strings.Repeat("-", width))
}
