package seahorse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jhilmer/seahorse/pkg/textutil"
)

// DefaultHelp renders the fallback help text for a: the optional display
// banner, then the application's name, version and usage, then one line per
// registered command in registration order.
func DefaultHelp(a *App) string {
	if a == nil {
		return ""
	}

	var b strings.Builder

	if a.DisplayName != "" {
		b.WriteString(a.DisplayName)
		b.WriteString("\n\n")
	}

	b.WriteString("Name:\n")
	b.WriteString("  " + a.Name + "\n\n")

	b.WriteString("Version:\n")
	b.WriteString("  " + a.Version + "\n\n")

	b.WriteString("Usage:\n")
	b.WriteString("  " + a.Usage + "\n\n")

	if len(a.Commands) > 0 {
		b.WriteString("Commands:\n")

		maxNameLen := 0
		for _, c := range a.Commands {
			if n := utf8.RuneCountInString(c.Name); n > maxNameLen {
				maxNameLen = n
			}
		}

		nameWidth := maxNameLen + 4
		wrapWidth := 80 - nameWidth

		for _, c := range a.Commands {
			// Wrap returns nil for empty or whitespace-only usage.
			lines := textutil.Wrap(c.Usage, wrapWidth)
			if len(lines) == 0 {
				fmt.Fprintf(&b, "  %s\n", c.Name)
				continue
			}

			padding := strings.Repeat(" ", maxNameLen-utf8.RuneCountInString(c.Name)+4)
			fmt.Fprintf(&b, "  %s%s%s\n", c.Name, padding, lines[0])

			indentPadding := strings.Repeat(" ", nameWidth+2)
			for _, line := range lines[1:] {
				fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
