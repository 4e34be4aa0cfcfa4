package errors

import (
	"fmt"
	"strings"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// FormatForTerminal formats a DirectiveError for terminal output with ANSI colors
func (e DirectiveError) FormatForTerminal() string {
	var sb strings.Builder

	severityColor := colorRed
	if e.Severity == Warning {
		severityColor = colorYellow
	}

	sb.WriteString(fmt.Sprintf("%s%s%s [%s]: %s\n",
		colorBold+severityColor,
		e.Severity.String(),
		colorReset,
		e.Code,
		e.Message))

	sb.WriteString(fmt.Sprintf("  %s-->%s %s:%d:%d\n",
		colorCyan,
		colorReset,
		e.Location.File,
		e.Location.Line,
		e.Location.Column))

	return sb.String()
}
