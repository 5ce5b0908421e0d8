package ui

import "strings"

const (
	reset       = "\033[0m"
	bold        = "\033[1m"
	outlineGray = "\033[38;5;244m"
	beeYellow   = "\033[38;5;226m"
	honeyOrange = "\033[38;5;214m"
	mint        = "\033[38;5;121m"
	seafoam     = "\033[38;5;49m"
	cobalt      = "\033[38;5;33m"
	fuchsia     = "\033[38;5;177m"
	flame       = "\033[38;5;208m"
)

// Banner renders the monitor2plot wordmark. Colors are only emitted when color is set.
func Banner(color bool) string {
	var b strings.Builder

	letters := [][]string{
		{"███╗   ███╗", "████╗ ████║", "██╔████╔██║", "██║╚██╔╝██║", "██║ ╚═╝ ██║", "╚═╝     ╚═╝"},
		{"██████╗ ", "╚════██╗", " █████╔╝", "██╔═══╝ ", "███████╗", "╚══════╝"},
		{"██████╗  ", "██╔══██╗ ", "██████╔╝ ", "██╔═══╝  ", "██║      ", "╚═╝      "},
	}
	gradient := []string{seafoam, beeYellow, flame}
	rows := make([]string, len(letters[0]))
	for i, letter := range letters {
		for row := range letter {
			rows[row] += paint(color, gradient[i%len(gradient)], letter[row]) + " "
		}
	}
	for _, line := range rows {
		b.WriteString(paint(color, bold, strings.TrimRight(line, " ")) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(paint(color, bold+seafoam, "monitor2plot") + "  •  process CPU/MEM over time, as a chart\n")

	return b.String()
}

func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + reset
}
