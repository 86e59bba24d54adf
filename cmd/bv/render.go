package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/theapemachine/qsim"
)

const barWidth = 40

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

// bar draws a horizontal bar proportional to percent.
func bar(percent float64) string {
	cells := int(percent/100*barWidth + 0.5)
	if cells == 0 && percent > 0 {
		cells = 1
	}
	return barStyle.Render(strings.Repeat("█", cells))
}

func renderInfo(w io.Writer, secret string, info qsim.CircuitInfo) {
	fmt.Fprintf(w, "secret:  %s\n", secret)
	fmt.Fprintf(w, "circuit: %d qubits, %d classical bits, %d gates, depth %d\n\n",
		info.Qubits, info.Clbits, info.Gates, info.Depth)
}

/*
renderReport prints the ranked outcomes as a table with a bar chart column,
followed by the verdict and the query comparison. Only the top entries are
listed when top is positive.
*/
func renderReport(w io.Writer, report *qsim.Report, top int) {
	ranked := report.Ranked
	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Outcome", "Count", "Percent", ""})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for i, o := range ranked {
		table.Append([]string{
			strconv.Itoa(i + 1),
			o.Bitstring,
			strconv.Itoa(o.Count),
			fmt.Sprintf("%.2f%%", o.Percent),
			bar(o.Percent),
		})
	}
	table.Render()

	if hidden := len(report.Ranked) - len(ranked); hidden > 0 {
		fmt.Fprintf(w, "... %d more outcomes\n", hidden)
	}
	fmt.Fprintln(w)

	if report.Match {
		color.New(color.FgGreen, color.Bold).Fprintf(w, "found %s, matches the secret\n", report.Found)
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(w, "found %s, expected %s\n", report.Found, report.Secret)
	}

	fmt.Fprintf(w, "queries: quantum %d, classical %d\n", report.QuantumQueries, report.ClassicalQueries)
}
