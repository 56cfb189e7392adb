package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wayfind/pkg/digraph"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorGray)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// formatDistance renders a distance in its shortest decimal form.
func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

// formatPath renders a shortest-path result in the canonical textual form
// "(distance, [v1 v2 ...])", or a "not accessible" message for an
// unreachable destination.
func formatPath(src, dst string, p digraph.Path) string {
	if !p.Reachable() {
		return fmt.Sprintf("%s %s %s: not accessible", src, iconArrow, dst)
	}
	return fmt.Sprintf("(%s, [%s])", formatDistance(p.Distance), strings.Join(p.Vertices, " "))
}

// printPath prints a styled shortest-path line.
func printPath(src, dst string, p digraph.Path) {
	if !p.Reachable() {
		fmt.Println(styleDim.Render(fmt.Sprintf("%s %s %s: not accessible", src, iconArrow, dst)))
		return
	}
	fmt.Println("(" + styleNumber.Render(formatDistance(p.Distance)) +
		", " + styleValue.Render("["+strings.Join(p.Vertices, " ")+"]") + ")")
}

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printFile prints a generated-file line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printStats prints graph statistics on a single dim line.
func printStats(vertexCount, edgeCount int) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf("%d vertices · %d edges", vertexCount, edgeCount)))
}
