package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/debugger/pkg/core/debugger"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Show which calls pass each threshold",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), renderMatrix())
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}

var matrixCalls = []struct {
	name     string
	severity debugger.LogLevel
}{
	{"Log", debugger.Info},
	{"LogWarning", debugger.Warning},
	{"LogError", debugger.Error},
	{"LogException", debugger.Exception},
}

const (
	levelColumn = 12
	callColumn  = 14
)

// renderMatrix asks an enabled Debugger at every threshold which calls it lets through
func renderMatrix() string {
	var b strings.Builder

	header := HeaderStyle.Width(levelColumn).Render("THRESHOLD")
	for _, c := range matrixCalls {
		header += HeaderStyle.Width(callColumn).Render(c.name)
	}
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(BlockStyle.Render(strings.Repeat("─", levelColumn+callColumn*len(matrixCalls))))
	b.WriteString("\n")

	for _, threshold := range debugger.AllLevels() {
		d := debugger.New(debugger.WithEnabled(true), debugger.WithLevel(threshold))

		row := lipgloss.NewStyle().Width(levelColumn).Render(threshold.String())
		for _, c := range matrixCalls {
			if d.IsLogging(c.severity) {
				row += PassStyle.Width(callColumn).Render("yes")
			} else {
				row += BlockStyle.Width(callColumn).Render("-")
			}
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}
