// Package main provides the CLI entrypoint for gqltypegen.
//
// gqltypegen loads a GraphQL schema and a set of query documents, resolves
// every operation into generated type variants and prints the resulting
// type layout as YAML.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "gqltypegen",
	Short:         "gqltypegen resolves GraphQL operations into typed client shapes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		color.NoColor = true
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RGB(229, 50, 50).Sprint("Error!"), err)
		os.Exit(1)
	}
}

// highlight applies a blue color to the given format and arguments.
func highlight(format string, a ...any) string {
	return color.RGB(50, 108, 229).Sprintf(format, a...)
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}
