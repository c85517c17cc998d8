// Package cmd wires the forthc command-line surface on top of cobra, in
// the style of the pack's other cobra-based frontends: a single root
// command with no subcommands and no flags of its own, whose RunE runs
// the compile pipeline on exactly two positional arguments.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forthc <input-source> <output-ir>",
	Short: "Compile a stack-oriented source file to textual LLVM IR",
	Long: `forthc is a batch compiler for a Forth-like stack-oriented source
dialect. It translates one input file into one textual LLVM IR module,
suitable for linking against the forthc runtime library.`,
	Args:          cobra.ExactArgs(2),
	RunE:          runCompile,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, printing any failure as forthc's single
// diagnostic line and returning the process exit code (§7).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
