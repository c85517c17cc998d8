package cmd

import (
	"os"

	"github.com/skx/forthc/cerr"
	"github.com/skx/forthc/codegen"
	"github.com/skx/forthc/lexer"
	"github.com/skx/forthc/program"
	"github.com/spf13/cobra"
)

// runCompile reads the input file, runs it through the lexer, the
// program analyzer, and the code generator, and writes the assembled
// module to the output file. No output is written unless every stage
// succeeds (§5, "Failure isolation").
func runCompile(_ *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return cerr.Wrap(cerr.IO, "read "+inputPath, err)
	}

	l := lexer.New(string(source))
	tokens, err := l.Tokenize()
	if err != nil {
		return cerr.Wrap(cerr.Lex, "lex", err)
	}

	analysis, err := program.Analyze(tokens, l.RoutineAliases())
	if err != nil {
		return cerr.Wrap(cerr.Parse, "analyze", err)
	}

	module, err := codegen.Generate(analysis)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(module), 0644); err != nil {
		return cerr.Wrap(cerr.IO, "write "+outputPath, err)
	}

	return nil
}
