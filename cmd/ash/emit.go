package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ash/internal/diag"
	"ash/internal/diagfmt"
	"ash/internal/driver"
	"ash/internal/emit"
)

var emitCmd = &cobra.Command{
	Use:   "emit <file>",
	Short: "Check an ash source file and print its C++ translation",
	Long:  `Emit runs the full front-end and, if the file checks cleanly, prints the generated C++ translation unit.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEmit,
}

func init() {
	emitCmd.Flags().StringP("output", "o", "", "write generated C++ to this path instead of stdout")
}

func runEmit(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	format, err := cmd.Root().PersistentFlags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Check(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	result.Bag.Sort()
	if result.Bag.Len() > 0 {
		if format == "golden" {
			fmt.Fprintln(os.Stderr, diag.FormatGoldenDiagnostics(result.Bag.Items(), result.FileSet, true))
		} else {
			opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr, args[0]), Context: 1}
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		}
	}
	if result.Bag.HasErrors() || result.Typed == nil {
		return fmt.Errorf("%s failed to check", args[0])
	}

	cpp := emit.Program(result.Typed)
	if output == "" {
		fmt.Fprint(os.Stdout, cpp)
		return nil
	}
	return os.WriteFile(output, []byte(cpp), 0o644)
}
