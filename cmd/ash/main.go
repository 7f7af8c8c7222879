// Package main implements the ash CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ash/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "ash",
	Short: "Ash language ownership/type checker",
	Long:  `Ash checks and translates a small, linear-ownership, optionally-managed language.`,
}

// main registers subcommands and persistent flags, then executes the root
// command. A non-nil error from Execute exits the process with status 1.
func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("format", "pretty", "diagnostic rendering (pretty|golden)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the effective color setting for a run against
// sourcePath: an explicit `--color on`/`--color off` always wins; otherwise
// an ashconfig.toml found above sourcePath supplies the default, falling
// back to terminal auto-detection when neither says anything.
func useColor(cmd *cobra.Command, f *os.File, sourcePath string) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	if colorFlag == "on" {
		return true
	}
	if colorFlag == "off" {
		return false
	}

	if manifest, found, err := config.Find(filepath.Dir(sourcePath)); err == nil && found {
		if cfg, err := config.Load(manifest); err == nil {
			switch cfg.Color {
			case "on":
				return true
			case "off":
				return false
			}
		}
	}
	return isTerminal(f)
}
