package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ash/internal/config"
	"ash/internal/diag"
	"ash/internal/diagfmt"
	"ash/internal/driver"
	"ash/internal/emit"
	"ash/internal/typedprog"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check an ash source file",
	Long:  `Check runs the lexer, parser, and ownership/type checker over a single ash source file. With no file argument, it looks for ashconfig.toml in the current directory or the nearest parent directory that has one, and checks its [package].entry.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func resolveEntry(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, found, err := config.Find(".")
	if err != nil {
		return "", fmt.Errorf("failed to search for ashconfig.toml: %w", err)
	}
	if !found {
		return "", fmt.Errorf("no file argument given and no ashconfig.toml found")
	}
	cfg, err := config.Load(manifest)
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", manifest, err)
	}
	return filepath.Join(filepath.Dir(manifest), cfg.Entry), nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	format, err := cmd.Root().PersistentFlags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	entry, err := resolveEntry(args)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(entry)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", entry, err)
	}
	hash := sourceHash(src)
	cachePath := entry + ".ashsnapshot"

	// A cache hit means this exact file content already checked cleanly;
	// skip the lexer/parser/checker pipeline entirely.
	if cached, ok := readSnapshotCache(cachePath); ok && cached.SourceHash == hash {
		if !quiet {
			fmt.Fprintf(os.Stdout, "%s: ok (cached)\n", entry)
		}
		return nil
	}

	result, err := driver.Check(entry, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	result.Bag.Sort()
	if result.Bag.Len() > 0 {
		if format == "golden" {
			fmt.Fprintln(os.Stderr, diag.FormatGoldenDiagnostics(result.Bag.Items(), result.FileSet, true))
		} else {
			opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr, entry), Context: 1}
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		}
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("%s failed to check", entry)
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "%s: ok\n", entry)
	}

	snap := result.Typed.Snapshot(hash)
	if data, err := snap.Marshal(); err == nil {
		_ = os.WriteFile(cachePath, data, 0o644)
	}

	if manifest, found, err := config.Find(filepath.Dir(entry)); err == nil && found {
		if cfg, err := config.Load(manifest); err == nil && cfg.EmitCpp {
			out := strings.TrimSuffix(entry, filepath.Ext(entry)) + ".cpp"
			if err := os.WriteFile(out, []byte(emit.Program(result.Typed)), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			if !quiet {
				fmt.Fprintf(os.Stdout, "wrote %s\n", out)
			}
		}
	}
	return nil
}

func sourceHash(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// readSnapshotCache reads and decodes a .ashsnapshot cache file written by
// a prior successful `ash check`. A missing or corrupt cache is reported as
// ok=false, never as an error — a cache miss just means re-checking.
func readSnapshotCache(path string) (typedprog.Snapshot, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return typedprog.Snapshot{}, false
	}
	snap, err := typedprog.UnmarshalSnapshot(data)
	if err != nil {
		return typedprog.Snapshot{}, false
	}
	return snap, true
}
