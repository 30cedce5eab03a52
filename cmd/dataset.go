// Package cmd provides command-line interface commands for Argus.
package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"argus/core"
	"argus/storage"
)

// CLI output formatters
var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// Global flags for dataset commands
var (
	noColor bool
	quiet   bool
)

// NewDatasetCmd creates the dataset command with its subcommands.
func NewDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Generate and convert alert datasets",
		Long:  "Tools for producing synthetic alert datasets and converting between JSON array and JSONL formats.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newConvertCmd())
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		output string
		count  int
		days   int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic alert dataset",
		Long:  "Generates synthetic alerts with full threat intelligence, risk, geographic, compliance, cost, and correlation facets. Output format follows the file extension: .jsonl/.ndjson for line-delimited, anything else for a JSON array.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if days < 1 {
				return fmt.Errorf("days must be positive, got %d", days)
			}

			var s *spinner.Spinner
			if !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				s.Suffix = fmt.Sprintf(" Generating %d alerts...", count)
				s.Start()
			}

			err := generateDataset(output, count, days, seed)

			if s != nil {
				s.Stop()
			}
			if err != nil {
				errorColor.Fprintf(os.Stderr, "✗ Generation failed: %v\n", err)
				return err
			}

			if !quiet {
				successColor.Printf("✓ Generated %d alerts\n", count)
				infoColor.Printf("  Output: %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "data/alerts.jsonl", "Output file path")
	cmd.Flags().IntVarP(&count, "count", "c", 10000, "Number of alerts to generate")
	cmd.Flags().IntVar(&days, "days", 90, "Spread timestamps over the last N days")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed for reproducible datasets")
	return cmd
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a dataset between JSON array and JSONL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]

			alerts, err := storage.LoadFile(input, zap.NewNop().Sugar())
			if err != nil {
				errorColor.Fprintf(os.Stderr, "✗ Failed to read %s: %v\n", input, err)
				return err
			}

			if err := writeDataset(output, alerts); err != nil {
				errorColor.Fprintf(os.Stderr, "✗ Failed to write %s: %v\n", output, err)
				return err
			}

			if !quiet {
				successColor.Printf("✓ Converted %d alerts\n", len(alerts))
				infoColor.Printf("  %s -> %s\n", input, output)
			}
			return nil
		},
	}
	return cmd
}

// generateDataset streams alerts to the output file without holding the
// whole dataset in memory.
func generateDataset(path string, count, days int, seed int64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	gen := newGenerator(seed, days, time.Now().UTC())
	w := bufio.NewWriter(f)

	if isLineFormat(path) {
		enc := json.NewEncoder(w)
		for i := 0; i < count; i++ {
			if err := enc.Encode(gen.Alert()); err != nil {
				return fmt.Errorf("failed to encode alert: %w", err)
			}
		}
	} else {
		alerts := make([]*core.Alert, count)
		for i := range alerts {
			alerts[i] = gen.Alert()
		}
		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			return fmt.Errorf("failed to encode alerts: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return f.Sync()
}

// writeDataset writes alerts in the format implied by the path extension.
func writeDataset(path string, alerts []*core.Alert) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if isLineFormat(path) {
		enc := json.NewEncoder(w)
		for _, alert := range alerts {
			if err := enc.Encode(alert); err != nil {
				return fmt.Errorf("failed to encode alert: %w", err)
			}
		}
	} else {
		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			return fmt.Errorf("failed to encode alerts: %w", err)
		}
	}
	return w.Flush()
}

// isLineFormat reports whether the path implies line-delimited JSON.
func isLineFormat(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return true
	}
	return false
}
