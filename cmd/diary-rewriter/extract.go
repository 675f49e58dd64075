// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/diary-rewriter/internal/convert"
	"github.com/pdiddy/diary-rewriter/internal/extract"
	"github.com/pdiddy/diary-rewriter/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <input>",
	Short: "List the day entries recovered from a diary",
	Long: `Extract reads the input diary and prints each recovered day number and
topic without writing anything. Use it to check what rewrite will see.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Bool("json", false, "output entries as JSON")
	extractCmd.Flags().Bool("yaml", false, "output entries as YAML")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	if jsonOutput && yamlOutput {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	text, err := convert.ForPath(args[0]).Convert(args[0])
	if err != nil {
		return err
	}
	entries, err := extract.Days(text)
	if errors.Is(err, extract.ErrNoDays) {
		return fmt.Errorf("no days found in %s", args[0])
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch {
	case jsonOutput:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case yamlOutput:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return formatEntries(w, entries)
	}
}

func formatEntries(w io.Writer, entries []types.DayEntry) error {
	fmt.Fprintf(w, "%-5s  %s\n", "Day", "Topic")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, e := range entries {
		fmt.Fprintf(w, "%-5d  %s\n", e.Number, e.Topic)
	}
	fmt.Fprintf(w, "\n%d days\n", len(entries))
	return nil
}
