// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/diary-rewriter/internal/pipeline"
	"github.com/pdiddy/diary-rewriter/internal/render"
	"github.com/pdiddy/diary-rewriter/pkg/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview <day> <topic...>",
	Short: "Print the generated section for a single day",
	Long: `Preview renders one day's section as Markdown on stdout, using the
same template selection as rewrite. Useful for checking what a given day
number will produce.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil || day < 0 {
		return fmt.Errorf("day must be a non-negative integer, got %q", args[0])
	}
	entry := types.DayEntry{Number: day, Topic: strings.Join(args[1:], " ")}

	cfg := types.RewriteConfig{
		Casing:        types.CasingMode(viper.GetString("casing")),
		TemplatesPath: viper.GetString("templates"),
	}
	gen, err := pipeline.NewGenerator(cfg, logger)
	if err != nil {
		return err
	}
	return render.WriteMarkdown(cmd.OutOrStdout(), render.Build([]types.DayEntry{entry}, gen))
}
