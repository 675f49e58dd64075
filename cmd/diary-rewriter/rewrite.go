// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/diary-rewriter/internal/extract"
	"github.com/pdiddy/diary-rewriter/internal/pipeline"
	"github.com/pdiddy/diary-rewriter/pkg/types"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <input> <output>",
	Short: "Rewrite a diary into a new document",
	Long: `Rewrite reads the input diary (.docx, .md, or plain text), finds every
"<N>. Gün" block with its "Yapılan Çalışmanın Konusu" line, and writes a new
document with one section per day. The output format follows the output
extension (.md/.markdown for Markdown, DOCX otherwise) unless --format is set.

If no day blocks are found, nothing is written.`,
	Args: cobra.ExactArgs(2),
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().String("format", "", "output format: docx or markdown (default from output extension)")
	rewriteCmd.Flags().String("font", "", "DOCX body font (default Calibri)")
	rewriteCmd.Flags().Int("font-size", 0, "DOCX body font size in points (default 11)")

	_ = viper.BindPFlag("format", rewriteCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("font.name", rewriteCmd.Flags().Lookup("font"))
	_ = viper.BindPFlag("font.size", rewriteCmd.Flags().Lookup("font-size"))

	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg := rewriteConfig(args[0], args[1])

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}

	_, err = p.Run(cmd.OutOrStdout())
	if errors.Is(err, extract.ErrNoDays) {
		return fmt.Errorf("no days found in %s; nothing written", cfg.InputPath)
	}
	return err
}

// rewriteConfig merges flags, config file, and environment into a
// RewriteConfig. Defaults are applied later by the pipeline.
func rewriteConfig(input, output string) types.RewriteConfig {
	return types.RewriteConfig{
		InputPath:     input,
		OutputPath:    output,
		Format:        types.OutputFormat(viper.GetString("format")),
		Casing:        types.CasingMode(viper.GetString("casing")),
		TemplatesPath: viper.GetString("templates"),
		Font: types.FontConfig{
			Name: viper.GetString("font.name"),
			Size: viper.GetInt("font.size"),
		},
	}
}
