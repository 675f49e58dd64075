// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the diary-rewriter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = zap.NewNop()

// rootCmd is the base command for the diary-rewriter CLI.
var rootCmd = &cobra.Command{
	Use:   "diary-rewriter",
	Short: "Rebuild an internship diary with fresh daily prose",
	Long: `diary-rewriter reads an internship diary (staj defteri), recovers each
day's number and topic, and writes a new document in which every day carries
generated work, problem, and evaluation paragraphs.

Text selection is seeded by the day number, so the same diary always
produces the same document.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("config loaded", zap.String("file", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./diary-rewriter.yaml or ~/.config/diary-rewriter/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("casing", "", "topic lowercasing rules: unicode or turkish (default unicode)")
	rootCmd.PersistentFlags().String("templates", "", "YAML file replacing the built-in template pools")

	_ = viper.BindPFlag("casing", rootCmd.PersistentFlags().Lookup("casing"))
	_ = viper.BindPFlag("templates", rootCmd.PersistentFlags().Lookup("templates"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("diary-rewriter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "diary-rewriter"))
		}
	}

	viper.SetEnvPrefix("DIARY_REWRITER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
