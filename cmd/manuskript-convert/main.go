// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the manuskript-convert CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/manuskript-convert/internal/convert"
	"github.com/pdiddy/manuskript-convert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the conversion. The whole tool is one pass, so there is no
// subcommand for it.
var rootCmd = &cobra.Command{
	Use:   "manuskript-convert <manuskript-project> <destination>",
	Short: "Convert a Manuskript project into a cheese-paper project",
	Long: `manuskript-convert reads a Manuskript project directory and writes an
equivalent cheese-paper project: TOML metadata headers, a text/ tree mirroring
the outline, converted character sheets, and the worldbuilding hierarchy.

The conversion is one-shot and one-way. The destination must not exist yet, or
must be an empty directory. Characters are converted first so that scene and
folder point-of-view references can be rewritten to the new identifiers.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.ConvertConfig{
			SourceDir:         args[0],
			DestDir:           args[1],
			NormalizeNewlines: viper.GetBool("normalize_newlines"),
			ReportPath:        viper.GetString("report"),
		}

		if cmd.Flags().Changed("no-normalize-newlines") {
			noNormalize, _ := cmd.Flags().GetBool("no-normalize-newlines")
			cfg.NormalizeNewlines = !noNormalize
		}
		if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
			cfg.ReportPath = reportPath
		}

		res, err := convert.Run(cfg, os.Stderr)
		if err != nil {
			return err
		}

		if cfg.ReportPath != "" {
			if err := convert.WriteReport(cfg.ReportPath, cfg, res); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Report written to %s\n", cfg.ReportPath)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./manuskript-convert.yaml or ~/.config/manuskript-convert/config.yaml)")
	rootCmd.Flags().Bool("no-normalize-newlines", false,
		"by default, every run of one or more newlines is converted to a double newline; this option keeps newlines in place")
	rootCmd.Flags().String("report", "", "write a YAML conversion report to this path")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("manuskript-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "manuskript-convert"))
		}
	}

	viper.SetDefault("normalize_newlines", true)

	viper.SetEnvPrefix("MANUSKRIPT_CONVERT")
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
