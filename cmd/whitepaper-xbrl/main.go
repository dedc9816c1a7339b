// Copyright Loideroi Labs, 2026. All rights reserved.

// Package main is the entry point for the whitepaper-xbrl CLI.
// Implements: prd001-fact-model, prd002-inline-tagging, prd003-assembly,
//             prd004-validation, prd006-archive (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/secrets"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the whitepaper-xbrl CLI.
var rootCmd = &cobra.Command{
	Use:   "whitepaper-xbrl",
	Short: "Generate and validate crypto-asset white paper disclosures",
	Long: `whitepaper-xbrl turns a structured white paper record into a single-file
Inline XBRL document and checks it against the disclosure rules: identifier
format and checksum, required field coverage, value plausibility, and
duplicate fact detection.

Each pipeline stage is a subcommand: generate, validate, filings, and
inspect. Generated documents can be archived locally with their validation
outcome for later review.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", "registry-api-token")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./whitepaper-xbrl.yaml or ~/.config/whitepaper-xbrl/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("whitepaper-xbrl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "whitepaper-xbrl"))
		}
	}

	viper.SetEnvPrefix("WHITEPAPER_XBRL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig resolves the stage configuration from the loaded config
// file and environment, with built-in defaults for the directory knobs.
// Command-line flags overlay the result in each subcommand.
func pipelineConfig() types.PipelineConfig {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "warning: ignoring malformed config:", err)
		cfg = types.PipelineConfig{}
	}
	if cfg.Generation.OutputDir == "" {
		cfg.Generation.OutputDir = "output"
	}
	if cfg.Archive.ArchiveDir == "" {
		cfg.Archive.ArchiveDir = "filings"
	}
	return cfg
}

// loadRecord reads a white paper record from a YAML file.
func loadRecord(path string) (*types.WhitepaperData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record %s: %w", path, err)
	}
	var rec types.WhitepaperData
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing record %s: %w", path, err)
	}
	return &rec, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
