// Copyright Loideroi Labs, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/registry"
	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/validate"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a white paper record against the disclosure rules",
	Long: `Validate checks a white paper record without generating a document:
identifier format and checksum, required field coverage for the offering
type, value plausibility, and duplicate fact detection.

With --registry the offeror identifier is also looked up in the external
registry; lookup failures degrade to a warning and never block the run.
The command exits non-zero when any rule reports an error.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	recordPath, _ := cmd.Flags().GetString("record")
	if recordPath == "" {
		return fmt.Errorf("--record is required")
	}

	rec, err := loadRecord(recordPath)
	if err != nil {
		return err
	}

	cfg := pipelineConfig().Validation
	opts := validate.Options{
		SupportedLanguages: cfg.SupportedLanguages,
	}

	// The registry lookup runs when the flag asks for it or the config
	// enables it permanently.
	useRegistry, _ := cmd.Flags().GetBool("registry")
	if useRegistry || cfg.Registry.Enabled {
		rcfg := cfg.Registry
		rcfg.APIToken = secretDefault("registry-api-token", rcfg.APIToken)
		if rcfg.UserAgent == "" {
			rcfg.UserAgent = "whitepaper-xbrl/" + version
		}
		opts.Registry = registry.NewClient(rcfg)
	}

	result := validate.Run(context.Background(), rec, opts)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printResult(result)
	}

	if !result.Valid {
		cmd.SilenceUsage = true
		return fmt.Errorf("validation failed: %d error(s), %d warning(s)",
			len(result.Errors), len(result.Warnings))
	}
	return nil
}

func printResult(result *types.ValidationResult) {
	for _, cat := range result.Categories {
		status := "ok"
		if cat.Failed > 0 {
			status = "FAILED"
		}
		fmt.Fprintf(os.Stdout, "%-12s %s (passed: %d, failed: %d)\n",
			cat.Name, status, cat.Passed, cat.Failed)
	}

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stdout, "ERROR   %-12s %s\n", e.RuleID, e.Message)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stdout, "WARNING %-12s %s\n", w.RuleID, w.Message)
	}

	if result.Valid {
		fmt.Fprintf(os.Stdout, "\nvalid (%d warning(s))\n", len(result.Warnings))
	}
}

func init() {
	validateCmd.Flags().String("record", "", "path to the white paper record (YAML)")
	validateCmd.Flags().Bool("registry", false, "look up the offeror identifier in the external registry")
	validateCmd.Flags().Bool("json", false, "output the full result as JSON")

	rootCmd.AddCommand(validateCmd)
}
