// Copyright Loideroi Labs, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/filings"
)

var filingsCmd = &cobra.Command{
	Use:   "filings",
	Short: "Manage the local filing archive (list, show, export)",
	Long: `Filings manages the local SQLite archive of generated documents and
their validation outcomes. Use subcommands to list filings, show one
filing with its findings, or export the archive index.`,
}

// --- list subcommand ---

var filingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived filings, newest first",
	RunE:  runFilingsList,
}

func runFilingsList(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.List(context.Background(), listOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No filings found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-12s  %-16s  %-7s  %s\n",
		"ID", "LEI", "Date", "Offering", "Valid", "Errors/Warnings")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, f := range results {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-12s  %-16s  %-7t  %d/%d\n",
			f.ID, f.LEI, f.DocumentDate, f.OfferingType, f.Valid,
			f.ErrorCount, f.WarningCount)
	}

	fmt.Fprintf(os.Stdout, "\n%d filings\n", len(results))
	return nil
}

// --- show subcommand ---

var filingsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one filing with its validation findings",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilingsShow,
}

func runFilingsShow(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	detail, err := store.Show(context.Background(), args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}

	f := detail.Filing
	fmt.Fprintf(os.Stdout, "id:            %s\n", f.ID)
	fmt.Fprintf(os.Stdout, "lei:           %s\n", f.LEI)
	fmt.Fprintf(os.Stdout, "entity:        %s\n", f.EntityName)
	fmt.Fprintf(os.Stdout, "document date: %s\n", f.DocumentDate)
	fmt.Fprintf(os.Stdout, "offering:      %s\n", f.OfferingType)
	fmt.Fprintf(os.Stdout, "document:      %s\n", f.DocumentPath)
	fmt.Fprintf(os.Stdout, "generated:     %s\n", f.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(os.Stdout, "valid:         %t (errors: %d, warnings: %d)\n",
		f.Valid, f.ErrorCount, f.WarningCount)

	if len(detail.Findings) > 0 {
		fmt.Fprintln(os.Stdout, "\nfindings:")
		for _, fd := range detail.Findings {
			fmt.Fprintf(os.Stdout, "  %-7s %-12s %s\n", fd.Severity, fd.RuleID, fd.Message)
		}
	}
	return nil
}

// --- export subcommand ---

var filingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the archive index to YAML",
	Long: `Export writes the archive index (or a filtered subset) to
[archive-dir]/export.yaml. Supports the same filter flags as list.`,
	RunE: runFilingsExport,
}

func runFilingsExport(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ExportYAML(context.Background(), listOptsFromFlags(cmd)); err != nil {
		return err
	}

	archiveDir, _ := cmd.Flags().GetString("archive-dir")
	fmt.Println("Exported to", filepath.Join(archiveDir, "export.yaml"))
	return nil
}

// --- shared helpers ---

func openArchive(cmd *cobra.Command) (*filings.Store, error) {
	cfg := pipelineConfig().Archive
	if archiveDir, _ := cmd.Flags().GetString("archive-dir"); archiveDir != "" {
		cfg.ArchiveDir = archiveDir
	}
	if maxResults, _ := cmd.Flags().GetInt("max-results"); maxResults > 0 {
		cfg.MaxResults = maxResults
	}
	return filings.NewStore(cfg)
}

func listOptsFromFlags(cmd *cobra.Command) filings.ListOptions {
	lei, _ := cmd.Flags().GetString("lei")
	offering, _ := cmd.Flags().GetString("offering-type")
	limit, _ := cmd.Flags().GetInt("limit")
	return filings.ListOptions{
		LEI:          lei,
		OfferingType: offering,
		MaxResults:   limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	filingsCmd.PersistentFlags().String("archive-dir", "", "base directory for the filing archive (default \"filings\")")
	filingsCmd.PersistentFlags().Int("max-results", 0, "default maximum number of listed filings (default 20)")
	filingsCmd.PersistentFlags().String("lei", "", "filter by offeror identifier")
	filingsCmd.PersistentFlags().String("offering-type", "", "filter by offering type: utility, asset-referenced, e-money, other")
	filingsCmd.PersistentFlags().Int("limit", 0, "maximum results (0 = use default)")

	filingsListCmd.Flags().Bool("json", false, "output results as JSON")
	filingsShowCmd.Flags().Bool("json", false, "output the filing as JSON")

	filingsCmd.AddCommand(filingsListCmd)
	filingsCmd.AddCommand(filingsShowCmd)
	filingsCmd.AddCommand(filingsExportCmd)

	rootCmd.AddCommand(filingsCmd)
}
