// Copyright Loideroi Labs, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/assemble"
	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/filings"
	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/validate"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an Inline XBRL white paper document from a record",
	Long: `Generate reads a white paper record (YAML), builds its fact model, and
renders a single self-contained XHTML document with inline tags, hidden
enumeration facts, and continuation chains for long narratives.

With --archive the document is also validated and stored in the local
filing archive together with the validation outcome.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	recordPath, _ := cmd.Flags().GetString("record")
	if recordPath == "" {
		return fmt.Errorf("--record is required")
	}

	rec, err := loadRecord(recordPath)
	if err != nil {
		return err
	}

	cfg := pipelineConfig()
	if outDir, _ := cmd.Flags().GetString("out"); outDir != "" {
		cfg.Generation.OutputDir = outDir
	}
	if schemaRef, _ := cmd.Flags().GetString("schema-ref"); schemaRef != "" {
		cfg.Generation.SchemaRef = schemaRef
	}

	doc, err := assemble.Generate(rec, cfg.Generation)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Generation.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(cfg.Generation.OutputDir, documentFilename(rec))
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s (%d bytes)\n", outPath, len(doc))

	archive, _ := cmd.Flags().GetBool("archive")
	if !archive {
		return nil
	}

	ctx := context.Background()
	result := validate.Run(ctx, rec, validate.Options{})

	if archiveDir, _ := cmd.Flags().GetString("archive-dir"); archiveDir != "" {
		cfg.Archive.ArchiveDir = archiveDir
	}
	store, err := filings.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	filing, err := store.Record(ctx, rec, outPath, result)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "archived filing %s (valid: %t, errors: %d, warnings: %d)\n",
		filing.ID, filing.Valid, filing.ErrorCount, filing.WarningCount)

	return nil
}

// documentFilename derives a stable output name from the record: the
// offeror LEI and document date, falling back to "whitepaper" when the
// date is unset.
func documentFilename(rec *types.WhitepaperData) string {
	parts := []string{"whitepaper"}
	if rec.Offeror.LEI != "" {
		parts = append(parts, rec.Offeror.LEI)
	}
	if !rec.DocumentDate.IsZero() {
		parts = append(parts, rec.DocumentDate.Format("2006-01-02"))
	}
	return strings.Join(parts, "-") + ".xhtml"
}

func init() {
	generateCmd.Flags().String("record", "", "path to the white paper record (YAML)")
	generateCmd.Flags().String("out", "", "directory for the generated document (default \"output\")")
	generateCmd.Flags().String("schema-ref", "", "taxonomy schema reference (default: built-in)")
	generateCmd.Flags().Bool("archive", false, "validate and store the document in the filing archive")
	generateCmd.Flags().String("archive-dir", "", "base directory for the filing archive (default \"filings\")")

	rootCmd.AddCommand(generateCmd)
}
