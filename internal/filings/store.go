// Copyright Loideroi Labs, 2026. All rights reserved.

// Package filings persists generated white paper documents and their
// validation outcomes in a local SQLite archive.
// Implements: prd006-archive (R1-R4);
//
//	docs/ARCHITECTURE § Filing Archive.
package filings

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

const (
	documentsDir = "documents"
	dbFile       = "filings.db"
)

// Filing is one archived white paper document with its validation
// outcome summary.
type Filing struct {
	ID           string    `json:"id" yaml:"id"`
	LEI          string    `json:"lei" yaml:"lei"`
	EntityName   string    `json:"entity_name" yaml:"entity_name"`
	DocumentDate string    `json:"document_date" yaml:"document_date"`
	OfferingType string    `json:"offering_type" yaml:"offering_type"`
	DocumentPath string    `json:"document_path" yaml:"document_path"`
	GeneratedAt  time.Time `json:"generated_at" yaml:"generated_at"`
	Valid        bool      `json:"valid" yaml:"valid"`
	ErrorCount   int       `json:"error_count" yaml:"error_count"`
	WarningCount int       `json:"warning_count" yaml:"warning_count"`
}

// Finding is one validation error or warning attached to a filing.
type Finding struct {
	RuleID   string `json:"rule_id" yaml:"rule_id"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
	Element  string `json:"element,omitempty" yaml:"element,omitempty"`
	Field    string `json:"field,omitempty" yaml:"field,omitempty"`
}

// Detail is a filing with its full findings list.
type Detail struct {
	Filing   Filing    `json:"filing" yaml:"filing"`
	Findings []Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// ListOptions holds filters for archive queries.
type ListOptions struct {
	// LEI filters by the offeror identifier.
	LEI string

	// OfferingType filters by offering type.
	OfferingType string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Store manages the filing archive SQLite database.
type Store struct {
	db         *sql.DB
	archiveDir string
	maxResults int
}

// NewStore opens or creates the archive database at
// archiveDir/filings.db and creates the schema if it does not exist
// (R1.2, R1.3).
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(cfg.ArchiveDir, documentsDir), 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(cfg.ArchiveDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		archiveDir: cfg.ArchiveDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS filings (
			id TEXT PRIMARY KEY,
			lei TEXT NOT NULL,
			entity_name TEXT,
			document_date TEXT,
			offering_type TEXT,
			document_path TEXT,
			generated_at TEXT NOT NULL,
			valid INTEGER NOT NULL,
			error_count INTEGER NOT NULL,
			warning_count INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_filings_lei ON filings(lei)`,
		`CREATE INDEX IF NOT EXISTS idx_filings_offering_type ON filings(offering_type)`,
		`CREATE TABLE IF NOT EXISTS findings (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			filing_id TEXT NOT NULL REFERENCES filings(id),
			rule_id TEXT NOT NULL,
			severity TEXT NOT NULL,
			message TEXT NOT NULL,
			element TEXT,
			field TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_findings_filing_id ON findings(filing_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return nil
}

// Record copies the generated document at documentPath into the archive
// and inserts the filing with its validation findings (R2.1-R2.4).
// It returns the stored filing with its assigned identifier.
func (s *Store) Record(ctx context.Context, rec *types.WhitepaperData, documentPath string, result *types.ValidationResult) (Filing, error) {
	id := uuid.NewString()

	archivedPath, err := s.copyDocument(documentPath, id)
	if err != nil {
		return Filing{}, err
	}

	filing := Filing{
		ID:           id,
		LEI:          rec.Offeror.LEI,
		EntityName:   rec.Offeror.Name,
		DocumentDate: rec.DocumentDate.Format("2006-01-02"),
		OfferingType: string(rec.OfferingType),
		DocumentPath: archivedPath,
		GeneratedAt:  time.Now().UTC(),
		Valid:        result.Valid,
		ErrorCount:   len(result.Errors),
		WarningCount: len(result.Warnings),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Filing{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO filings (id, lei, entity_name, document_date, offering_type,
			document_path, generated_at, valid, error_count, warning_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		filing.ID, filing.LEI, filing.EntityName, filing.DocumentDate,
		filing.OfferingType, filing.DocumentPath,
		filing.GeneratedAt.Format(time.RFC3339Nano),
		boolToInt(filing.Valid), filing.ErrorCount, filing.WarningCount,
	)
	if err != nil {
		return Filing{}, fmt.Errorf("inserting filing: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO findings (filing_id, rule_id, severity, message, element, field)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Filing{}, fmt.Errorf("preparing findings insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range append(append([]types.ValidationError{}, result.Errors...), result.Warnings...) {
		if _, err := stmt.ExecContext(ctx,
			filing.ID, f.RuleID, string(f.Severity), f.Message, f.Element, f.Field,
		); err != nil {
			return Filing{}, fmt.Errorf("inserting finding %s: %w", f.RuleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Filing{}, fmt.Errorf("committing filing: %w", err)
	}

	return filing, nil
}

// copyDocument places the document under archiveDir/documents/[id].xhtml.
func (s *Store) copyDocument(documentPath, id string) (string, error) {
	src, err := os.Open(documentPath)
	if err != nil {
		return "", fmt.Errorf("opening document %s: %w", documentPath, err)
	}
	defer src.Close()

	dstPath := filepath.Join(s.archiveDir, documentsDir, id+".xhtml")
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("creating archived document: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copying document: %w", err)
	}

	return dstPath, nil
}

// List returns archived filings ordered newest first (R3.1, R3.2).
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Filing, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(
		`SELECT id, lei, entity_name, document_date, offering_type,
			document_path, generated_at, valid, error_count, warning_count
		FROM filings
		WHERE 1=1`)

	if opts.LEI != "" {
		qb.WriteString(` AND lei = ?`)
		args = append(args, opts.LEI)
	}
	if opts.OfferingType != "" {
		qb.WriteString(` AND offering_type = ?`)
		args = append(args, opts.OfferingType)
	}

	qb.WriteString(` ORDER BY generated_at DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying filings: %w", err)
	}
	defer rows.Close()

	var filings []Filing
	for rows.Next() {
		f, err := scanFiling(rows)
		if err != nil {
			return nil, err
		}
		filings = append(filings, f)
	}

	return filings, rows.Err()
}

// Show returns one filing with its findings (R3.3).
func (s *Store) Show(ctx context.Context, id string) (Detail, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, lei, entity_name, document_date, offering_type,
			document_path, generated_at, valid, error_count, warning_count
		FROM filings WHERE id = ?`, id)

	filing, err := scanFiling(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Detail{}, fmt.Errorf("filing %s not found", id)
		}
		return Detail{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT rule_id, severity, message, element, field
		FROM findings WHERE filing_id = ? ORDER BY rowid`, id)
	if err != nil {
		return Detail{}, fmt.Errorf("querying findings: %w", err)
	}
	defer rows.Close()

	detail := Detail{Filing: filing}
	for rows.Next() {
		var (
			f       Finding
			element sql.NullString
			field   sql.NullString
		)
		if err := rows.Scan(&f.RuleID, &f.Severity, &f.Message, &element, &field); err != nil {
			return Detail{}, fmt.Errorf("scanning finding: %w", err)
		}
		f.Element = element.String
		f.Field = field.String
		detail.Findings = append(detail.Findings, f)
	}

	return detail, rows.Err()
}

const exportLimit = 100000

// ExportYAML writes the archive index to archiveDir/export.yaml (R4.1).
// It supports the same filters as List (R4.2).
func (s *Store) ExportYAML(ctx context.Context, opts ListOptions) error {
	opts.MaxResults = exportLimit
	filings, err := s.List(ctx, opts)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	path := filepath.Join(s.archiveDir, "export.yaml")
	data, err := yaml.Marshal(filings)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFiling(row scanner) (Filing, error) {
	var (
		f           Filing
		entityName  sql.NullString
		docDate     sql.NullString
		offering    sql.NullString
		docPath     sql.NullString
		generatedAt string
		valid       int
	)

	err := row.Scan(
		&f.ID, &f.LEI, &entityName, &docDate, &offering,
		&docPath, &generatedAt, &valid, &f.ErrorCount, &f.WarningCount,
	)
	if err != nil {
		return Filing{}, err
	}

	f.EntityName = entityName.String
	f.DocumentDate = docDate.String
	f.OfferingType = offering.String
	f.DocumentPath = docPath.String
	f.Valid = valid != 0

	ts, err := time.Parse(time.RFC3339Nano, generatedAt)
	if err != nil {
		return Filing{}, fmt.Errorf("parsing generated_at: %w", err)
	}
	f.GeneratedAt = ts

	return f, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
