// Copyright Loideroi Labs, 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "whitepaper-xbrl/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// GenerationConfig holds settings for the document generation stage.
// Per prd003-assembly R5.1.
type GenerationConfig struct {
	// OutputDir is the directory generated documents are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// SchemaRef is the taxonomy schema reference embedded in the header.
	SchemaRef string `json:"schema_ref" yaml:"schema_ref" mapstructure:"schema_ref"`
}

// RegistryConfig holds settings for the optional LEI registry lookup.
// Per prd005-registry R1.1, R1.4: the lookup is best-effort, bounded by
// Timeout, and its failure never blocks validation.
type RegistryConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Enabled turns the lookup on without the --registry flag.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// BaseURL is the registry API root (default: the GLEIF public API).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIToken is an optional bearer token; usually supplied via
	// .secrets/registry-api-token rather than the config file.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty" mapstructure:"api_token"`
}

// ValidationConfig holds settings for the validation stage.
// Per prd004-validation R5.1-R5.3.
type ValidationConfig struct {
	// SupportedLanguages lists the 2-letter codes accepted without a
	// warning. Empty means the built-in EU set.
	SupportedLanguages []string `json:"supported_languages,omitempty" yaml:"supported_languages,omitempty" mapstructure:"supported_languages"`

	Registry RegistryConfig `json:"registry" yaml:"registry" mapstructure:"registry"`
}

// ArchiveConfig holds settings for the filing archive stage.
// Per prd006-archive R1.1.
type ArchiveConfig struct {
	// ArchiveDir is the base directory for the archive (contains
	// filings.db and documents/).
	ArchiveDir string `json:"archive_dir" yaml:"archive_dir" mapstructure:"archive_dir"`

	// MaxResults is the default maximum number of listed filings.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// PipelineConfig groups all stage configurations. The CLI unmarshals the
// loaded config file into it and overlays command-line flags.
type PipelineConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation" mapstructure:"generation"`
	Validation ValidationConfig `json:"validation" yaml:"validation" mapstructure:"validation"`
	Archive    ArchiveConfig    `json:"archive" yaml:"archive" mapstructure:"archive"`
}
