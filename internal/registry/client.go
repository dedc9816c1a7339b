// Copyright Loideroi Labs, 2026. All rights reserved.

// Package registry looks up legal entity identifiers in an external
// GLEIF-style registry. The lookup is strictly best-effort: it is bounded
// by a short timeout and its failure degrades validation to format-only
// identifier checks rather than propagating an error.
// Implements: prd005-registry (R1-R3); docs/ARCHITECTURE § Registry.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/httputil"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// DefaultBaseURL is the public GLEIF API root.
const DefaultBaseURL = "https://api.gleif.org"

const defaultTimeout = 5 * time.Second

// StatusUnknown is reported when the registry has no record for an
// identifier.
const StatusUnknown = "UNKNOWN"

// Record is the subset of a registry entry validation cares about.
type Record struct {
	LEI       string `json:"lei" yaml:"lei"`
	LegalName string `json:"legal_name" yaml:"legal_name"`
	Status    string `json:"status" yaml:"status"`
}

// Client queries the identifier registry.
type Client struct {
	baseURL   string
	userAgent string
	apiToken  string
	client    *http.Client
}

// NewClient builds a registry client from config. Zero-value fields fall
// back to the public GLEIF endpoint and a 5 s timeout.
func NewClient(cfg types.RegistryConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		apiToken:  cfg.APIToken,
		client:    &http.Client{Timeout: timeout},
	}
}

// leiRecordResponse mirrors the JSON:API shape of a GLEIF record.
type leiRecordResponse struct {
	Data struct {
		Attributes struct {
			LEI    string `json:"lei"`
			Entity struct {
				LegalName struct {
					Name string `json:"name"`
				} `json:"legalName"`
			} `json:"entity"`
			Registration struct {
				Status string `json:"status"`
			} `json:"registration"`
		} `json:"attributes"`
	} `json:"data"`
}

// Lookup fetches the registry record for one identifier. A 404 is not an
// error: it returns a record with StatusUnknown so the caller can warn
// about an unknown identifier.
func (c *Client) Lookup(ctx context.Context, lei string) (Record, error) {
	endpoint := c.baseURL + "/api/v1/lei-records/" + url.PathEscape(lei)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Record{}, fmt.Errorf("building registry request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.api+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, req, 0)
	if err != nil {
		return Record{}, fmt.Errorf("registry request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return Record{LEI: lei, Status: StatusUnknown}, nil
	default:
		return Record{}, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	var body leiRecordResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Record{}, fmt.Errorf("decoding registry response: %w", err)
	}

	return Record{
		LEI:       body.Data.Attributes.LEI,
		LegalName: body.Data.Attributes.Entity.LegalName.Name,
		Status:    body.Data.Attributes.Registration.Status,
	}, nil
}

// Status implements the validation orchestrator's RegistryLookup contract.
func (c *Client) Status(ctx context.Context, lei string) (string, error) {
	rec, err := c.Lookup(ctx, lei)
	if err != nil {
		return "", err
	}
	return rec.Status, nil
}
