// Copyright Loideroi Labs, 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: registry-api-token.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads secret files from dir and returns a map of key name to trimmed
// value. When keys are given only those filenames are read; otherwise every
// regular file in the directory is loaded. A missing directory or missing
// key files are not errors; Load returns what it found. Unreadable files
// produce a warning on stderr but do not abort.
func Load(dir string, keys ...string) (map[string]string, error) {
	secrets := make(map[string]string)

	if len(keys) > 0 {
		for _, key := range keys {
			if value, ok := readSecret(dir, key); ok {
				secrets[key] = value
			}
		}
		return secrets, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return secrets, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if value, ok := readSecret(dir, name); ok {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// readSecret loads one key file. A missing file is silently skipped; any
// other read error warns on stderr. Empty values are dropped.
func readSecret(dir, name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
		}
		return "", false
	}
	value := strings.TrimSpace(string(data))
	return value, value != ""
}
