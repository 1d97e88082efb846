// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/apollo-config/models"

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/config_mock.go -package=mock

// FoundConfig is a successful search result: the first candidate document
// that parsed, together with the file it came from.
type FoundConfig struct {
	// Config is the parsed, un-defaulted document.
	Config *models.RawConfig

	// FilePath is the location the document was loaded from.
	FilePath string
}

// Searcher probes candidate config locations and returns the first
// successfully parsed document.
type Searcher interface {
	// Search looks for a config document starting at startPath. When
	// fileName is non-empty only that file name is considered. A nil
	// result with a nil error means no document was found; that is not
	// an error at this level.
	Search(startPath, fileName string) (*FoundConfig, error)
}

// SecretStore reads environment-derived secrets for a project directory.
type SecretStore interface {
	// Read returns the flat key/value secrets mapping for dir, or a nil
	// map with a nil error when no secrets file exists there.
	Read(dir string) (map[string]string, error)
}
