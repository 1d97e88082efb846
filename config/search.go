// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/apollo-config/models"
)

// DefaultCandidates lists the file names probed during search, in order.
func DefaultCandidates() []string {
	return []string{
		"apollo.config.json",
		"apollo.config.yaml",
		"apollo.config.yml",
	}
}

// DefaultLoaders returns the format loaders registered by default.
func DefaultLoaders() []Loader {
	return []Loader{JSONLoader{}, YAMLLoader{}}
}

// Loader parses one on-disk config format into a raw document.
type Loader interface {
	// Extensions lists the file extensions (with leading dot) the loader
	// handles.
	Extensions() []string

	// Load reads and parses the file at path.
	Load(path string) (*models.RawConfig, error)
}

// JSONLoader parses apollo.config.json documents.
type JSONLoader struct{}

// Extensions implements [Loader].
func (JSONLoader) Extensions() []string { return []string{".json"} }

// Load implements [Loader].
func (JSONLoader) Load(path string) (*models.RawConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	var doc models.RawConfig
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding json config %s: %w", path, err)
	}

	return &doc, nil
}

// YAMLLoader parses apollo.config.yaml / apollo.config.yml documents.
type YAMLLoader struct{}

// Extensions implements [Loader].
func (YAMLLoader) Extensions() []string { return []string{".yaml", ".yml"} }

// Load implements [Loader].
func (YAMLLoader) Load(path string) (*models.RawConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	var doc models.RawConfig
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding yaml config %s: %w", path, err)
	}

	return &doc, nil
}

// FileSearcher is the default [Searcher]: it probes an ordered list of
// candidate file names against a set of format loaders, walking from the
// start directory up to the filesystem root, and returns the first
// candidate that parses.
type FileSearcher struct {
	candidates []string
	loaders    map[string]Loader
	log        zerolog.Logger
}

// NewFileSearcher builds a searcher over the given candidate names and
// loaders. Loaders are keyed by extension; a later loader claiming an
// already-claimed extension wins.
func NewFileSearcher(candidates []string, loaders []Loader, log zerolog.Logger) *FileSearcher {
	byExt := make(map[string]Loader)
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			byExt[ext] = l
		}
	}

	return &FileSearcher{candidates: candidates, loaders: byExt, log: log}
}

// Search implements [Searcher].
//
// When startPath is itself a file, only that file is loaded and a parse
// failure is fatal. Otherwise the candidate names (or the single fileName
// override) are probed in order in startPath and then in each parent
// directory up to the root; a candidate that exists but fails to parse is
// logged and skipped, except when it was named explicitly via fileName.
func (s *FileSearcher) Search(startPath, fileName string) (*FoundConfig, error) {
	info, err := os.Stat(startPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error inspecting start path: %w", err)
	}

	if err == nil && !info.IsDir() {
		return s.loadFile(startPath)
	}

	names := s.candidates
	if fileName != "" {
		names = []string{fileName}
	}

	// absolute paths make the upward walk terminate at the real root
	dir, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("error resolving start path: %w", err)
	}

	for {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}

			found, err := s.loadFile(path)
			if err != nil {
				if fileName != "" {
					return nil, err
				}
				s.log.Warn().Err(err).Str("path", path).Msg("skipping unparseable config candidate")
				continue
			}

			s.log.Debug().Str("path", path).Msg("config file found")
			return found, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

func (s *FileSearcher) loadFile(path string) (*FoundConfig, error) {
	loader, ok := s.loaders[filepath.Ext(path)]
	if !ok {
		return nil, fmt.Errorf("%w: no loader registered for %s", ErrUnsupportedFormat, path)
	}

	doc, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	return &FoundConfig{Config: doc, FilePath: path}, nil
}
