// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// ResolveSettings carries the caller's input to [Resolve]. The zero value
// is usable: missing fields are layered from process environment variables
// and built-in defaults before resolution starts.
type ResolveSettings struct {
	// StartPath is the file or directory the search starts from.
	// Defaults to ".".
	StartPath string

	// FileName overrides the candidate file names: when set, only this
	// name is probed. Also settable via APOLLO_CONFIG_FILE.
	FileName string

	// RequireConfig makes a missing config file fatal instead of falling
	// back to synthesized defaults.
	RequireConfig bool

	// Name is the caller-supplied project name.
	Name string

	// Type is the caller-supplied project kind, [KindClient] or
	// [KindService]. Empty means "infer from the document".
	Type Kind

	// Searcher locates and parses the config document. Defaults to a
	// [FileSearcher] over [DefaultCandidates] and [DefaultLoaders].
	Searcher Searcher

	// Secrets reads the project's secrets file. Defaults to a
	// [DotenvStore].
	Secrets SecretStore

	// Logger receives debug output from the resolution steps. Defaults
	// to a no-op logger.
	Logger *zerolog.Logger
}

// envSettings is the process-environment overlay for [ResolveSettings].
type envSettings struct {
	FileName string `env:"APOLLO_CONFIG_FILE"`
}

// envSecrets is the process-environment fallback consulted when the
// project's secrets file does not define the engine API key.
type envSecrets struct {
	APIKey string `env:"ENGINE_API_KEY"`
}

func engineKeyFromEnv() (string, error) {
	var secrets envSecrets
	if err := env.Parse(&secrets); err != nil {
		return "", fmt.Errorf("error getting env secrets: %w", err)
	}

	return secrets.APIKey, nil
}

// settingsBuilder assembles the effective [ResolveSettings] by layering
// sources in priority order (earlier layers win for non-zero fields):
//  1. Caller-supplied settings
//  2. Environment variables
//  3. Built-in defaults
type settingsBuilder struct {
	layers []*ResolveSettings
	err    error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		layers: make([]*ResolveSettings, 0, 3),
	}
}

func (b *settingsBuilder) build() (*ResolveSettings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(ResolveSettings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	// collaborators depend on the merged logger, so they are filled last
	if settings.Logger == nil {
		nop := zerolog.Nop()
		settings.Logger = &nop
	}
	if settings.Searcher == nil {
		settings.Searcher = NewFileSearcher(DefaultCandidates(), DefaultLoaders(), *settings.Logger)
	}
	if settings.Secrets == nil {
		settings.Secrets = NewDotenvStore(*settings.Logger)
	}

	return settings, nil
}

func (b *settingsBuilder) withCaller(settings ResolveSettings) *settingsBuilder {
	b.layers = append(b.layers, &settings)
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := &envSettings{}
	if err := env.Parse(envCfg); err != nil {
		b.err = fmt.Errorf("error getting env settings: %w", err)
		return b
	}

	b.layers = append(b.layers, &ResolveSettings{FileName: envCfg.FileName})
	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.layers = append(b.layers, &ResolveSettings{StartPath: "."})
	return b
}
