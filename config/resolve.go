// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/apollo-config/models"
)

// Resolve loads, reconciles, and defaults a project configuration.
//
// The pipeline is: probe the candidate config locations for the first
// parseable document; read the project's secrets file; reconcile the
// caller-supplied type and name with the document and the secret-derived
// name; synthesize any missing block so the document is structurally
// consistent; then layer the built-in defaults underneath.
//
// It fails with [ErrNoConfigFound] when a config was required but none was
// located, with [ErrEmptyConfig] when a located document defines neither a
// client nor a service block, and with [ErrUnresolvableType] when neither
// the caller nor the document indicates the project kind. No partial
// [Config] is returned on failure.
func Resolve(settings ResolveSettings) (*Config, error) {
	s, err := newSettingsBuilder().
		withCaller(settings).
		withEnv().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if s.Type != "" && s.Type != KindClient && s.Type != KindService {
		return nil, fmt.Errorf("%w: unsupported project type %q", ErrUnresolvableType, s.Type)
	}

	found, err := s.Searcher.Search(s.StartPath, s.FileName)
	if err != nil {
		return nil, fmt.Errorf("error searching for config file: %w", err)
	}

	if found == nil && s.RequireConfig {
		return nil, fmt.Errorf(
			"%w: no configuration file found for %s; create an apollo.config.yaml (or apollo.config.json) at the project root",
			ErrNoConfigFound, s.StartPath,
		)
	}

	if found != nil && found.Config.IsEmpty() {
		return nil, fmt.Errorf(
			"%w: config file found at %s defines neither a client nor a service block",
			ErrEmptyConfig, found.FilePath,
		)
	}

	projectDir := startDir(s.StartPath)

	apiKey, err := resolveAPIKey(s, projectDir)
	if err != nil {
		return nil, err
	}
	nameFromKey := models.ServiceNameFromKey(apiKey)

	var doc *models.RawConfig
	if found != nil {
		doc = found.Config
	}

	resolvedType, resolvedName, err := resolveTypeAndName(s, doc, nameFromKey)
	if err != nil {
		return nil, err
	}

	// a synthesized block keeps the document structurally consistent when
	// nothing was loaded or when a name was resolved out of band
	if doc == nil || resolvedName != "" {
		doc = synthesize(doc, resolvedType, resolvedName)
	}

	fileURI := projectDir
	if found != nil {
		fileURI = found.FilePath
	}

	cfg := NewConfig(withDefaults(doc, apiKey), fileURI)
	if resolvedName != "" {
		name, _ := models.ParseServiceSpecifier(resolvedName)
		cfg.SetName(name)
	}

	s.Logger.Debug().
		Str("type", string(resolvedType)).
		Str("name", cfg.Name()).
		Str("file", fileURI).
		Msg("project configuration resolved")

	return cfg, nil
}

// resolveTypeAndName reconciles the four name/type signals: the caller's
// explicit type and name, the loaded document's blocks, and the name
// derived from the secret value.
//
// An explicit caller type is always honored. The name precedence, highest
// first: a bare string specifier in the document's client block (kept
// whole, so a trailing @tag survives into the resolved document), the
// caller-supplied name, the secret-derived name, absent.
func resolveTypeAndName(s *ResolveSettings, doc *models.RawConfig, nameFromKey string) (Kind, string, error) {
	resolvedType := s.Type
	resolvedName := s.Name

	specifier := ""
	if doc != nil && doc.Client != nil && doc.Client.Service.IsString() {
		specifier = doc.Client.Service.Specifier
	}

	switch {
	case resolvedType != "":
		if resolvedType == KindClient && specifier != "" {
			resolvedName = specifier
		} else if resolvedName == "" {
			resolvedName = nameFromKey
		}

	case doc != nil && doc.Client != nil:
		resolvedType = KindClient
		if specifier != "" {
			resolvedName = specifier
		} else if resolvedName == "" {
			resolvedName = nameFromKey
		}

	case doc != nil && doc.Service != nil:
		resolvedType = KindService
		if resolvedName == "" {
			resolvedName = nameFromKey
		}

	default:
		return "", "", fmt.Errorf(
			"%w: pass an explicit project type or add a client or service block to the config file",
			ErrUnresolvableType,
		)
	}

	return resolvedType, resolvedName, nil
}

// synthesize builds the block matching the resolved type: base glob
// defaults underneath, any loaded block's fields on top, and the resolved
// name injected as the client's service reference or the service's name.
func synthesize(doc *models.RawConfig, kind Kind, name string) *models.RawConfig {
	out := &models.RawConfig{}
	if doc != nil {
		*out = *doc
	}

	switch kind {
	case KindClient:
		client := &models.ClientConfigFormat{}
		if out.Client != nil {
			*client = *out.Client
		}
		if client.Includes == nil {
			client.Includes = defaultIncludes()
		}
		if client.Excludes == nil {
			client.Excludes = defaultExcludes()
		}
		if name != "" {
			client.Service = &models.ServiceReference{Specifier: name}
		}
		out.Client = client

	case KindService:
		svc := &models.ServiceConfigFormat{}
		if out.Service != nil {
			*svc = *out.Service
		}
		if svc.Includes == nil {
			svc.Includes = defaultIncludes()
		}
		if svc.Excludes == nil {
			svc.Excludes = defaultExcludes()
		}
		if name != "" {
			svc.Name = name
		}
		out.Service = svc
	}

	return out
}

// resolveAPIKey prefers the project's secrets file and falls back to the
// process environment. A missing secrets file is not an error.
func resolveAPIKey(s *ResolveSettings, dir string) (string, error) {
	secrets, err := s.Secrets.Read(dir)
	if err != nil {
		return "", fmt.Errorf("error reading secrets: %w", err)
	}

	if key := secrets[EngineAPIKeyVar]; key != "" {
		return key, nil
	}

	return engineKeyFromEnv()
}

// startDir maps the start path onto the directory the secrets file is
// expected in: the path itself when it is a directory, its parent when it
// is a file, and the path as given when it does not exist yet.
func startDir(startPath string) string {
	info, err := os.Stat(startPath)
	if err == nil && !info.IsDir() {
		return filepath.Dir(startPath)
	}

	return startPath
}
