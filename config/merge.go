// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/apollo-config/models"

// Explicit structural merge over the known document shapes.
//
// The rule everywhere is document-wins: a value already present in dst
// survives, and only absent values are filled from def. Scalars count as
// absent when zero, slices when nil (a present slice, even an empty one,
// fully replaces the default slice), nested objects are merged field by
// field. The merge is idempotent: applying the same defaults twice is the
// same as applying them once.

// mergeUnder layers the blocks of def underneath dst, block by block.
// A block absent from def leaves the corresponding dst block untouched.
func mergeUnder(dst, def *models.RawConfig) {
	if def == nil {
		return
	}

	if def.Client != nil {
		if dst.Client == nil {
			dst.Client = &models.ClientConfigFormat{}
		}
		mergeClient(dst.Client, def.Client)
	}

	if def.Service != nil {
		if dst.Service == nil {
			dst.Service = &models.ServiceConfigFormat{}
		}
		mergeService(dst.Service, def.Service)
	}

	if def.Engine != nil {
		if dst.Engine == nil {
			dst.Engine = &models.EngineConfig{}
		}
		mergeEngine(dst.Engine, def.Engine)
	}
}

func mergeClient(dst, def *models.ClientConfigFormat) {
	if dst.Service == nil {
		dst.Service = def.Service
	}
	if dst.Includes == nil {
		dst.Includes = def.Includes
	}
	if dst.Excludes == nil {
		dst.Excludes = def.Excludes
	}
	if dst.TagName == "" {
		dst.TagName = def.TagName
	}
	if dst.ClientOnlyDirectives == nil {
		dst.ClientOnlyDirectives = def.ClientOnlyDirectives
	}
	if dst.ClientSchemaDirectives == nil {
		dst.ClientSchemaDirectives = def.ClientSchemaDirectives
	}
	if dst.AddTypename == nil {
		dst.AddTypename = def.AddTypename
	}
	// the stats window is a bound pair and is kept or replaced wholesale
	if dst.StatsWindow == nil {
		dst.StatsWindow = def.StatsWindow
	}
	if dst.Name == "" {
		dst.Name = def.Name
	}
	if dst.ReferenceID == "" {
		dst.ReferenceID = def.ReferenceID
	}
	if dst.Version == "" {
		dst.Version = def.Version
	}
}

func mergeService(dst, def *models.ServiceConfigFormat) {
	if dst.Name == "" {
		dst.Name = def.Name
	}
	if dst.LocalSchemaFile == "" {
		dst.LocalSchemaFile = def.LocalSchemaFile
	}
	if dst.Includes == nil {
		dst.Includes = def.Includes
	}
	if dst.Excludes == nil {
		dst.Excludes = def.Excludes
	}

	// a service reading its schema from disk gets no endpoint default
	if def.Endpoint != nil && dst.LocalSchemaFile == "" {
		if dst.Endpoint == nil {
			dst.Endpoint = &models.RemoteServiceConfig{}
		}
		mergeEndpoint(dst.Endpoint, def.Endpoint)
	}
}

func mergeEndpoint(dst, def *models.RemoteServiceConfig) {
	if dst.Name == "" {
		dst.Name = def.Name
	}
	if dst.URL == "" {
		dst.URL = def.URL
	}

	if dst.Headers == nil {
		dst.Headers = def.Headers
	} else {
		for k, v := range def.Headers {
			if _, ok := dst.Headers[k]; !ok {
				dst.Headers[k] = v
			}
		}
	}
}

func mergeEngine(dst, def *models.EngineConfig) {
	if dst.Endpoint == "" {
		dst.Endpoint = def.Endpoint
	}
	if dst.Frontend == "" {
		dst.Frontend = def.Frontend
	}
	if dst.APIKey == "" {
		dst.APIKey = def.APIKey
	}
}

// withDefaults performs the ordered defaults layering on a resolved
// document: client defaults underneath an existing client block, service
// defaults underneath an existing service block, then the secret-derived
// API key folded in over the engine block, and finally the engine defaults
// underneath the result. Folding the key in before the engine-defaults pass
// keeps the secret from being clobbered by the broad final merge.
func withDefaults(doc *models.RawConfig, apiKey string) *models.RawConfig {
	if doc.Client != nil {
		mergeClient(doc.Client, DefaultClientConfig())
	}

	if doc.Service != nil {
		mergeService(doc.Service, DefaultServiceConfig())
	}

	if apiKey != "" {
		if doc.Engine == nil {
			doc.Engine = &models.EngineConfig{}
		}
		doc.Engine.APIKey = apiKey
	}

	if doc.Engine == nil {
		doc.Engine = DefaultEngineConfig()
	} else {
		mergeEngine(doc.Engine, DefaultEngineConfig())
	}

	return doc
}
