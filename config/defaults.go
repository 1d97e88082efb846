// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/apollo-config/models"

// Built-in default values layered underneath every resolved document.
const (
	// DefaultTag is the schema tag assumed when no specifier carries one.
	DefaultTag = "current"

	// DefaultServiceEndpoint is the introspection endpoint assumed for a
	// service project that does not configure one.
	DefaultServiceEndpoint = "http://localhost:4000/graphql"

	// DefaultTagName is the template-literal tag operations are searched
	// under when the client block does not configure one.
	DefaultTagName = "gql"

	defaultEngineEndpoint = "https://engine-graphql.apollographql.com/api/graphql"
	defaultEngineFrontend = "https://engine.apollographql.com"
)

// defaultStatsWindowFrom covers the trailing 24 hours up to now. The upper
// bound is 0, meaning "no explicit bound before now".
const defaultStatsWindowFrom = -86400

func defaultIncludes() []string {
	return []string{"src/**/*.{ts,tsx,js,jsx,graphql}"}
}

func defaultExcludes() []string {
	return []string{"**/node_modules", "**/__tests__"}
}

// DefaultClientConfig returns a fresh copy of the built-in client defaults.
// A fresh copy is returned on every call so that no caller can mutate a
// shared defaults object between resolutions.
func DefaultClientConfig() *models.ClientConfigFormat {
	addTypename := true

	return &models.ClientConfigFormat{
		Includes:               defaultIncludes(),
		Excludes:               defaultExcludes(),
		TagName:                DefaultTagName,
		ClientOnlyDirectives:   []string{"connection", "type"},
		ClientSchemaDirectives: []string{"client", "rest"},
		AddTypename:            &addTypename,
		StatsWindow: &models.StatsWindow{
			From: defaultStatsWindowFrom,
			To:   0,
		},
	}
}

// DefaultServiceConfig returns a fresh copy of the built-in service defaults.
func DefaultServiceConfig() *models.ServiceConfigFormat {
	return &models.ServiceConfigFormat{
		Includes: defaultIncludes(),
		Excludes: defaultExcludes(),
		Endpoint: &models.RemoteServiceConfig{
			URL: DefaultServiceEndpoint,
		},
	}
}

// DefaultEngineConfig returns a fresh copy of the built-in engine defaults.
func DefaultEngineConfig() *models.EngineConfig {
	return &models.EngineConfig{
		Endpoint: defaultEngineEndpoint,
		Frontend: defaultEngineFrontend,
	}
}
