// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RawConfig is a loaded, un-defaulted configuration document.
//
// Both Client and Service may be present in a raw file; resolution treats
// exactly one of them as the active project. A document with neither block is
// considered empty and is rejected during resolution.
type RawConfig struct {
	// Client configures a client project (an application that sends
	// operations to a GraphQL service).
	Client *ClientConfigFormat `json:"client,omitempty" yaml:"client,omitempty"`

	// Service configures a service project (a GraphQL schema owner).
	Service *ServiceConfigFormat `json:"service,omitempty" yaml:"service,omitempty"`

	// Engine holds Apollo Engine connectivity settings shared by both
	// project kinds.
	Engine *EngineConfig `json:"engine,omitempty" yaml:"engine,omitempty"`
}

// IsEmpty reports whether the document defines neither a client nor a
// service block. An engine-only document still counts as empty: it carries
// no project to resolve.
func (c *RawConfig) IsEmpty() bool {
	return c == nil || (c.Client == nil && c.Service == nil)
}

// ClientConfigFormat is the client block of a raw configuration document.
type ClientConfigFormat struct {
	// Service references the GraphQL service this client runs against:
	// either a bare "<id>@<tag>" specifier string or an embedded
	// remote/local service object.
	Service *ServiceReference `json:"service,omitempty" yaml:"service,omitempty"`

	// Includes lists glob patterns of files containing operations and
	// client-side schema extensions.
	Includes []string `json:"includes,omitempty" yaml:"includes,omitempty"`

	// Excludes lists glob patterns removed from the include set.
	Excludes []string `json:"excludes,omitempty" yaml:"excludes,omitempty"`

	// TagName is the template-literal tag used to find operations in
	// source files (e.g. "gql").
	TagName string `json:"tagName,omitempty" yaml:"tagName,omitempty"`

	// ClientOnlyDirectives lists directives that never reach the server.
	ClientOnlyDirectives []string `json:"clientOnlyDirectives,omitempty" yaml:"clientOnlyDirectives,omitempty"`

	// ClientSchemaDirectives lists directives that mark client-side
	// schema extensions.
	ClientSchemaDirectives []string `json:"clientSchemaDirectives,omitempty" yaml:"clientSchemaDirectives,omitempty"`

	// AddTypename controls automatic __typename injection into
	// operations. A nil value means "not set" and is filled from
	// defaults during resolution.
	AddTypename *bool `json:"addTypename,omitempty" yaml:"addTypename,omitempty"`

	// StatsWindow bounds the usage-stats time range requested from the
	// engine, in seconds relative to now.
	StatsWindow *StatsWindow `json:"statsWindow,omitempty" yaml:"statsWindow,omitempty"`

	// Name identifies the client application itself.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// ReferenceID is a stable caller-supplied identifier for the client.
	ReferenceID string `json:"referenceID,omitempty" yaml:"referenceID,omitempty"`

	// Version is the client application version reported with stats.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// ServiceConfigFormat is the service block of a raw configuration document.
type ServiceConfigFormat struct {
	// Name is the registered service name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Endpoint points at a running instance of the service for
	// introspection. Mutually exclusive with LocalSchemaFile.
	Endpoint *RemoteServiceConfig `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// LocalSchemaFile is a path to an introspection result or SDL file
	// used instead of a remote endpoint.
	LocalSchemaFile string `json:"localSchemaFile,omitempty" yaml:"localSchemaFile,omitempty"`

	// Includes lists glob patterns of files containing schema definitions.
	Includes []string `json:"includes,omitempty" yaml:"includes,omitempty"`

	// Excludes lists glob patterns removed from the include set.
	Excludes []string `json:"excludes,omitempty" yaml:"excludes,omitempty"`
}

// EngineConfig holds Apollo Engine connectivity settings. It is set once
// during resolution and, unlike the client/service blocks, is only replaced
// by a later defaults-merge when the merged partial names it explicitly.
type EngineConfig struct {
	// Endpoint is the engine GraphQL API URL.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Frontend is the engine web UI URL used when building deep links.
	Frontend string `json:"frontend,omitempty" yaml:"frontend,omitempty"`

	// APIKey authenticates against the engine. Usually secret-derived,
	// never written back to disk.
	APIKey string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
}

// RemoteServiceConfig describes a reachable GraphQL endpoint.
type RemoteServiceConfig struct {
	// Name optionally identifies the service behind the endpoint.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// URL is the endpoint address.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Headers are sent with every introspection request.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// SkipSSLValidation disables TLS certificate verification for the
	// endpoint. Off by default.
	SkipSSLValidation bool `json:"skipSSLValidation,omitempty" yaml:"skipSSLValidation,omitempty"`
}

// LocalServiceConfig describes a service whose schema is read from disk.
type LocalServiceConfig struct {
	// Name optionally identifies the service.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// LocalSchemaFile is the path to the schema file.
	LocalSchemaFile string `json:"localSchemaFile,omitempty" yaml:"localSchemaFile,omitempty"`
}

// StatsWindow bounds a usage-stats query, in seconds relative to now.
// From is the lower bound (negative, in the past), To the upper bound
// (0 means "up to now").
type StatsWindow struct {
	From int64 `json:"from" yaml:"from"`
	To   int64 `json:"to" yaml:"to"`
}

// ServiceReference is a client's reference to its GraphQL service. On disk
// it is either a bare string ("<id>" or "<id>@<tag>") or an embedded object
// describing a remote endpoint or a local schema file. Exactly one of
// Specifier, Remote, or Local is populated after unmarshaling.
type ServiceReference struct {
	// Specifier holds the bare string form, untouched (a trailing @tag
	// is preserved so the resolved config can derive its schema tag).
	Specifier string

	// Remote holds the embedded object form with a url.
	Remote *RemoteServiceConfig

	// Local holds the embedded object form with a localSchemaFile.
	Local *LocalServiceConfig
}

// IsString reports whether the reference was given as a bare specifier
// string rather than an embedded object.
func (r *ServiceReference) IsString() bool {
	return r != nil && r.Specifier != ""
}

// Name returns the service name carried by the reference: the id part of a
// bare specifier, or the name field of the embedded object. Empty when the
// reference carries no name at all.
func (r *ServiceReference) Name() string {
	switch {
	case r == nil:
		return ""
	case r.Specifier != "":
		id, _ := ParseServiceSpecifier(r.Specifier)
		return id
	case r.Remote != nil:
		return r.Remote.Name
	case r.Local != nil:
		return r.Local.Name
	default:
		return ""
	}
}

// embeddedService is the superset shape used to decode the object form of a
// service reference before picking the remote or local variant.
type embeddedService struct {
	Name              string            `json:"name,omitempty" yaml:"name,omitempty"`
	URL               string            `json:"url,omitempty" yaml:"url,omitempty"`
	Headers           map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	SkipSSLValidation bool              `json:"skipSSLValidation,omitempty" yaml:"skipSSLValidation,omitempty"`
	LocalSchemaFile   string            `json:"localSchemaFile,omitempty" yaml:"localSchemaFile,omitempty"`
}

func (r *ServiceReference) fromEmbedded(e *embeddedService) {
	if e.LocalSchemaFile != "" {
		r.Local = &LocalServiceConfig{
			Name:            e.Name,
			LocalSchemaFile: e.LocalSchemaFile,
		}
		return
	}

	r.Remote = &RemoteServiceConfig{
		Name:              e.Name,
		URL:               e.URL,
		Headers:           e.Headers,
		SkipSSLValidation: e.SkipSSLValidation,
	}
}

// UnmarshalJSON decodes either the bare string form or the embedded object
// form of a service reference.
func (r *ServiceReference) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Specifier = s
		return nil
	}

	var e embeddedService
	if err := json.Unmarshal(data, &e); err != nil {
		return fmt.Errorf("error decoding service reference: %w", err)
	}

	r.fromEmbedded(&e)
	return nil
}

// MarshalJSON writes the reference back in the same shape it was read from.
func (r *ServiceReference) MarshalJSON() ([]byte, error) {
	switch {
	case r.Specifier != "":
		return json.Marshal(r.Specifier)
	case r.Local != nil:
		return json.Marshal(r.Local)
	case r.Remote != nil:
		return json.Marshal(r.Remote)
	default:
		return json.Marshal(nil)
	}
}

// UnmarshalYAML decodes either the bare string form or the embedded object
// form of a service reference.
func (r *ServiceReference) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&r.Specifier)
	}

	var e embeddedService
	if err := value.Decode(&e); err != nil {
		return fmt.Errorf("error decoding service reference: %w", err)
	}

	r.fromEmbedded(&e)
	return nil
}

// MarshalYAML writes the reference back in the same shape it was read from.
func (r ServiceReference) MarshalYAML() (any, error) {
	switch {
	case r.Specifier != "":
		return r.Specifier, nil
	case r.Local != nil:
		return r.Local, nil
	case r.Remote != nil:
		return r.Remote, nil
	default:
		return nil, nil
	}
}
