// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"strings"

	"github.com/MKhiriev/apollo-config/models"
)

// Kind tags the resolved project variant.
type Kind string

// Supported project kinds.
const (
	// KindClient marks a client project (an application sending
	// operations to a GraphQL service).
	KindClient Kind = "client"
	// KindService marks a service project (a GraphQL schema owner).
	KindService Kind = "service"
)

// executable config modules carry their document in code rather than data,
// so the directory that relative globs resolve against is their parent
var moduleExtensions = map[string]struct{}{
	".js":  {},
	".cjs": {},
	".mjs": {},
	".ts":  {},
}

// Config is a fully resolved, defaulted configuration: the queryable view
// handed to downstream tooling. It wraps the merged raw document together
// with the location it was loaded from.
//
// A Config is created once per resolution (or built directly from an
// already-merged document via [NewConfig]) and is mutated only through
// [Config.SetDefaults], [Config.SetName], and [Config.SetTag]. It is meant
// to be owned by a single caller; no internal locking is performed.
type Config struct {
	raw     *models.RawConfig
	fileURI string

	// kind flags are fixed at construction time from block presence and
	// are not re-derived by later merges
	isClient  bool
	isService bool

	name string
	tag  string
}

// NewConfig wraps an already-merged raw document loaded from fileURI.
// The kind flags are derived from block presence at this point only.
func NewConfig(raw *models.RawConfig, fileURI string) *Config {
	return &Config{
		raw:       raw,
		fileURI:   fileURI,
		isClient:  raw.Client != nil,
		isService: raw.Service != nil,
	}
}

// Raw returns the underlying merged document.
func (c *Config) Raw() *models.RawConfig { return c.raw }

// FileURI returns the location the document was loaded from. For a
// resolution that found no file this is the start directory the defaults
// were synthesized for.
func (c *Config) FileURI() string { return c.fileURI }

// IsClient reports whether the document carried a client block when this
// Config was constructed.
func (c *Config) IsClient() bool { return c.isClient }

// IsService reports whether the document carried a service block when this
// Config was constructed.
func (c *Config) IsService() bool { return c.isService }

// Client narrows the config to its client payload. The second return is
// false when the config is not a client project.
func (c *Config) Client() (*models.ClientConfigFormat, bool) {
	if !c.isClient || c.raw.Client == nil {
		return nil, false
	}

	return c.raw.Client, true
}

// Service narrows the config to its service payload. The second return is
// false when the config is not a service project.
func (c *Config) Service() (*models.ServiceConfigFormat, bool) {
	if !c.isService || c.raw.Service == nil {
		return nil, false
	}

	return c.raw.Service, true
}

// Engine returns the engine block. After resolution it is always populated
// with at least the built-in engine defaults.
func (c *Config) Engine() *models.EngineConfig { return c.raw.Engine }

// Name returns the effective project name: the name fixed during
// resolution if one was, otherwise the name derived from the document (the
// client's service reference, or the service block's own name). Empty when
// no name is resolvable at all.
func (c *Config) Name() string {
	if c.name != "" {
		return c.name
	}

	if c.isClient && c.raw.Client != nil {
		return c.raw.Client.Service.Name()
	}

	if c.isService && c.raw.Service != nil {
		return c.raw.Service.Name
	}

	return ""
}

// SetName reassigns the effective project name, overriding the derived one.
func (c *Config) SetName(name string) { c.name = name }

// Tag returns the schema tag of the project. The first read derives it
// from the client's service specifier ("<id>@<tag>") and caches the result,
// falling back to [DefaultTag] when the specifier carries no tag; an
// earlier [Config.SetTag] assignment always wins over the derivation.
func (c *Config) Tag() string {
	if c.tag != "" {
		return c.tag
	}

	c.tag = DefaultTag
	if c.raw.Client != nil && c.raw.Client.Service.IsString() {
		if _, tag := models.ParseServiceSpecifier(c.raw.Client.Service.Specifier); tag != "" {
			c.tag = tag
		}
	}

	return c.tag
}

// SetTag assigns an explicit schema tag, winning over the specifier-derived
// value on all subsequent reads.
func (c *Config) SetTag(tag string) { c.tag = tag }

// ConfigDirURI returns the directory reference relative globs resolve
// against. A location that looks like an executable config module (.js,
// .ts and friends) yields the module's parent directory; a static document
// location is returned as-is.
func (c *Config) ConfigDirURI() string {
	ext := strings.ToLower(filepath.Ext(c.fileURI))
	if _, ok := moduleExtensions[ext]; ok {
		return filepath.Dir(c.fileURI)
	}

	return c.fileURI
}

// Projects returns one narrowed sub-project per populated top-level block,
// each sharing the engine settings and originating location of the parent.
func (c *Config) Projects() []*Config {
	var projects []*Config

	if c.raw.Client != nil {
		projects = append(projects, NewConfig(&models.RawConfig{
			Client: c.raw.Client,
			Engine: c.raw.Engine,
		}, c.fileURI))
	}

	if c.raw.Service != nil {
		projects = append(projects, NewConfig(&models.RawConfig{
			Service: c.raw.Service,
			Engine:  c.raw.Engine,
		}, c.fileURI))
	}

	return projects
}

// SetDefaults merges a caller-supplied partial document underneath the
// existing resolved document: every value the document already defines
// survives, only gaps are filled, per block and recursively. The engine
// block is only touched when the partial explicitly includes an engine
// fragment.
func (c *Config) SetDefaults(partial *models.RawConfig) {
	mergeUnder(c.raw, partial)
}
