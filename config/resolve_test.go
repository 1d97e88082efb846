package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeProjectFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// clearSecretEnv keeps host environment secrets from leaking into a test.
func clearSecretEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENGINE_API_KEY", "")
	t.Setenv("APOLLO_CONFIG_FILE", "")
}

// ── Resolve ───────────────────────────────────────────────────────────────────

// TestResolve_NoFileServiceDefaults verifies that with no file found, no
// explicit name, and an explicit service type, resolution synthesizes a
// service project with no name and the default local endpoint.
func TestResolve_NoFileServiceDefaults(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()

	cfg, err := Resolve(ResolveSettings{StartPath: dir, Type: KindService})
	require.NoError(t, err)

	assert.True(t, cfg.IsService())
	assert.Empty(t, cfg.Name())

	svc, ok := cfg.Service()
	require.True(t, ok)
	require.NotNil(t, svc.Endpoint)
	assert.Equal(t, DefaultServiceEndpoint, svc.Endpoint.URL)
	assert.Equal(t, defaultIncludes(), svc.Includes)
}

// TestResolve_ClientSpecifierDrivesTypeNameTag verifies that a document with
// client.service = "pay@beta" and no explicit type resolves to a client
// named "pay" with tag "beta".
func TestResolve_ClientSpecifierDrivesTypeNameTag(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()
	writeProjectFile(t, dir, "apollo.config.json", `{"client":{"service":"pay@beta"}}`)

	cfg, err := Resolve(ResolveSettings{StartPath: dir})
	require.NoError(t, err)

	assert.True(t, cfg.IsClient())
	assert.Equal(t, "pay", cfg.Name())
	assert.Equal(t, "beta", cfg.Tag())
}

// TestResolve_SecretDerivedName verifies that ENGINE_API_KEY = "service:cart"
// in the .env file names a client block lacking a service reference.
func TestResolve_SecretDerivedName(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()
	writeProjectFile(t, dir, "apollo.config.json", `{"client":{"tagName":"graphql"}}`)
	writeProjectFile(t, dir, ".env", "ENGINE_API_KEY=service:cart\n")

	cfg, err := Resolve(ResolveSettings{StartPath: dir})
	require.NoError(t, err)

	assert.True(t, cfg.IsClient())
	assert.Equal(t, "cart", cfg.Name())
	assert.Equal(t, "service:cart", cfg.Engine().APIKey)
	// values from the file survive the synthesis and defaults passes
	client, ok := cfg.Client()
	require.True(t, ok)
	assert.Equal(t, "graphql", client.TagName)
}

// TestResolve_EmptyDocumentFatal verifies that a structurally empty document
// is a hard error naming the located path, never silently defaulted.
func TestResolve_EmptyDocumentFatal(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()
	path := writeProjectFile(t, dir, "apollo.config.json", `{}`)

	cfg, err := Resolve(ResolveSettings{StartPath: dir, Type: KindClient})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyConfig)
	assert.Contains(t, err.Error(), path)
}

// TestResolve_RequiredButMissing verifies the fatal not-found path.
func TestResolve_RequiredButMissing(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()

	cfg, err := Resolve(ResolveSettings{StartPath: dir, RequireConfig: true, Type: KindService})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConfigFound)
}

// TestResolve_UnresolvableType verifies the fatal no-type path: no file, no
// explicit type.
func TestResolve_UnresolvableType(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()

	cfg, err := Resolve(ResolveSettings{StartPath: dir})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvableType)
}

// TestResolve_UnsupportedType verifies that a bogus explicit type is
// rejected before any I/O happens.
func TestResolve_UnsupportedType(t *testing.T) {
	clearSecretEnv(t)

	cfg, err := Resolve(ResolveSettings{StartPath: t.TempDir(), Type: Kind("daemon")})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvableType)
}

// TestResolve_SpecifierBeatsCallerName verifies rule 1 of name resolution:
// with an explicit client type, the document's string specifier overrides
// the caller-supplied name.
func TestResolve_SpecifierBeatsCallerName(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()
	writeProjectFile(t, dir, "apollo.config.json", `{"client":{"service":"pay@beta"}}`)

	cfg, err := Resolve(ResolveSettings{StartPath: dir, Type: KindClient, Name: "checkout"})
	require.NoError(t, err)

	assert.Equal(t, "pay", cfg.Name())
	assert.Equal(t, "beta", cfg.Tag())
}

// TestResolve_CallerNameBeatsSecret verifies that the caller-supplied name
// outranks the secret-derived one.
func TestResolve_CallerNameBeatsSecret(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()
	writeProjectFile(t, dir, ".env", "ENGINE_API_KEY=service:cart\n")

	cfg, err := Resolve(ResolveSettings{StartPath: dir, Type: KindService, Name: "inventory"})
	require.NoError(t, err)

	assert.Equal(t, "inventory", cfg.Name())
}

// TestResolve_ExplicitServiceWithClientOnlyDocument verifies that an
// explicit service type against a client-only document synthesizes a fresh
// service block instead of guessing.
func TestResolve_ExplicitServiceWithClientOnlyDocument(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()
	writeProjectFile(t, dir, "apollo.config.json", `{"client":{"service":"pay@beta"}}`)

	cfg, err := Resolve(ResolveSettings{StartPath: dir, Type: KindService, Name: "pay"})
	require.NoError(t, err)

	assert.True(t, cfg.IsService())
	svc, ok := cfg.Service()
	require.True(t, ok)
	assert.Equal(t, "pay", svc.Name)
	assert.Equal(t, DefaultServiceEndpoint, svc.Endpoint.URL)
}

// TestResolve_YAMLDocument verifies end-to-end resolution from a YAML file.
func TestResolve_YAMLDocument(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()
	writeProjectFile(t, dir, "apollo.config.yaml", "service:\n  name: inventory\n  endpoint:\n    url: https://inventory.example.com/graphql\n")

	cfg, err := Resolve(ResolveSettings{StartPath: dir})
	require.NoError(t, err)

	assert.True(t, cfg.IsService())
	assert.Equal(t, "inventory", cfg.Name())

	svc, ok := cfg.Service()
	require.True(t, ok)
	assert.Equal(t, "https://inventory.example.com/graphql", svc.Endpoint.URL)
}

// TestResolve_EngineKeyFromProcessEnv verifies the process-environment
// fallback when no .env file exists.
func TestResolve_EngineKeyFromProcessEnv(t *testing.T) {
	clearSecretEnv(t)
	t.Setenv("ENGINE_API_KEY", "service:cart:89ab")
	dir := t.TempDir()
	writeProjectFile(t, dir, "apollo.config.json", `{"client":{}}`)

	cfg, err := Resolve(ResolveSettings{StartPath: dir})
	require.NoError(t, err)

	assert.Equal(t, "cart", cfg.Name())
	assert.Equal(t, "service:cart:89ab", cfg.Engine().APIKey)
}

// TestResolve_DotenvBeatsProcessEnv verifies that the secrets file outranks
// the process environment for the engine key.
func TestResolve_DotenvBeatsProcessEnv(t *testing.T) {
	clearSecretEnv(t)
	t.Setenv("ENGINE_API_KEY", "service:stale:0")
	dir := t.TempDir()
	writeProjectFile(t, dir, "apollo.config.json", `{"client":{}}`)
	writeProjectFile(t, dir, ".env", "ENGINE_API_KEY=service:cart:1\n")

	cfg, err := Resolve(ResolveSettings{StartPath: dir})
	require.NoError(t, err)

	assert.Equal(t, "service:cart:1", cfg.Engine().APIKey)
}

// TestResolve_FileURIPointsAtDocument verifies that the resolved config
// carries the location of the file it came from.
func TestResolve_FileURIPointsAtDocument(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()
	path := writeProjectFile(t, dir, "apollo.config.json", `{"client":{"service":"pay"}}`)

	cfg, err := Resolve(ResolveSettings{StartPath: dir})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.FileURI())
	assert.Equal(t, path, cfg.ConfigDirURI())
}

// TestResolve_OverrideFileName verifies that the APOLLO_CONFIG_FILE override
// pins the search to a single file name.
func TestResolve_OverrideFileName(t *testing.T) {
	clearSecretEnv(t)
	dir := t.TempDir()
	writeProjectFile(t, dir, "apollo.config.json", `{"client":{"service":"ignored"}}`)
	writeProjectFile(t, dir, "shop.config.json", `{"service":{"name":"shop"}}`)
	t.Setenv("APOLLO_CONFIG_FILE", "shop.config.json")

	cfg, err := Resolve(ResolveSettings{StartPath: dir})
	require.NoError(t, err)

	assert.True(t, cfg.IsService())
	assert.Equal(t, "shop", cfg.Name())
}
