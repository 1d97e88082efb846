package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ── ServiceReference decoding ─────────────────────────────────────────────────

// TestServiceReference_JSONString verifies that a bare string decodes into
// the Specifier form, keeping any trailing tag intact.
func TestServiceReference_JSONString(t *testing.T) {
	var doc RawConfig
	require.NoError(t, json.Unmarshal([]byte(`{"client":{"service":"pay@beta"}}`), &doc))

	require.NotNil(t, doc.Client)
	require.True(t, doc.Client.Service.IsString())
	assert.Equal(t, "pay@beta", doc.Client.Service.Specifier)
	assert.Equal(t, "pay", doc.Client.Service.Name())
}

// TestServiceReference_JSONRemoteObject verifies that an object with a url
// decodes into the Remote form.
func TestServiceReference_JSONRemoteObject(t *testing.T) {
	raw := `{"client":{"service":{"name":"pay","url":"https://pay.example.com/graphql","headers":{"x-team":"payments"}}}}`

	var doc RawConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	ref := doc.Client.Service
	require.NotNil(t, ref.Remote)
	assert.Nil(t, ref.Local)
	assert.False(t, ref.IsString())
	assert.Equal(t, "https://pay.example.com/graphql", ref.Remote.URL)
	assert.Equal(t, "payments", ref.Remote.Headers["x-team"])
	assert.Equal(t, "pay", ref.Name())
}

// TestServiceReference_JSONLocalObject verifies that an object with a
// localSchemaFile decodes into the Local form.
func TestServiceReference_JSONLocalObject(t *testing.T) {
	raw := `{"client":{"service":{"name":"pay","localSchemaFile":"schema.graphql"}}}`

	var doc RawConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	ref := doc.Client.Service
	require.NotNil(t, ref.Local)
	assert.Nil(t, ref.Remote)
	assert.Equal(t, "schema.graphql", ref.Local.LocalSchemaFile)
	assert.Equal(t, "pay", ref.Name())
}

// TestServiceReference_YAMLString verifies the bare string form in YAML.
func TestServiceReference_YAMLString(t *testing.T) {
	var doc RawConfig
	require.NoError(t, yaml.Unmarshal([]byte("client:\n  service: pay@beta\n"), &doc))

	require.NotNil(t, doc.Client)
	assert.Equal(t, "pay@beta", doc.Client.Service.Specifier)
}

// TestServiceReference_YAMLObject verifies the embedded object form in YAML.
func TestServiceReference_YAMLObject(t *testing.T) {
	raw := "client:\n  service:\n    url: http://localhost:4000/graphql\n    skipSSLValidation: true\n"

	var doc RawConfig
	require.NoError(t, yaml.Unmarshal([]byte(raw), &doc))

	ref := doc.Client.Service
	require.NotNil(t, ref.Remote)
	assert.Equal(t, "http://localhost:4000/graphql", ref.Remote.URL)
	assert.True(t, ref.Remote.SkipSSLValidation)
}

// TestServiceReference_MarshalRoundTrip verifies that the specifier form
// survives a marshal pass, so a resolved document can be printed back.
func TestServiceReference_MarshalRoundTrip(t *testing.T) {
	ref := &ServiceReference{Specifier: "pay@beta"}

	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `"pay@beta"`, string(data))
}

// ── RawConfig.IsEmpty ─────────────────────────────────────────────────────────

// TestRawConfig_IsEmpty_NoBlocks verifies that a document without client and
// service blocks is empty, even when an engine block is present.
func TestRawConfig_IsEmpty_NoBlocks(t *testing.T) {
	assert.True(t, (&RawConfig{}).IsEmpty())
	assert.True(t, (&RawConfig{Engine: &EngineConfig{APIKey: "service:x:1"}}).IsEmpty())

	var nilDoc *RawConfig
	assert.True(t, nilDoc.IsEmpty())
}

// TestRawConfig_IsEmpty_WithBlock verifies that either project block makes
// the document non-empty.
func TestRawConfig_IsEmpty_WithBlock(t *testing.T) {
	assert.False(t, (&RawConfig{Client: &ClientConfigFormat{}}).IsEmpty())
	assert.False(t, (&RawConfig{Service: &ServiceConfigFormat{}}).IsEmpty())
}
