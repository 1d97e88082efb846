// Package config resolves a single, fully-defaulted GraphQL project
// configuration from several partial, possibly conflicting sources: an
// on-disk config file (probed across candidate names and formats), a dotenv
// secrets file, the process environment, caller-supplied overrides, and
// built-in defaults.
//
// The main entry point is [Resolve], which returns a [Config] describing
// either a client or a service project. Merge precedence, lowest to
// highest: built-in defaults, the loaded file, the secret-derived name, the
// caller-supplied explicit name and type. A lower layer never overwrites a
// value an upper layer defines, at any nesting depth.
//
// The file search and secrets reading steps are narrow collaborator
// interfaces ([Searcher], [SecretStore]) with default file-system
// implementations; tests and embedders may swap them out via
// [ResolveSettings].
package config
