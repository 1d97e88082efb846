package config

import "errors"

// Fatal resolution errors. All of them abort resolution immediately; no
// partial [Config] is ever returned alongside one of them. Callers can test
// for a specific condition with [errors.Is].
var (
	// ErrNoConfigFound indicates that a configuration file was required
	// but none of the candidate locations produced one.
	ErrNoConfigFound = errors.New("no apollo config found")
	// ErrEmptyConfig indicates that a configuration file was located but
	// defines neither a client nor a service block.
	ErrEmptyConfig = errors.New("empty apollo config")
	// ErrUnresolvableType indicates that neither the caller nor the
	// loaded document says whether the project is a client or a service.
	ErrUnresolvableType = errors.New("unresolved project type")
	// ErrUnsupportedFormat indicates a config file whose extension maps
	// to none of the registered loaders.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)
