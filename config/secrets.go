package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// EngineAPIKeyVar is the secrets key carrying the engine API key. Its value
// may embed a service name via the "service:<name>" convention.
const EngineAPIKeyVar = "ENGINE_API_KEY"

// secretsFileName is the dotenv file probed in the project directory.
const secretsFileName = ".env"

// DotenvStore is the default [SecretStore]: it reads a dotenv-style ".env"
// file from the project directory.
type DotenvStore struct {
	log zerolog.Logger
}

// NewDotenvStore builds the default dotenv-backed secret store.
func NewDotenvStore(log zerolog.Logger) DotenvStore {
	return DotenvStore{log: log}
}

// Read implements [SecretStore]. A missing ".env" file is not an error and
// yields a nil mapping.
func (s DotenvStore) Read(dir string) (map[string]string, error) {
	path := filepath.Join(dir, secretsFileName)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error inspecting secrets file: %w", err)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing secrets file %s: %w", path, err)
	}

	s.log.Debug().Str("path", path).Int("keys", len(values)).Msg("secrets file loaded")
	return values, nil
}
