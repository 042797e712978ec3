package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/ragconf/pkg/log"
)

const DefaultEnvFile = ".env"

// EnvFilePath returns the dotenv file read at startup.
func EnvFilePath() string {
	if path := os.Getenv("RAGCONF_ENV_FILE"); path != "" {
		return path
	}
	return DefaultEnvFile
}

// LoadDotEnv applies the file at path to the process environment. Variables
// already set in the environment are kept. A missing file is not an error.
func LoadDotEnv(ctx context.Context, path string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no .env file, using process environment")
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", path).Msg("loaded .env file")
	return nil
}

// ReadDotEnv builds Settings from the file at path alone. Unlike LoadDotEnv the
// process environment is neither read nor changed, so the result reflects what
// the file holds even when OPENROUTER_API_KEY is exported.
func ReadDotEnv(path string) (*Settings, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return LoadFrom(vars)
}

// WriteDotEnv saves vars to path with owner-only permissions, since the file
// holds the API key. An existing file is only replaced when overwrite is set.
func WriteDotEnv(path string, vars map[string]string, overwrite bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf(".env file already exists at %s", path)
		}
	}

	content, err := godotenv.Marshal(vars)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// WriteFile keeps the mode of an existing file
	return os.Chmod(path, 0600)
}
