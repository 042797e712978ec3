package main

import (
	"context"

	"github.com/sandevgo/ragconf/internal/config"
	"github.com/sandevgo/ragconf/pkg/log"
)

// loadSettings applies the .env file and builds the settings once for the
// running command.
func loadSettings(ctx context.Context, path string) (*config.Settings, error) {
	if err := config.LoadDotEnv(ctx, path); err != nil {
		return nil, err
	}
	return config.NewSettings(ctx), nil
}

// readSavedSettings builds the settings from the file the wizard just wrote.
// The process environment is not consulted, so an exported key cannot mask
// the saved one.
func readSavedSettings(ctx context.Context, path string) (*config.Settings, error) {
	settings, err := config.ReadDotEnv(path)
	if err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Str("path", path).Msg("read back saved settings")
	return settings, nil
}
