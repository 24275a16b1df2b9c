package commands

// Helper functions shared across commands

import (
	"github.com/urfave/cli/v2"
	"github.com/wishlane/wishlane-cli/internal/api"
	"github.com/wishlane/wishlane-cli/internal/config"
)

// newClient resolves startup configuration and builds an API client.
// A missing API key is a fatal configuration error: the process exits
// non-zero with an explanation instead of limping along unauthenticated.
func newClient() (*api.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, cli.Exit("failed to load configuration: "+err.Error(), 1)
	}
	if cfg.APIKey == "" {
		return nil, nil, cli.Exit("No API key configured. Set WISHLANE_API_KEY or run 'wishlane setup' to store one.", 1)
	}
	return api.NewClient(cfg), cfg, nil
}
