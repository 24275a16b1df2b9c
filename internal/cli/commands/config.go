package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/wishlane/wishlane-cli/internal/config"
)

// NewConfigCommand inspects and updates the stored configuration.
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the current configuration",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}
					path, _ := config.Path()

					fmt.Printf("Config file: %s\n", path)
					fmt.Printf("Base URL:    %s\n", cfg.BaseURL)
					if cfg.ProjectID != "" {
						fmt.Printf("Project:     %s\n", cfg.ProjectID)
					} else {
						fmt.Println("Project:     (auto-detected)")
					}
					if cfg.APIKey != "" {
						fmt.Printf("API key:     %s\n", maskKey(cfg.APIKey))
					} else {
						fmt.Println("API key:     (not set — run 'wishlane setup')")
					}
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "Update configuration values",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "base-url",
						Usage: "API base URL (self-hosted boards)",
					},
					&cli.StringFlag{
						Name:  "project",
						Usage: "Default project ID (skips auto-detection)",
					},
				},
				Action: func(c *cli.Context) error {
					if c.String("base-url") == "" && c.String("project") == "" {
						return fmt.Errorf("nothing to set: pass --base-url and/or --project")
					}

					// File-only load so env- or keyring-sourced values
					// never get written back to disk
					cfg, err := config.LoadFile()
					if err != nil {
						return err
					}

					if v := c.String("base-url"); v != "" {
						cfg.BaseURL = v
					}
					if v := c.String("project"); v != "" {
						cfg.ProjectID = v
					}

					if err := config.Save(cfg); err != nil {
						return err
					}
					fmt.Println("✅ Configuration updated.")
					return nil
				},
			},
			{
				Name:  "unset",
				Usage: "Remove the stored API key (keyring and config file)",
				Action: func(c *cli.Context) error {
					if err := config.DeleteAPIKey(); err != nil {
						return fmt.Errorf("failed to remove API key from keyring: %w", err)
					}

					cfg, err := config.LoadFile()
					if err != nil {
						return err
					}
					if cfg.APIKey != "" {
						cfg.APIKey = ""
						if err := config.Save(cfg); err != nil {
							return err
						}
					}

					fmt.Println("✅ API key removed. Run 'wishlane setup' to configure a new one.")
					return nil
				},
			},
		},
	}
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "********"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
