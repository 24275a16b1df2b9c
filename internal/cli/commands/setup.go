package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/wishlane/wishlane-cli/internal/api"
	"github.com/wishlane/wishlane-cli/internal/config"
	"golang.org/x/term"
)

// NewSetupCommand configures the CLI with a board API key.
func NewSetupCommand() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Configure the CLI with your Wishlane API key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api-key",
				Usage: "API key (omit to be prompted)",
			},
		},
		Action: func(c *cli.Context) error {
			key := strings.TrimSpace(c.String("api-key"))
			if key == "" {
				var err error
				key, err = promptAPIKey()
				if err != nil {
					return err
				}
			}
			if key == "" {
				return fmt.Errorf("API key is required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.APIKey = key

			if err := verifyAPIKey(cfg); err != nil {
				fmt.Println("❌ Could not verify the API key against", cfg.BaseURL)
				return err
			}

			stored, err := config.StoreAPIKey(key)
			if err != nil {
				return fmt.Errorf("failed to store API key in keyring: %w", err)
			}

			// File-only load: env-sourced settings stay out of the file
			fileCfg, err := config.LoadFile()
			if err != nil {
				return err
			}
			if stored {
				// Keep the key out of the config file when the keyring has it
				fileCfg.APIKey = ""
				fmt.Println("🔐 API key stored in the system keyring.")
			} else {
				fmt.Println("⚠️ No system keyring available; storing the key in the config file.")
				fileCfg.APIKey = key
			}

			if err := config.Save(fileCfg); err != nil {
				return err
			}

			path, _ := config.Path()
			fmt.Printf("✅ Setup complete. Config: %s\n", path)
			fmt.Println("💡 Try 'wishlane stats' or 'wishlane mcp config' to connect an assistant.")
			return nil
		},
	}
}

func promptAPIKey() (string, error) {
	fmt.Print("Enter your Wishlane API key (from the board's settings page): ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return strings.TrimSpace(string(key)), nil
}

// verifyAPIKey makes one stats call to confirm the key works. An
// ambiguity error still proves the key is valid, it just spans
// several projects.
func verifyAPIKey(cfg *config.Config) error {
	client := api.NewClient(cfg)
	stats, err := client.GetStats(cfg.ProjectID)
	if err != nil {
		if api.IsAmbiguityError(err.Error()) {
			fmt.Println("✅ API key verified (key spans multiple projects).")
			return nil
		}
		return err
	}
	fmt.Printf("✅ API key verified for project %q.\n", stats.Project.Name)
	return nil
}
