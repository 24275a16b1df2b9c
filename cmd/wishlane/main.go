package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/wishlane/wishlane-cli/internal/cli/commands"
)

// Version will be set during build with ldflags
var Version = "1.3.0"

func main() {
	// Best effort; settings come from the environment or the config file
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "wishlane",
		Usage:   "Wishlane feedback board CLI and MCP server",
		Version: Version,
		Commands: []*cli.Command{
			commands.NewSetupCommand(),
			commands.NewRequestsCommand(),
			commands.NewStatsCommand(),
			commands.NewAnalyzeCommand(),
			commands.NewUpdateCommand(),
			commands.NewMcpCommand(Version),
			commands.NewConfigCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
