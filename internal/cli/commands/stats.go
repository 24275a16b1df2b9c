package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/wishlane/wishlane-cli/internal/format"
)

// NewStatsCommand shows board-wide stats.
func NewStatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show feature request stats for the board",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "Explicit project ID",
			},
		},
		Action: func(c *cli.Context) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			projectID := c.String("project")
			if projectID == "" {
				projectID = cfg.ProjectID
			}

			stats, err := client.GetStats(projectID)
			if err != nil {
				return err
			}

			fmt.Println(format.Stats(stats))
			return nil
		},
	}
}
