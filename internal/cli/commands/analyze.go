package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/wishlane/wishlane-cli/internal/format"
)

// NewAnalyzeCommand breaks down demand by status or priority.
func NewAnalyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Show request counts and MRR at stake grouped by status or priority",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "by",
				Usage: "Aggregation dimension: status or priority",
				Value: "status",
			},
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

			text, err := format.GroupAnalysis(stats, c.String("by"))
			if err != nil {
				return err
			}

			fmt.Println(text)
			return nil
		},
	}
}
