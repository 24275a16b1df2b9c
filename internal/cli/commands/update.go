package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/wishlane/wishlane-cli/internal/api"
	"github.com/wishlane/wishlane-cli/internal/format"
)

// NewUpdateCommand updates one feature request.
func NewUpdateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a feature request's status, priority or public note",
		ArgsUsage: "<request-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   "New status: pending, approved, planned, in_progress, completed, rejected",
			},
			&cli.StringFlag{
				Name:  "priority",
				Usage: "New priority: low, medium, high",
			},
			&cli.StringFlag{
				Name:    "note",
				Aliases: []string{"m"},
				Usage:   "Public status message shown to voters",
			},
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "Explicit project ID",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("feature request id is required")
			}
			id := c.Args().First()

			update := api.StatusUpdate{
				Status:        c.String("status"),
				Priority:      c.String("priority"),
				StatusMessage: c.String("note"),
			}
			if update.Status == "" && update.Priority == "" && update.StatusMessage == "" {
				return fmt.Errorf("nothing to update: pass --status, --priority and/or --note")
			}

			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			projectID := c.String("project")
			if projectID == "" {
				projectID = cfg.ProjectID
			}

			fr, err := client.UpdateFeatureRequest(id, projectID, update)
			if err != nil {
				return err
			}

			fmt.Print(format.UpdateResult(fr))
			return nil
		},
	}
}
