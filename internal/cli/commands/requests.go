package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/wishlane/wishlane-cli/internal/api"
	"github.com/wishlane/wishlane-cli/internal/format"
)

// NewRequestsCommand lists feature requests.
func NewRequestsCommand() *cli.Command {
	return &cli.Command{
		Name:    "requests",
		Aliases: []string{"ls"},
		Usage:   "List feature requests",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   "Filter: pending, approved, planned, in_progress, completed, rejected",
			},
			&cli.StringFlag{
				Name:  "priority",
				Usage: "Filter: low, medium, high",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Sort order: votes, mrr, newest, oldest",
			},
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"q"},
				Usage:   "Keyword search over title and description",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Max results",
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "Pagination offset",
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

			list, err := client.ListFeatureRequests(api.ListOptions{
				ProjectID: projectID,
				Status:    c.String("status"),
				Priority:  c.String("priority"),
				SortBy:    c.String("sort"),
				Search:    c.String("search"),
				Limit:     c.Int("limit"),
				Offset:    c.Int("offset"),
			})
			if err != nil {
				return err
			}

			fmt.Println(format.RequestList(list))
			return nil
		},
	}
}
