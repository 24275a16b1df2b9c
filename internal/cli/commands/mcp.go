package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v2"
	"github.com/wishlane/wishlane-cli/internal/mcp"
)

// NewMcpCommand groups MCP (Model Context Protocol) server management.
func NewMcpCommand(version string) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "MCP (Model Context Protocol) server management",
		Subcommands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start MCP server (stdio)",
				Action: func(c *cli.Context) error {
					client, _, err := newClient()
					if err != nil {
						return err
					}
					return mcp.ServeStdio(client, version)
				},
			},
			{
				Name:  "config",
				Usage: "Print MCP config examples for clients",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "client",
						Aliases: []string{"c"},
						Usage:   "target client (generic|codex)",
						Value:   "generic",
					},
				},
				Action: func(c *cli.Context) error {
					switch strings.ToLower(c.String("client")) {
					case "codex":
						printCodexConfig()
					default:
						printGenericConfig()
					}
					return nil
				},
			},
			{
				Name:  "tools",
				Usage: "List available MCP tools",
				Action: func(c *cli.Context) error {
					b, _ := json.MarshalIndent(mcp.ToolDefinitions(), "", "  ")
					os.Stdout.Write(b)
					os.Stdout.Write([]byte("\n"))
					return nil
				},
			},
			{
				Name:      "call",
				Usage:     "Invoke one tool directly (debugging)",
				ArgsUsage: "<tool-name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "args",
						Aliases: []string{"a"},
						Usage:   "Tool arguments as a JSON object",
						Value:   "{}",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("tool name is required; see 'wishlane mcp tools'")
					}

					var args map[string]interface{}
					if err := json.Unmarshal([]byte(c.String("args")), &args); err != nil {
						return fmt.Errorf("--args must be a JSON object: %w", err)
					}

					client, _, err := newClient()
					if err != nil {
						return err
					}
					mcp.SetClient(client)

					res := mcp.Dispatch(context.Background(), c.Args().First(), args)
					for _, content := range res.Content {
						if tc, ok := content.(*sdk.TextContent); ok {
							fmt.Println(tc.Text)
						}
					}
					if res.IsError {
						return cli.Exit("", 1)
					}
					return nil
				},
			},
		},
	}
}

func printGenericConfig() {
	cfg := map[string]interface{}{
		"mcpServers": map[string]interface{}{
			"wishlane": map[string]interface{}{
				"command": "wishlane",
				"args":    []string{"mcp", "serve"},
			},
		},
	}
	b, _ := json.MarshalIndent(cfg, "", "  ")
	fmt.Println(string(b))
}

func printCodexConfig() {
	fmt.Println("# Add the following to ~/.codex/config.toml (merge with existing settings)")
	fmt.Println("[mcp_servers.wishlane]")
	fmt.Println("command = \"wishlane\"")
	fmt.Println("args = [\"mcp\", \"serve\"]")
	fmt.Println("enabled = true")
}
