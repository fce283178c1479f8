// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// tuiCommand returns the top-level command for the interactive catalog.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui"},
		Usage:   "Launch the interactive course catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "route",
				Usage: "Initial route, e.g. /courses/ml-foundations",
				Value: "/",
			},
		},
		Action: r.TUI,
	}
}

// serveCommand serves the catalog as HTML pages with the chat forwarder.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the course catalog website",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to listen on (default: server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (default: server.port)",
			},
		},
		Action: r.Serve,
	}
}

// askCommand sends a single question to the answering service.
func askCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Ask the course assistant a question",
		ArgsUsage: "QUERY",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Ask,
	}
}

// catalogCommand handles catalog listing, export and import.
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Course catalog operations",
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List courses",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "category",
						Usage: "Only list courses in this category",
						Value: "All",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.CatalogList,
			},
			{
				Name:  "show",
				Usage: "Show a course and its lessons",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CatalogShow,
			},
			{
				Name:   "categories",
				Usage:  "List categories in catalog order",
				Action: r.CatalogCategories,
			},
			{
				Name:  "export",
				Usage: "Export one course, or every course when --id is omitted",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "id",
						Usage: "Course ID to export",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, md, txt or json",
						Value:   "md",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path (directory for md and bulk exports)",
					},
					&cli.BoolFlag{
						Name:  "covers",
						Usage: "Download cover images for markdown exports",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent workers for bulk exports",
						Value: 5,
					},
				},
				Action: r.CatalogExport,
			},
			{
				Name:  "import",
				Usage: "Store the loaded catalog in the SQLite database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "Catalog file to import instead of the configured catalog",
					},
					&cli.BoolFlag{
						Name:  "replace",
						Usage: "Delete stored courses before importing",
					},
				},
				Action: r.CatalogImport,
			},
		},
	}
}

// apiCommand handles direct calls to the answering service
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct calls to the answering service",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET, prints the response body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output compact JSON",
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
			{
				Name:   "ping",
				Usage:  "Check that the answering service is reachable",
				Action: r.APIPing,
			},
		},
	}
}

// setupCommand handles setup operations for the database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Write a config file from the bundled example",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing config file",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}
