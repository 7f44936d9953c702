// backofficectl runs maintenance tasks against the back office stores.
//
// Usage:
//
//	backofficectl migrate up|down|status
//	backofficectl dynamodb create-tables
package main

import (
	"context"
	"fmt"
	"os"

	"translation_backoffice/internal/infrastructure/config"
	"translation_backoffice/internal/infrastructure/database"
	"translation_backoffice/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "backofficectl",
		Usage: "Translation back office maintenance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to a YAML config file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			logger.Setup(cfg.App.Env, cfg.Log.Level)
			c.App.Metadata = map[string]any{"config": cfg}
			return nil
		},
		Commands: []*cli.Command{
			migrateCommand(),
			dynamoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadedConfig(c *cli.Context) config.Config {
	cfg, _ := c.App.Metadata["config"].(config.Config)
	return cfg
}

func migrateCommand() *cli.Command {
	run := func(command string) cli.ActionFunc {
		return func(c *cli.Context) error {
			return database.Migrate(loadedConfig(c).Postgres.DSN, command)
		}
	}
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the Postgres migrations (activity log, chat messages)",
		Subcommands: []*cli.Command{
			{Name: "up", Usage: "Apply all pending migrations", Action: run("up")},
			{Name: "down", Usage: "Roll back the last migration", Action: run("down")},
			{Name: "status", Usage: "Show migration status", Action: run("status")},
		},
	}
}

func dynamoCommand() *cli.Command {
	return &cli.Command{
		Name:  "dynamodb",
		Usage: "DynamoDB maintenance",
		Subcommands: []*cli.Command{
			{
				Name:  "create-tables",
				Usage: "Create the missing tables and quote_id indexes",
				Action: func(c *cli.Context) error {
					cfg := loadedConfig(c)
					ctx := context.Background()
					created, err := database.EnsureTables(ctx, database.ConnectDynamoDB(ctx, cfg), database.TableSpecs(cfg.Tables))
					if err != nil {
						return err
					}
					fmt.Printf("created %d table(s)\n", len(created))
					return nil
				},
			},
		},
	}
}
