package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/caconnectors/cmd/app/commands"
	"github.com/allisson/caconnectors/internal/app"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "down",
					Value: false,
					Usage: "Revert every migration instead of applying them",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					cfg := container.Config()
					return commands.RunMigrations(
						container.Logger(),
						cfg.DBDriver,
						cfg.DBConnectionString,
						cmd.Bool("down"),
					)
				})
			},
		},
	}
}
