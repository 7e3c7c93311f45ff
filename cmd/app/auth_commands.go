package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/caconnectors/cmd/app/commands"
	"github.com/allisson/caconnectors/internal/app"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "issue-token",
			Usage: "Sign a bearer token for API callers",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "role",
					Aliases:  []string{"r"},
					Required: true,
					Usage:    "Caller role: 'admin' or 'user'",
				},
				&cli.StringFlag{
					Name:    "username",
					Aliases: []string{"u"},
					Usage:   "Caller username",
				},
				&cli.StringFlag{
					Name:  "realm",
					Usage: "Caller realm",
				},
				&cli.DurationFlag{
					Name:  "ttl",
					Usage: "Token lifetime, e.g. '1h' (defaults to AUTH_TOKEN_EXPIRATION_SECONDS)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					tokenService, err := container.TokenService()
					if err != nil {
						return err
					}
					return commands.RunIssueToken(
						tokenService,
						container.Logger(),
						os.Stdout,
						cmd.String("role"),
						cmd.String("username"),
						cmd.String("realm"),
						cmd.Duration("ttl"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
