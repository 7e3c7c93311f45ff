package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/caconnectors/cmd/app/commands"
	"github.com/allisson/caconnectors/internal/app"
	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
)

func getConnectorCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "save-connector",
			Usage: "Create or update a CA connector",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Connector name",
				},
				&cli.StringFlag{
					Name:     "type",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Connector type, e.g. 'local'",
				},
				&cli.StringSliceFlag{
					Name:    "param",
					Aliases: []string{"p"},
					Usage:   "Configuration entry as key=value, repeatable",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.ConnectorUseCase()
					if err != nil {
						return err
					}
					return commands.RunSaveConnector(
						ctx,
						useCase,
						container.Logger(),
						os.Stdout,
						cmd.String("name"),
						cmd.String("type"),
						cmd.StringSlice("param"),
					)
				})
			},
		},
		{
			Name:  "list-connectors",
			Usage: "List CA connectors with their configuration",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "Only the connector with this name",
				},
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Usage:   "Only connectors of this type",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.ConnectorUseCase()
					if err != nil {
						return err
					}
					return commands.RunListConnectors(
						ctx,
						useCase,
						os.Stdout,
						caDomain.ListFilter{Name: cmd.String("name"), Type: cmd.String("type")},
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "delete-connector",
			Usage: "Delete a CA connector and its configuration",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Connector name",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.ConnectorUseCase()
					if err != nil {
						return err
					}
					return commands.RunDeleteConnector(
						ctx,
						useCase,
						container.Logger(),
						os.Stdout,
						cmd.String("name"),
					)
				})
			},
		},
		{
			Name:  "describe-connector-type",
			Usage: "Show the configuration keys a connector type accepts",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "type",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Connector type",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.ConnectorUseCase()
					if err != nil {
						return err
					}
					return commands.RunDescribeConnectorType(
						ctx,
						useCase,
						os.Stdout,
						cmd.String("type"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
