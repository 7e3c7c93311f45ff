package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/caconnectors/cmd/app/commands"
	"github.com/allisson/caconnectors/internal/app"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

func getPolicyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "set-policy",
			Usage: "Create or replace a policy by name",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Policy name",
				},
				&cli.StringFlag{
					Name:     "scope",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Policy scope (admin, user, authentication, authorization, enrollment, webui)",
				},
				&cli.StringFlag{
					Name:     "action",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Comma separated actions, e.g. 'caconnectorread, caconnectorwrite'",
				},
				&cli.StringFlag{
					Name:    "realm",
					Aliases: []string{"r"},
					Usage:   "Restrict the policy to one realm (empty matches every realm)",
				},
				&cli.BoolFlag{
					Name:  "active",
					Value: true,
					Usage: "Whether the policy takes part in decisions",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.PolicyUseCase()
					if err != nil {
						return err
					}
					return commands.RunSetPolicy(
						ctx,
						useCase,
						container.Logger(),
						os.Stdout,
						&policyDomain.SetPolicyInput{
							Name:   cmd.String("name"),
							Scope:  policyDomain.Scope(cmd.String("scope")),
							Action: cmd.String("action"),
							Realm:  cmd.String("realm"),
							Active: cmd.Bool("active"),
						},
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "delete-policy",
			Usage: "Delete a policy by name",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Policy name",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.PolicyUseCase()
					if err != nil {
						return err
					}
					return commands.RunDeletePolicy(
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
			Name:  "list-policies",
			Usage: "List policies",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "Only the policy with this name",
				},
				&cli.StringFlag{
					Name:    "scope",
					Aliases: []string{"s"},
					Usage:   "Only policies of this scope",
				},
				&cli.BoolFlag{
					Name:  "active-only",
					Usage: "Only active policies",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				filter := policyDomain.PolicyFilter{
					Name:  cmd.String("name"),
					Scope: policyDomain.Scope(cmd.String("scope")),
				}
				if cmd.Bool("active-only") {
					active := true
					filter.Active = &active
				}
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.PolicyUseCase()
					if err != nil {
						return err
					}
					return commands.RunListPolicies(
						ctx,
						useCase,
						os.Stdout,
						filter,
						cmd.String("format"),
					)
				})
			},
		},
	}
}
