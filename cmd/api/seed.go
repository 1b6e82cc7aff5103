package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/spec-kit/socialdev/internal/service"
)

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Create demo users and posts",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "apply migrations before seeding",
				Value: true,
			},
		},
		Action: func(c *cli.Context) error {
			rt, err := newBootstrap(c.Context, c.Bool("migrate"))
			if err != nil {
				return err
			}
			defer rt.Close()

			res, err := service.NewSeedService(rt.users, rt.posts, rt.cfg.Auth.BcryptCost, rt.logger).Run(c.Context)
			if err != nil {
				return err
			}

			out := c.App.Writer
			fmt.Fprintln(out, "Seed completed")
			fmt.Fprintf(out, "  users created: %d (skipped %d)\n", res.UsersCreated, res.UsersSkipped)
			fmt.Fprintf(out, "  posts created: %d\n", res.PostsCreated)
			fmt.Fprintf(out, "  total users:   %d\n", res.TotalUsers)
			fmt.Fprintf(out, "  total posts:   %d\n", res.TotalPosts)
			fmt.Fprintf(out, "  password for every seeded account: %s\n", service.SeedPassword)
			return nil
		},
	}
}
