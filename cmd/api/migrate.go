package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/spec-kit/socialdev/internal/config"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations and exit",
		Action: func(c *cli.Context) error {
			rt, err := newBootstrap(c.Context, true)
			if err != nil {
				return err
			}
			defer rt.Close()
			if rt.cfg.Store.Driver == config.StoreDriverMemory {
				return errors.New("migrate requires STORE_DRIVER=postgres")
			}
			return nil
		},
	}
}
