package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/masomo-admin/storage/database"
)

var gooseRunFunc = database.RunMigrations // mockable

func (cli *commandLine) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate COMMAND [ARGS...]",
		Short: "Run the API database migrations: up, up-by-one, up-to, down, down-to, redo, reset, status, version",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.conf.Database.Engine == database.EngineMemory {
				return errors.New("the memory engine has nothing to migrate")
			}
			db, err := database.Open(cli.conf.Database)
			if err != nil {
				return errors.Wrap(err, "opening database")
			}
			defer func() { _ = db.Close() }()

			return gooseRunFunc(cmd.Context(), db, args[0], args[1:]...)
		},
	}
}
