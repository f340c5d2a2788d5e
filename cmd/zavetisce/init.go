package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erazemk/zavetisce/internal/rescue"
)

func newInitCmd(load func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the schema and the first Admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := load()
			if err != nil {
				return err
			}
			defer e.cleanup()

			database, err := openDatabase(cmd.Context(), e.cfg, e.log)
			if err != nil {
				return err
			}
			defer database.Close()

			svc := rescue.New(database, nil, rescue.WithLogger(e.log))
			admin, created, err := svc.EnsureAdmin(cmd.Context(), e.cfg.Admin.Email)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintln(cmd.OutOrStdout(), "Database already initialized.")
				return nil
			}
			printInitResult(cmd.OutOrStdout(), e.cfg, admin)
			return nil
		},
	}
}
