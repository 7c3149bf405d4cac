package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-gallery/albums/internal/app"
	"github.com/lumen-gallery/albums/internal/datetime"
)

func newNormalizeCmd(c *cli) *cobra.Command {
	var tz tzFlag

	cmd := &cobra.Command{
		Use:   "normalize <value>",
		Short: "Show the storage and client forms of a timestamp",
		Long: `Show the storage and client forms of a timestamp.

The value goes through the same resolution chain as values read from the
store. No database connection is made.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.NewNormalizer(c.cfg.Time)
			if err != nil {
				return err
			}
			ctx := tz.apply(cmd.Context())

			inst, err := n.FromStorage(ctx, args[0])
			if err != nil {
				return err
			}
			if inst == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "empty value")
				return nil
			}
			stored, err := n.ToStorage(ctx, inst)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "storage (%s): %s\n", n.StorageZone(), *stored)
			fmt.Fprintf(out, "client  (%s): %s\n", n.DisplayZone(ctx), datetime.SerializeForClient(*inst))
			return nil
		},
	}
	cmd.Flags().Var(&tz, "tz", "display timezone, e.g. Asia/Kolkata")

	return cmd
}
