package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lumen-gallery/albums/internal/app"
	"github.com/lumen-gallery/albums/internal/service/album"
)

func newSetTakenCmd(c *cli) *cobra.Command {
	var minTaken, maxTaken string

	cmd := &cobra.Command{
		Use:   "set-taken <album-id>",
		Short: "Overwrite the taken-at range of an album",
		Long: `Overwrite the taken-at range of an album.

--min and --max accept any value the store understands: epoch seconds, a
bare date, the storage layout or a date with an explicit offset. Values
without an offset are read in the storage timezone. An omitted bound is
cleared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid album ID: %w", err)
			}

			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				input := album.SetTakenRangeInput{AlbumID: id}
				if input.MinTakenAt, err = a.Normalizer.FromStorage(ctx, minTaken); err != nil {
					return fmt.Errorf("--min: %w", err)
				}
				if input.MaxTakenAt, err = a.Normalizer.FromStorage(ctx, maxTaken); err != nil {
					return fmt.Errorf("--max: %w", err)
				}
				return a.Albums.SetTakenRange(ctx, input)
			})
		},
	}

	cmd.Flags().StringVar(&minTaken, "min", "", "earliest capture time")
	cmd.Flags().StringVar(&maxTaken, "max", "", "latest capture time")

	return cmd
}
