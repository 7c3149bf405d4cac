package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lumen-gallery/albums/internal/app"
	"github.com/lumen-gallery/albums/internal/service/album"
)

func newExportCmd(c *cli) *cobra.Command {
	var (
		input  album.ExportInput
		parent string
		tz     tzFlag
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print albums in client form as JSON",
		Long: `Print albums in client form as JSON.

Timestamps are rendered in the display timezone: --tz when given, otherwise
the configured display timezone, otherwise the process local zone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if parent != "" {
				id, err := uuid.Parse(parent)
				if err != nil {
					return fmt.Errorf("invalid --parent: %w", err)
				}
				input.ParentID = &id
			}

			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				albums, err := a.Albums.Export(tz.apply(ctx), input)
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(albums)
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "export the children of this album (default: top level)")
	cmd.Flags().BoolVar(&input.AllLevels, "all", false, "export albums at every level")
	cmd.Flags().IntVar(&input.Limit, "limit", 0, "maximum number of albums (default: configured export limit)")
	cmd.Flags().IntVar(&input.Offset, "offset", 0, "number of albums to skip")
	cmd.Flags().Var(&tz, "tz", "display timezone, e.g. Europe/Paris")

	return cmd
}
