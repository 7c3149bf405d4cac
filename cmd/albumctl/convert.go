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

func newConvertTagCmd(c *cli) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "convert-tag <album-id>",
		Short: "Replace an album with a tag album showing the given tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid album ID: %w", err)
			}

			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				converted, err := a.Albums.ConvertToTagAlbum(ctx, album.ConvertToTagAlbumInput{
					AlbumID:  id,
					ShowTags: tags,
				})
				if err != nil {
					return err
				}

				out, err := a.Albums.ToReturnArray(ctx, converted)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			})
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags to show (comma separated, can be repeated)")
	_ = cmd.MarkFlagRequired("tags")

	return cmd
}
