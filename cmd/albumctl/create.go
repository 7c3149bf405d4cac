package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lumen-gallery/albums/internal/app"
	"github.com/lumen-gallery/albums/internal/domain"
	"github.com/lumen-gallery/albums/internal/service/album"
)

func newCreateCmd(c *cli) *cobra.Command {
	var (
		input       album.CreateAlbumInput
		parent      string
		description string
		password    string
		license     string
	)

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Title = args[0]
			input.License = domain.License(license)
			if parent != "" {
				id, err := uuid.Parse(parent)
				if err != nil {
					return fmt.Errorf("invalid --parent: %w", err)
				}
				input.ParentID = &id
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			if cmd.Flags().Changed("password") {
				input.Password = &password
			}

			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				created, err := a.Albums.Create(ctx, input)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), created.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "parent album ID")
	cmd.Flags().StringVar(&description, "description", "", "album description")
	cmd.Flags().StringVar(&password, "password", "", "protect the album with a password")
	cmd.Flags().StringVar(&license, "license", "", "photo license (default: none)")
	cmd.Flags().BoolVar(&input.Public, "public", false, "make the album public")
	cmd.Flags().BoolVar(&input.Hidden, "hidden", false, "hide the album from listings")
	cmd.Flags().BoolVar(&input.Downloadable, "downloadable", false, "allow downloads")
	cmd.Flags().BoolVar(&input.Nsfw, "nsfw", false, "mark the album as sensitive")

	return cmd
}
