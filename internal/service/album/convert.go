package album

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lumen-gallery/albums/internal/domain"
)

// ConvertToTagAlbum replaces a regular album with a tag album carrying the
// same attributes. The read, delete and insert run in one transaction.
// Albums with sub-albums are refused with domain.ErrConflict.
func (s *Service) ConvertToTagAlbum(ctx context.Context, input ConvertToTagAlbumInput) (*domain.TagAlbum, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if n := len(domain.NormalizeTags(input.ShowTags)); n > s.cfg.MaxTags {
		return nil, domain.NewValidationError("show_tags", fmt.Sprintf("max %d tags", s.cfg.MaxTags))
	}

	var tagAlbum *domain.TagAlbum
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.albums.GetByID(txCtx, input.AlbumID)
		if err != nil {
			return fmt.Errorf("get album: %w", err)
		}

		children, err := s.albums.List(txCtx, domain.AlbumFilter{ParentID: &a.ID, Limit: 1})
		if err != nil {
			return fmt.Errorf("list sub-albums: %w", err)
		}
		if len(children) > 0 {
			return domain.ConflictError(a.ID, "has sub-albums")
		}

		converted, err := ToTagAlbum(a, input.ShowTags)
		if err != nil {
			return err
		}
		converted.UpdatedAt = s.timestamp()

		if err := s.albums.Delete(txCtx, a.ID); err != nil {
			return fmt.Errorf("delete album: %w", err)
		}

		tagAlbum, err = s.albums.CreateTagAlbum(txCtx, converted)
		if err != nil {
			return fmt.Errorf("create tag album: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "album converted to tag album",
		slog.String("album_id", tagAlbum.ID.String()),
		slog.Int("tags", len(tagAlbum.ShowTags)),
	)

	return tagAlbum, nil
}
