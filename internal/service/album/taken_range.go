package album

import (
	"context"
	"fmt"
	"log/slog"
)

// SetTakenRange overwrites an album's taken-at range and bumps its
// updated_at.
func (s *Service) SetTakenRange(ctx context.Context, input SetTakenRangeInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.albums.UpdateTakenRange(ctx, input.AlbumID, input.MinTakenAt, input.MaxTakenAt, s.timestamp()); err != nil {
		return fmt.Errorf("update taken range: %w", err)
	}

	s.log.InfoContext(ctx, "album taken range updated",
		slog.String("album_id", input.AlbumID.String()),
	)
	return nil
}
