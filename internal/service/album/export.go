package album

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lumen-gallery/albums/internal/domain"
)

// Export lists albums matching the input and presents each one in client
// form. The page size is capped at the configured export limit.
func (s *Service) Export(ctx context.Context, input ExportInput) ([]map[string]any, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 || limit > s.cfg.ExportLimit {
		limit = s.cfg.ExportLimit
	}

	albums, err := s.albums.List(ctx, domain.AlbumFilter{
		ParentID:  input.ParentID,
		AllLevels: input.AllLevels,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}

	out := make([]map[string]any, 0, len(albums))
	for _, a := range albums {
		m, err := s.ToReturnArray(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	s.log.DebugContext(ctx, "albums exported",
		slog.Int("count", len(out)),
		slog.String("zone", s.zones.DisplayZone(ctx).String()),
	)

	return out, nil
}
