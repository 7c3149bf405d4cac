package album

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lumen-gallery/albums/internal/config"
	"github.com/lumen-gallery/albums/internal/datetime"
	"github.com/lumen-gallery/albums/internal/domain"
)

type albumRepo interface {
	Create(ctx context.Context, a *domain.Album) (*domain.Album, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error)
	List(ctx context.Context, filter domain.AlbumFilter) ([]*domain.Album, error)
	UpdateTakenRange(ctx context.Context, id uuid.UUID, minTaken, maxTaken, updatedAt *datetime.Instant) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateTagAlbum(ctx context.Context, t *domain.TagAlbum) (*domain.TagAlbum, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type zoneResolver interface {
	DisplayZone(ctx context.Context) *time.Location
}

// Service provides album use-cases on top of a store.
type Service struct {
	albums albumRepo
	tx     txManager
	zones  zoneResolver
	cfg    config.AlbumConfig
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new album service.
func NewService(
	log *slog.Logger,
	albums albumRepo,
	tx txManager,
	zones zoneResolver,
	cfg config.AlbumConfig,
) *Service {
	return &Service{
		albums: albums,
		tx:     tx,
		zones:  zones,
		cfg:    cfg,
		log:    log.With("service", "album"),
		now:    time.Now,
	}
}

func (s *Service) timestamp() *datetime.Instant {
	now := datetime.NewInstant(s.now().Truncate(time.Second))
	return &now
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
