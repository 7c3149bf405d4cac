package album

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumen-gallery/albums/internal/domain"
)

// Create validates the input and stores a new album. Passwords are hashed
// with bcrypt before they reach the store.
func (s *Service) Create(ctx context.Context, input CreateAlbumInput) (*domain.Album, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	license := input.License
	if license == "" {
		license = domain.LicenseNone
	}

	now := s.timestamp()
	a := &domain.Album{
		ID:           uuid.New(),
		ParentID:     input.ParentID,
		Title:        strings.TrimSpace(input.Title),
		Description:  trimOrNil(input.Description),
		Public:       input.Public,
		Visible:      !input.Hidden,
		Downloadable: input.Downloadable,
		Nsfw:         input.Nsfw,
		License:      license,
		Sorting:      input.Sorting,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.cfg.PasswordHashCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		a.PasswordHash = &h
	}

	created, err := s.albums.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}

	s.log.InfoContext(ctx, "album created",
		slog.String("album_id", created.ID.String()),
		slog.Bool("protected", created.HasPassword()),
	)

	return created, nil
}

// CheckPassword reports whether password unlocks the album. Albums without
// a password accept anything.
func CheckPassword(a *domain.Album, password string) bool {
	if !a.HasPassword() {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(*a.PasswordHash), []byte(password)) == nil
}
