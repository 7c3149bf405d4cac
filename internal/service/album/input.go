package album

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lumen-gallery/albums/internal/datetime"
	"github.com/lumen-gallery/albums/internal/domain"
)

const maxDescriptionLength = 1000

// CreateAlbumInput holds the parameters for creating an album.
type CreateAlbumInput struct {
	ParentID     *uuid.UUID
	Title        string
	Description  *string
	Public       bool
	Hidden       bool
	Downloadable bool
	Nsfw         bool
	License      domain.License // empty = none
	Sorting      *domain.Sorting
	Password     *string // plain text; stored as a bcrypt hash
}

// Validate checks all fields and collects all errors.
func (i CreateAlbumInput) Validate() error {
	var errs []domain.FieldError

	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must not be the nil UUID"})
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}
	if i.Password != nil && *i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must not be empty"})
	}

	return domain.CheckFields(errs)
}

// ExportInput selects the albums to export.
type ExportInput struct {
	ParentID  *uuid.UUID // nil = top level
	AllLevels bool
	Limit     int // 0 = configured export limit
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ExportInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if i.AllLevels && i.ParentID != nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "cannot be combined with all levels"})
	}

	return domain.CheckFields(errs)
}

// ConvertToTagAlbumInput holds the parameters for turning an album into a
// tag album.
type ConvertToTagAlbumInput struct {
	AlbumID  uuid.UUID
	ShowTags []string
}

// Validate checks all fields and collects all errors.
func (i ConvertToTagAlbumInput) Validate() error {
	var errs []domain.FieldError

	if i.AlbumID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "album_id", Message: "required"})
	}
	if len(domain.NormalizeTags(i.ShowTags)) == 0 {
		errs = append(errs, domain.FieldError{Field: "show_tags", Message: "at least one tag is required"})
	}

	return domain.CheckFields(errs)
}

// SetTakenRangeInput overwrites the taken-at range of an album. A nil bound
// clears it.
type SetTakenRangeInput struct {
	AlbumID    uuid.UUID
	MinTakenAt *datetime.Instant
	MaxTakenAt *datetime.Instant
}

// Validate checks all fields and collects all errors.
func (i SetTakenRangeInput) Validate() error {
	var errs []domain.FieldError

	if i.AlbumID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "album_id", Message: "required"})
	}
	if i.MinTakenAt != nil && i.MaxTakenAt != nil && i.MaxTakenAt.Before(i.MinTakenAt.Time) {
		errs = append(errs, domain.FieldError{Field: "max_taken_at", Message: "must not be before min_taken_at"})
	}

	return domain.CheckFields(errs)
}
