package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lumen-gallery/albums/internal/datetime"
)

// MaxAlbumTitleLength is the longest accepted album title, in runes.
const MaxAlbumTitleLength = 100

// License is the usage license attached to an album's photos.
type License string

const (
	LicenseNone     License = "none"
	LicenseReserved License = "reserved"
	LicenseCC0      License = "CC0"
	LicenseCCBY     License = "CC-BY-4.0"
	LicenseCCBYND   License = "CC-BY-ND-4.0"
	LicenseCCBYSA   License = "CC-BY-SA-4.0"
	LicenseCCBYNC   License = "CC-BY-NC-4.0"
	LicenseCCBYNCND License = "CC-BY-NC-ND-4.0"
	LicenseCCBYNCSA License = "CC-BY-NC-SA-4.0"
)

func (l License) String() string { return string(l) }

func (l License) IsValid() bool {
	switch l {
	case LicenseNone, LicenseReserved, LicenseCC0, LicenseCCBY, LicenseCCBYND,
		LicenseCCBYSA, LicenseCCBYNC, LicenseCCBYNCND, LicenseCCBYNCSA:
		return true
	}
	return false
}

// SortingColumn is the photo attribute an album orders its content by.
type SortingColumn string

const (
	SortingColumnCreatedAt   SortingColumn = "created_at"
	SortingColumnTakenAt     SortingColumn = "taken_at"
	SortingColumnTitle       SortingColumn = "title"
	SortingColumnDescription SortingColumn = "description"
	SortingColumnPublic      SortingColumn = "is_public"
	SortingColumnStarred     SortingColumn = "is_starred"
)

func (c SortingColumn) String() string { return string(c) }

func (c SortingColumn) IsValid() bool {
	switch c {
	case SortingColumnCreatedAt, SortingColumnTakenAt, SortingColumnTitle,
		SortingColumnDescription, SortingColumnPublic, SortingColumnStarred:
		return true
	}
	return false
}

// SortingOrder is the direction of an album's photo ordering.
type SortingOrder string

const (
	SortingOrderAsc  SortingOrder = "ASC"
	SortingOrderDesc SortingOrder = "DESC"
)

func (o SortingOrder) String() string { return string(o) }

func (o SortingOrder) IsValid() bool {
	return o == SortingOrderAsc || o == SortingOrderDesc
}

// Sorting is an album's photo ordering. A nil *Sorting means "use the
// configured default".
type Sorting struct {
	Column SortingColumn
	Order  SortingOrder
}

// Album is a regular photo album. Timestamps are aware instants expressed in
// the display timezone of the call that loaded them; nil means unknown.
type Album struct {
	ID           uuid.UUID
	ParentID     *uuid.UUID
	Title        string
	Description  *string
	Public       bool
	// Visible mirrors the stored "hidden" flag inverted; it is stored, not computed.
	Visible      bool
	Downloadable bool
	Nsfw         bool
	License      License
	Sorting      *Sorting
	PasswordHash *string
	PhotoCount   int

	MinTakenAt *datetime.Instant
	MaxTakenAt *datetime.Instant
	CreatedAt  *datetime.Instant
	UpdatedAt  *datetime.Instant
}

// HasPassword reports whether the album is password protected.
func (a *Album) HasPassword() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// Validate checks the attributes a stored album must satisfy.
func (a *Album) Validate() error {
	var errs []FieldError

	title := strings.TrimSpace(a.Title)
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > MaxAlbumTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "too long"})
	}

	if !a.License.IsValid() {
		errs = append(errs, FieldError{Field: "license", Message: "unknown license"})
	}

	if a.Sorting != nil {
		if !a.Sorting.Column.IsValid() {
			errs = append(errs, FieldError{Field: "sorting_col", Message: "unknown column"})
		}
		if !a.Sorting.Order.IsValid() {
			errs = append(errs, FieldError{Field: "sorting_order", Message: "must be ASC or DESC"})
		}
	}

	if a.MinTakenAt != nil && a.MaxTakenAt != nil && a.MaxTakenAt.Before(a.MinTakenAt.Time) {
		errs = append(errs, FieldError{Field: "max_taken_at", Message: "before min_taken_at"})
	}

	return CheckFields(errs)
}

// TagAlbum is a smart album whose content is every photo carrying one of
// ShowTags. It shares all base attributes with Album.
type TagAlbum struct {
	Album
	ShowTags []string
}

// NormalizeTags trims tags and drops blanks and duplicates, keeping the
// first occurrence order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// ShowTagsString joins ShowTags the way they are persisted.
func (t *TagAlbum) ShowTagsString() string {
	return strings.Join(t.ShowTags, ",")
}

// ParseShowTags splits a persisted tag list.
func ParseShowTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}

// AlbumFilter contains filtering/pagination parameters for album listings.
type AlbumFilter struct {
	// ParentID restricts the listing to direct children; nil lists top-level albums
	// unless AllLevels is set.
	ParentID  *uuid.UUID
	AllLevels bool
	Limit     int
	Offset    int
}
