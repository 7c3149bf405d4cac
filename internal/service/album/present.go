package album

import (
	"context"
	"fmt"
	"time"

	"github.com/lumen-gallery/albums/internal/datetime"
	"github.com/lumen-gallery/albums/internal/domain"
)

const sysdateLayout = "January 2006"

// ToReturnArray flattens an album or tag album into the key/value form sent
// to clients. Timestamps are re-expressed in the display zone of ctx and
// serialized with a numeric offset; unset timestamps become nil.
func (s *Service) ToReturnArray(ctx context.Context, v any) (map[string]any, error) {
	var (
		a        *domain.Album
		showTags []string
		isTag    bool
	)
	switch x := v.(type) {
	case *domain.Album:
		a = x
	case *domain.TagAlbum:
		if x != nil {
			a, showTags, isTag = &x.Album, x.ShowTags, true
		}
	default:
		return nil, fmt.Errorf("present album: unsupported type %T", v)
	}
	if a == nil {
		return nil, fmt.Errorf("present album: nil %T", v)
	}

	zone := s.zones.DisplayZone(ctx)
	sortCol, sortOrder := s.sorting(a.Sorting)

	out := map[string]any{
		"id":            a.ID.String(),
		"title":         a.Title,
		"description":   stringOrNil(a.Description),
		"sysdate":       sysdate(a.CreatedAt, zone),
		"min_taken_at":  clientTime(a.MinTakenAt, zone),
		"max_taken_at":  clientTime(a.MaxTakenAt, zone),
		"created_at":    clientTime(a.CreatedAt, zone),
		"updated_at":    clientTime(a.UpdatedAt, zone),
		"public":        a.Public,
		"visible":       a.Visible,
		"nsfw":          a.Nsfw,
		"downloadable":  a.Downloadable,
		"password":      a.HasPassword(),
		"license":       a.License.String(),
		"sorting_col":   sortCol,
		"sorting_order": sortOrder,
		"parent_id":     nil,
		"num_photos":    a.PhotoCount,
		"tag_album":     isTag,
	}
	if a.ParentID != nil {
		out["parent_id"] = a.ParentID.String()
	}
	if isTag {
		out["show_tags"] = append([]string(nil), showTags...)
	}

	return out, nil
}

// ToTagAlbum converts a regular album into a tag album showing photos
// with the given tags. Shared attributes are copied; the hierarchy and
// taken range do not carry over.
func ToTagAlbum(a *domain.Album, showTags []string) (*domain.TagAlbum, error) {
	tags := domain.NormalizeTags(showTags)
	if len(tags) == 0 {
		return nil, domain.NewValidationError("show_tags", "at least one tag is required")
	}

	base := *a
	base.ParentID = nil
	base.PhotoCount = 0
	base.MinTakenAt = nil
	base.MaxTakenAt = nil
	if a.Sorting != nil {
		sorting := *a.Sorting
		base.Sorting = &sorting
	}

	return &domain.TagAlbum{Album: base, ShowTags: tags}, nil
}

// sorting returns the album's sort settings, falling back to the
// configured defaults.
func (s *Service) sorting(sort *domain.Sorting) (col, order string) {
	if sort != nil {
		return sort.Column.String(), sort.Order.String()
	}
	return s.cfg.DefaultSortingCol, s.cfg.DefaultSortingOrder
}

func clientTime(t *datetime.Instant, zone *time.Location) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return datetime.SerializeForClient(t.In(zone))
}

func sysdate(t *datetime.Instant, zone *time.Location) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(zone).Format(sysdateLayout)
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
