// Package album implements the album and tag album repositories on the
// embedded SQLite store. Timestamps live in TEXT columns as naive wall
// clocks in the storage timezone.
package album

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lumen-gallery/albums/internal/adapter/sqlite"
	"github.com/lumen-gallery/albums/internal/datetime"
	"github.com/lumen-gallery/albums/internal/domain"
)

type timestampCodec interface {
	ToStorage(ctx context.Context, v any) (*string, error)
	FromStorage(ctx context.Context, v any) (*datetime.Instant, error)
}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const (
	baseSelectColumns = `id, title, description, is_public, is_hidden, is_downloadable, is_nsfw,
       license, sorting_col, sorting_order, password`
	albumSelectColumns    = baseSelectColumns + `, parent_id, photo_count, min_taken_at, max_taken_at, created_at, updated_at`
	tagAlbumSelectColumns = baseSelectColumns + `, show_tags, created_at, updated_at`

	selectAlbum    = `SELECT ` + albumSelectColumns + ` FROM albums`
	selectTagAlbum = `SELECT ` + tagAlbumSelectColumns + ` FROM tag_albums`
)

// Repo provides album persistence backed by SQLite.
type Repo struct {
	db    *sql.DB
	codec timestampCodec
}

// New creates a new album repository.
func New(db *sql.DB, codec timestampCodec) *Repo {
	return &Repo{db: db, codec: codec}
}

// Create inserts a regular album and returns it as stored.
func (r *Repo) Create(ctx context.Context, a *domain.Album) (*domain.Album, error) {
	ts, err := r.encodeTimes(ctx, a.ID, a.MinTakenAt, a.MaxTakenAt, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	sortCol, sortOrder := sortingValues(a.Sorting)
	query, args, err := qb.Insert("albums").
		SetMap(map[string]any{
			"id":              a.ID,
			"parent_id":       a.ParentID,
			"title":           a.Title,
			"description":     a.Description,
			"is_public":       a.Public,
			"is_hidden":       !a.Visible,
			"is_downloadable": a.Downloadable,
			"is_nsfw":         a.Nsfw,
			"license":         a.License.String(),
			"sorting_col":     sortCol,
			"sorting_order":   sortOrder,
			"password":        a.PasswordHash,
			"photo_count":     a.PhotoCount,
			"min_taken_at":    ts[0],
			"max_taken_at":    ts[1],
			"created_at":      ts[2],
			"updated_at":      ts[3],
		}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert album: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, "album", a.ID)
	}

	return r.GetByID(ctx, a.ID)
}

// GetByID returns a regular album by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	row := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, selectAlbum+` WHERE id = ?`, id)
	a, err := r.scanAlbum(ctx, row)
	if err != nil {
		return nil, sqlite.MapError(err, "album", id)
	}
	return a, nil
}

// List returns albums ordered by creation time. Returns an empty slice
// (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.AlbumFilter) ([]*domain.Album, error) {
	sb := qb.Select().From("albums").OrderBy("created_at ASC", "id ASC")
	if !filter.AllLevels {
		if filter.ParentID != nil {
			sb = sb.Where(squirrel.Eq{"parent_id": *filter.ParentID})
		} else {
			sb = sb.Where(squirrel.Eq{"parent_id": nil})
		}
	}
	// SQLite only accepts OFFSET after a LIMIT.
	if filter.Limit > 0 {
		sb = sb.Limit(uint64(filter.Limit)).Offset(uint64(max(filter.Offset, 0)))
	}

	query, args, err := sb.Columns(albumSelectColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list albums: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()

	albums := make([]*domain.Album, 0)
	for rows.Next() {
		a, err := r.scanAlbum(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("list albums: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}

	return albums, nil
}

// UpdateTakenRange overwrites the taken-at range and, when updatedAt is
// set, bumps updated_at.
func (r *Repo) UpdateTakenRange(ctx context.Context, id uuid.UUID, minTaken, maxTaken, updatedAt *datetime.Instant) error {
	ts, err := r.encodeTimes(ctx, id, minTaken, maxTaken, updatedAt)
	if err != nil {
		return err
	}

	ub := qb.Update("albums").
		Set("min_taken_at", ts[0]).
		Set("max_taken_at", ts[1]).
		Where(squirrel.Eq{"id": id})
	if ts[2] != nil {
		ub = ub.Set("updated_at", ts[2])
	}

	query, args, err := ub.ToSql()
	if err != nil {
		return fmt.Errorf("build update album: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "album", id)
	}
	return requireRow(res, "album", id)
}

// Delete removes a regular album. Child albums are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, `DELETE FROM albums WHERE id = ?`, id)
	if err != nil {
		return sqlite.MapError(err, "album", id)
	}
	return requireRow(res, "album", id)
}

// CreateTagAlbum inserts a tag album and returns it as stored.
func (r *Repo) CreateTagAlbum(ctx context.Context, t *domain.TagAlbum) (*domain.TagAlbum, error) {
	ts, err := r.encodeTimes(ctx, t.ID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	sortCol, sortOrder := sortingValues(t.Sorting)
	query, args, err := qb.Insert("tag_albums").
		SetMap(map[string]any{
			"id":              t.ID,
			"title":           t.Title,
			"description":     t.Description,
			"is_public":       t.Public,
			"is_hidden":       !t.Visible,
			"is_downloadable": t.Downloadable,
			"is_nsfw":         t.Nsfw,
			"license":         t.License.String(),
			"sorting_col":     sortCol,
			"sorting_order":   sortOrder,
			"password":        t.PasswordHash,
			"show_tags":       t.ShowTagsString(),
			"created_at":      ts[0],
			"updated_at":      ts[1],
		}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert tag album: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, "tag_album", t.ID)
	}

	return r.GetTagAlbumByID(ctx, t.ID)
}

// GetTagAlbumByID returns a tag album by primary key.
func (r *Repo) GetTagAlbumByID(ctx context.Context, id uuid.UUID) (*domain.TagAlbum, error) {
	row := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, selectTagAlbum+` WHERE id = ?`, id)
	t, err := r.scanTagAlbum(ctx, row)
	if err != nil {
		return nil, sqlite.MapError(err, "tag_album", id)
	}
	return t, nil
}

// ListTagAlbums returns all tag albums ordered by creation time.
func (r *Repo) ListTagAlbums(ctx context.Context) ([]*domain.TagAlbum, error) {
	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, selectTagAlbum+` ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tag albums: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.TagAlbum, 0)
	for rows.Next() {
		t, err := r.scanTagAlbum(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("list tag albums: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tag albums: %w", err)
	}

	return result, nil
}

// DeleteTagAlbum removes a tag album.
func (r *Repo) DeleteTagAlbum(ctx context.Context, id uuid.UUID) error {
	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, `DELETE FROM tag_albums WHERE id = ?`, id)
	if err != nil {
		return sqlite.MapError(err, "tag_album", id)
	}
	return requireRow(res, "tag_album", id)
}

func requireRow(res sql.Result, entity string, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: rows affected: %w", entity, id, err)
	}
	if n == 0 {
		return sqlite.MapError(sql.ErrNoRows, entity, id)
	}
	return nil
}

// encodeTimes runs every timestamp through the codec, in argument order.
func (r *Repo) encodeTimes(ctx context.Context, id uuid.UUID, times ...*datetime.Instant) ([]*string, error) {
	out := make([]*string, len(times))
	for i, t := range times {
		s, err := r.codec.ToStorage(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("album %s: encode timestamp: %w", id, err)
		}
		out[i] = s
	}
	return out, nil
}

func (r *Repo) decode(ctx context.Context, raw sql.NullString) (*datetime.Instant, error) {
	t, err := r.codec.FromStorage(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("decode timestamp: %w", err)
	}
	return t, nil
}

func sortingValues(s *domain.Sorting) (col, order *string) {
	if s == nil {
		return nil, nil
	}
	c, o := s.Column.String(), s.Order.String()
	return &c, &o
}

type scanner interface {
	Scan(dest ...any) error
}

type baseRow struct {
	hidden    bool
	license   string
	sortCol   sql.NullString
	sortOrder sql.NullString
}

func (b *baseRow) dest(a *domain.Album) []any {
	return []any{
		&a.ID, &a.Title, &a.Description, &a.Public, &b.hidden, &a.Downloadable,
		&a.Nsfw, &b.license, &b.sortCol, &b.sortOrder, &a.PasswordHash,
	}
}

func (b *baseRow) apply(a *domain.Album) {
	a.Visible = !b.hidden
	a.License = domain.License(b.license)
	if b.sortCol.Valid && b.sortOrder.Valid {
		a.Sorting = &domain.Sorting{
			Column: domain.SortingColumn(b.sortCol.String),
			Order:  domain.SortingOrder(b.sortOrder.String),
		}
	}
}

func (r *Repo) scanAlbum(ctx context.Context, row scanner) (*domain.Album, error) {
	var (
		a                                domain.Album
		base                             baseRow
		minTaken, maxTaken, created, upd sql.NullString
	)

	dest := append(base.dest(&a), &a.ParentID, &a.PhotoCount, &minTaken, &maxTaken, &created, &upd)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	base.apply(&a)

	var err error
	for _, f := range []struct {
		dst **datetime.Instant
		raw sql.NullString
	}{
		{&a.MinTakenAt, minTaken},
		{&a.MaxTakenAt, maxTaken},
		{&a.CreatedAt, created},
		{&a.UpdatedAt, upd},
	} {
		if *f.dst, err = r.decode(ctx, f.raw); err != nil {
			return nil, err
		}
	}

	return &a, nil
}

func (r *Repo) scanTagAlbum(ctx context.Context, row scanner) (*domain.TagAlbum, error) {
	var (
		t            domain.TagAlbum
		base         baseRow
		showTags     string
		created, upd sql.NullString
	)

	dest := append(base.dest(&t.Album), &showTags, &created, &upd)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	base.apply(&t.Album)
	t.ShowTags = domain.ParseShowTags(showTags)

	var err error
	if t.CreatedAt, err = r.decode(ctx, created); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = r.decode(ctx, upd); err != nil {
		return nil, err
	}

	return &t, nil
}
