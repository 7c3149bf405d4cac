// Package album implements the album and tag album repositories using
// PostgreSQL. Timestamps are written and read as naive wall clocks in the
// storage timezone; the conversion is delegated to a timestamp codec.
package album

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumen-gallery/albums/internal/adapter/postgres"
	"github.com/lumen-gallery/albums/internal/datetime"
	"github.com/lumen-gallery/albums/internal/domain"
)

// timestampCodec converts timestamps at the persistence boundary.
type timestampCodec interface {
	ToStorage(ctx context.Context, v any) (*string, error)
	FromStorage(ctx context.Context, v any) (*datetime.Instant, error)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	albumsTable    = "albums"
	tagAlbumsTable = "tag_albums"
)

var baseColumns = []string{
	"id", "title", "description", "is_public", "is_hidden", "is_downloadable",
	"is_nsfw", "license", "sorting_col", "sorting_order", "password",
}

var albumColumns = append(append([]string{}, baseColumns...),
	"parent_id", "photo_count", "min_taken_at", "max_taken_at", "created_at", "updated_at")

var tagAlbumColumns = append(append([]string{}, baseColumns...),
	"show_tags", "created_at", "updated_at")

// Repo provides album persistence backed by PostgreSQL.
type Repo struct {
	pool  *pgxpool.Pool
	codec timestampCodec
}

// New creates a new album repository.
func New(pool *pgxpool.Pool, codec timestampCodec) *Repo {
	return &Repo{pool: pool, codec: codec}
}

// ---------------------------------------------------------------------------
// Albums
// ---------------------------------------------------------------------------

// Create inserts a regular album and returns it as stored.
func (r *Repo) Create(ctx context.Context, a *domain.Album) (*domain.Album, error) {
	ts, err := r.encodeTimes(ctx, a.ID, a.MinTakenAt, a.MaxTakenAt, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	values := append(baseValues(a), a.ParentID, a.PhotoCount, ts[0], ts[1], ts[2], ts[3])
	query, args, err := psql.Insert(albumsTable).Columns(albumColumns...).Values(values...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert album: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "album", a.ID)
	}

	return r.GetByID(ctx, a.ID)
}

// GetByID returns a regular album by primary key.
// Returns domain.ErrNotFound if the album does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	query, args, err := psql.Select(albumColumns...).From(albumsTable).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select album: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	a, err := r.scanAlbum(ctx, row)
	if err != nil {
		return nil, postgres.MapError(err, "album", id)
	}
	return a, nil
}

// List returns albums ordered by creation time. Returns an empty slice
// (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.AlbumFilter) ([]*domain.Album, error) {
	sb := psql.Select(albumColumns...).From(albumsTable).OrderBy("created_at ASC", "id ASC")
	if !filter.AllLevels {
		if filter.ParentID != nil {
			sb = sb.Where(squirrel.Eq{"parent_id": *filter.ParentID})
		} else {
			sb = sb.Where(squirrel.Eq{"parent_id": nil})
		}
	}
	if filter.Limit > 0 {
		sb = sb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sb = sb.Offset(uint64(filter.Offset))
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list albums: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
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

// UpdateTakenRange overwrites the taken-at range and bumps updated_at.
// A nil bound clears the column.
func (r *Repo) UpdateTakenRange(ctx context.Context, id uuid.UUID, minTaken, maxTaken, updatedAt *datetime.Instant) error {
	ts, err := r.encodeTimes(ctx, id, minTaken, maxTaken, updatedAt)
	if err != nil {
		return err
	}

	ub := psql.Update(albumsTable).
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

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "album", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "album", id)
	}
	return nil
}

// Delete removes a regular album. Child albums are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, albumsTable, "album", id)
}

// ---------------------------------------------------------------------------
// Tag albums
// ---------------------------------------------------------------------------

// CreateTagAlbum inserts a tag album and returns it as stored.
func (r *Repo) CreateTagAlbum(ctx context.Context, t *domain.TagAlbum) (*domain.TagAlbum, error) {
	ts, err := r.encodeTimes(ctx, t.ID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	values := append(baseValues(&t.Album), t.ShowTagsString(), ts[0], ts[1])
	query, args, err := psql.Insert(tagAlbumsTable).Columns(tagAlbumColumns...).Values(values...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert tag album: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "tag_album", t.ID)
	}

	return r.GetTagAlbumByID(ctx, t.ID)
}

// GetTagAlbumByID returns a tag album by primary key.
// Returns domain.ErrNotFound if the tag album does not exist.
func (r *Repo) GetTagAlbumByID(ctx context.Context, id uuid.UUID) (*domain.TagAlbum, error) {
	query, args, err := psql.Select(tagAlbumColumns...).From(tagAlbumsTable).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select tag album: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	t, err := r.scanTagAlbum(ctx, row)
	if err != nil {
		return nil, postgres.MapError(err, "tag_album", id)
	}
	return t, nil
}

// ListTagAlbums returns all tag albums ordered by creation time.
func (r *Repo) ListTagAlbums(ctx context.Context) ([]*domain.TagAlbum, error) {
	query, args, err := psql.Select(tagAlbumColumns...).From(tagAlbumsTable).
		OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tag albums: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
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
	return r.delete(ctx, tagAlbumsTable, "tag_album", id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) delete(ctx context.Context, table, entity string, id uuid.UUID) error {
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

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

func (r *Repo) decodeTimes(ctx context.Context, raw ...*pgtype.Timestamp) ([]*datetime.Instant, error) {
	out := make([]*datetime.Instant, len(raw))
	for i, ts := range raw {
		t, err := r.codec.FromStorage(ctx, *ts)
		if err != nil {
			return nil, fmt.Errorf("decode timestamp: %w", err)
		}
		out[i] = t
	}
	return out, nil
}

func baseValues(a *domain.Album) []any {
	var sortCol, sortOrder *string
	if a.Sorting != nil {
		col, order := a.Sorting.Column.String(), a.Sorting.Order.String()
		sortCol, sortOrder = &col, &order
	}
	return []any{
		a.ID, a.Title, a.Description, a.Public, !a.Visible, a.Downloadable,
		a.Nsfw, a.License.String(), sortCol, sortOrder, a.PasswordHash,
	}
}

type baseRow struct {
	hidden    bool
	license   string
	sortCol   *string
	sortOrder *string
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
	if b.sortCol != nil && b.sortOrder != nil {
		a.Sorting = &domain.Sorting{
			Column: domain.SortingColumn(*b.sortCol),
			Order:  domain.SortingOrder(*b.sortOrder),
		}
	}
}

func (r *Repo) scanAlbum(ctx context.Context, row pgx.Row) (*domain.Album, error) {
	var (
		a                                domain.Album
		base                             baseRow
		minTaken, maxTaken, created, upd pgtype.Timestamp
	)

	dest := append(base.dest(&a), &a.ParentID, &a.PhotoCount, &minTaken, &maxTaken, &created, &upd)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	base.apply(&a)

	ts, err := r.decodeTimes(ctx, &minTaken, &maxTaken, &created, &upd)
	if err != nil {
		return nil, err
	}
	a.MinTakenAt, a.MaxTakenAt, a.CreatedAt, a.UpdatedAt = ts[0], ts[1], ts[2], ts[3]

	return &a, nil
}

func (r *Repo) scanTagAlbum(ctx context.Context, row pgx.Row) (*domain.TagAlbum, error) {
	var (
		t            domain.TagAlbum
		base         baseRow
		showTags     string
		created, upd pgtype.Timestamp
	)

	dest := append(base.dest(&t.Album), &showTags, &created, &upd)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	base.apply(&t.Album)
	t.ShowTags = domain.ParseShowTags(showTags)

	ts, err := r.decodeTimes(ctx, &created, &upd)
	if err != nil {
		return nil, err
	}
	t.CreatedAt, t.UpdatedAt = ts[0], ts[1]

	return &t, nil
}
