package album

//go:generate moq -out album_repo_mock_test.go -pkg album . albumRepo
//go:generate moq -out tx_manager_mock_test.go -pkg album . txManager
//go:generate moq -out zone_resolver_mock_test.go -pkg album . zoneResolver

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumen-gallery/albums/internal/config"
	"github.com/lumen-gallery/albums/internal/datetime"
	"github.com/lumen-gallery/albums/internal/domain"
)

var fixedNow = time.Date(2024, 3, 10, 8, 30, 15, 999, time.UTC)

func testConfig() config.AlbumConfig {
	return config.AlbumConfig{
		DefaultSortingCol:   "taken_at",
		DefaultSortingOrder: "ASC",
		ExportLimit:         2,
		MaxTags:             3,
		PasswordHashCost:    bcrypt.MinCost,
	}
}

func fixedZone(loc *time.Location) *zoneResolverMock {
	return &zoneResolverMock{
		DisplayZoneFunc: func(ctx context.Context) *time.Location { return loc },
	}
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func newTestService(t *testing.T, repo *albumRepoMock, tx *txManagerMock) *Service {
	t.Helper()
	svc := NewService(slog.Default(), repo, tx, fixedZone(time.UTC), testConfig())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func instantPtr(t time.Time) *datetime.Instant {
	i := datetime.NewInstant(t)
	return &i
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	desc := "  road trip  "
	pw := "hunter2"
	repo := &albumRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Album) (*domain.Album, error) {
			return a, nil
		},
	}
	svc := newTestService(t, repo, defaultTxMock())

	got, err := svc.Create(context.Background(), CreateAlbumInput{
		Title:       "  Iceland  ",
		Description: &desc,
		Hidden:      true,
		Password:    &pw,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID == uuid.Nil {
		t.Error("expected a generated ID")
	}
	if got.Title != "Iceland" {
		t.Errorf("title: got %q, want %q", got.Title, "Iceland")
	}
	if got.Description == nil || *got.Description != "road trip" {
		t.Errorf("description: got %v, want %q", got.Description, "road trip")
	}
	if got.Visible {
		t.Error("hidden album must not be visible")
	}
	if got.License != domain.LicenseNone {
		t.Errorf("license: got %q, want %q", got.License, domain.LicenseNone)
	}
	if got.CreatedAt == nil || !got.CreatedAt.Equal(fixedNow.Truncate(time.Second)) {
		t.Errorf("created_at: got %v, want %v", got.CreatedAt, fixedNow.Truncate(time.Second))
	}
	if got.PasswordHash == nil || *got.PasswordHash == pw {
		t.Fatal("password must be stored hashed")
	}
	if !CheckPassword(got, pw) || CheckPassword(got, "wrong") {
		t.Error("stored hash does not verify the password")
	}
	if len(repo.CreateCalls()) != 1 {
		t.Errorf("Create calls: got %d, want 1", len(repo.CreateCalls()))
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	t.Parallel()

	empty := ""
	nilParent := uuid.Nil

	tests := []struct {
		name      string
		input     CreateAlbumInput
		wantField string
	}{
		{"blank title", CreateAlbumInput{Title: "  "}, "title"},
		{"unknown license", CreateAlbumInput{Title: "x", License: "GPL"}, "license"},
		{"empty password", CreateAlbumInput{Title: "x", Password: &empty}, "password"},
		{"nil parent", CreateAlbumInput{Title: "x", ParentID: &nilParent}, "parent_id"},
		{"bad sorting", CreateAlbumInput{
			Title:   "x",
			Sorting: &domain.Sorting{Column: domain.SortingColumnTitle, Order: "sideways"},
		}, "sorting_order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &albumRepoMock{}
			svc := newTestService(t, repo, defaultTxMock())

			_, err := svc.Create(context.Background(), tt.input)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Errors[0].Field != tt.wantField {
				t.Errorf("field: got %q, want %q", ve.Errors[0].Field, tt.wantField)
			}
			if len(repo.CreateCalls()) != 0 {
				t.Error("repo must not be called on invalid input")
			}
		})
	}
}

func TestCreate_RepoError(t *testing.T) {
	t.Parallel()

	repo := &albumRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Album) (*domain.Album, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(t, repo, defaultTxMock())

	_, err := svc.Create(context.Background(), CreateAlbumInput{Title: "child"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

func TestExport_CapsLimitAndPresents(t *testing.T) {
	t.Parallel()

	parent := uuid.New()
	child := &domain.Album{
		ID:        uuid.New(),
		ParentID:  &parent,
		Title:     "child",
		License:   domain.LicenseNone,
		CreatedAt: instantPtr(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
	}
	repo := &albumRepoMock{
		ListFunc: func(ctx context.Context, filter domain.AlbumFilter) ([]*domain.Album, error) {
			return []*domain.Album{child}, nil
		},
	}
	svc := newTestService(t, repo, defaultTxMock())

	got, err := svc.Export(context.Background(), ExportInput{ParentID: &parent, Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len: got %d, want 1", len(got))
	}
	if got[0]["parent_id"] != parent.String() {
		t.Errorf("parent_id: got %v, want %s", got[0]["parent_id"], parent)
	}

	calls := repo.ListCalls()
	if len(calls) != 1 {
		t.Fatalf("List calls: got %d, want 1", len(calls))
	}
	if calls[0].Filter.Limit != 2 {
		t.Errorf("limit: got %d, want export limit 2", calls[0].Filter.Limit)
	}
	if calls[0].Filter.ParentID == nil || *calls[0].Filter.ParentID != parent {
		t.Errorf("parent filter: got %v, want %s", calls[0].Filter.ParentID, parent)
	}
}

func TestExport_InvalidInput(t *testing.T) {
	t.Parallel()

	parent := uuid.New()
	svc := newTestService(t, &albumRepoMock{}, defaultTxMock())

	_, err := svc.Export(context.Background(), ExportInput{ParentID: &parent, AllLevels: true})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestExport_PropagatesParseError(t *testing.T) {
	t.Parallel()

	parseErr := &datetime.ParseError{Input: "garbage"}
	repo := &albumRepoMock{
		ListFunc: func(ctx context.Context, filter domain.AlbumFilter) ([]*domain.Album, error) {
			return nil, parseErr
		},
	}
	svc := newTestService(t, repo, defaultTxMock())

	_, err := svc.Export(context.Background(), ExportInput{})
	if !errors.Is(err, datetime.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ConvertToTagAlbum
// ---------------------------------------------------------------------------

func TestConvertToTagAlbum_Success(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	parent := uuid.New()
	stored := &domain.Album{
		ID:         id,
		ParentID:   &parent,
		Title:      "Pets",
		License:    domain.LicenseCCBY,
		Public:     true,
		Visible:    true,
		PhotoCount: 12,
		MinTakenAt: instantPtr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		CreatedAt:  instantPtr(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	var order []string
	repo := &albumRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (*domain.Album, error) {
			order = append(order, "get")
			return stored, nil
		},
		ListFunc: func(ctx context.Context, filter domain.AlbumFilter) ([]*domain.Album, error) {
			order = append(order, "children")
			if filter.ParentID == nil || *filter.ParentID != id {
				t.Errorf("children lookup: got parent %v, want %s", filter.ParentID, id)
			}
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, gotID uuid.UUID) error {
			order = append(order, "delete")
			return nil
		},
		CreateTagAlbumFunc: func(ctx context.Context, ta *domain.TagAlbum) (*domain.TagAlbum, error) {
			order = append(order, "create")
			return ta, nil
		},
	}
	tx := defaultTxMock()
	svc := newTestService(t, repo, tx)

	got, err := svc.ConvertToTagAlbum(context.Background(), ConvertToTagAlbumInput{
		AlbumID:  id,
		ShowTags: []string{" cat ", "dog", "cat"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID != id || got.Title != "Pets" || !got.Public || got.License != domain.LicenseCCBY {
		t.Errorf("shared attributes not copied: %+v", got.Album)
	}
	if got.ShowTagsString() != "cat,dog" {
		t.Errorf("show_tags: got %q, want %q", got.ShowTagsString(), "cat,dog")
	}
	if got.ParentID != nil || got.MinTakenAt != nil || got.PhotoCount != 0 {
		t.Errorf("hierarchy and taken range must not carry over: %+v", got.Album)
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(fixedNow.Truncate(time.Second)) {
		t.Errorf("updated_at: got %v", got.UpdatedAt)
	}
	if len(tx.RunInTxCalls()) != 1 {
		t.Errorf("RunInTx calls: got %d, want 1", len(tx.RunInTxCalls()))
	}
	if want := []string{"get", "children", "delete", "create"}; !slices.Equal(order, want) {
		t.Errorf("call order: got %v, want %v", order, want)
	}
}

func TestConvertToTagAlbum_TooManyTags(t *testing.T) {
	t.Parallel()

	repo := &albumRepoMock{}
	svc := newTestService(t, repo, defaultTxMock())

	_, err := svc.ConvertToTagAlbum(context.Background(), ConvertToTagAlbumInput{
		AlbumID:  uuid.New(),
		ShowTags: []string{"a", "b", "c", "d"},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(repo.GetByIDCalls()) != 0 {
		t.Error("repo must not be called when validation fails")
	}
}

func TestConvertToTagAlbum_NoTags(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &albumRepoMock{}, defaultTxMock())

	_, err := svc.ConvertToTagAlbum(context.Background(), ConvertToTagAlbumInput{
		AlbumID:  uuid.New(),
		ShowTags: []string{" ", ""},
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Errors[0].Field != "show_tags" {
		t.Errorf("field: got %q, want show_tags", ve.Errors[0].Field)
	}
}

func TestConvertToTagAlbum_DeleteFails(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("disk full")
	repo := &albumRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
			return &domain.Album{ID: id, Title: "x", License: domain.LicenseNone}, nil
		},
		ListFunc: func(ctx context.Context, filter domain.AlbumFilter) ([]*domain.Album, error) {
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return dbErr
		},
	}
	svc := newTestService(t, repo, defaultTxMock())

	_, err := svc.ConvertToTagAlbum(context.Background(), ConvertToTagAlbumInput{
		AlbumID:  uuid.New(),
		ShowTags: []string{"x"},
	})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if len(repo.CreateTagAlbumCalls()) != 0 {
		t.Error("tag album must not be created after a failed delete")
	}
}

func TestConvertToTagAlbum_RefusesAlbumWithChildren(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repo := &albumRepoMock{
		GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (*domain.Album, error) {
			return &domain.Album{ID: gotID, Title: "Trips", License: domain.LicenseNone}, nil
		},
		ListFunc: func(ctx context.Context, filter domain.AlbumFilter) ([]*domain.Album, error) {
			return []*domain.Album{{ID: uuid.New(), ParentID: &id, Title: "Rome"}}, nil
		},
	}
	svc := newTestService(t, repo, defaultTxMock())

	_, err := svc.ConvertToTagAlbum(context.Background(), ConvertToTagAlbumInput{
		AlbumID:  id,
		ShowTags: []string{"travel"},
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(repo.DeleteCalls()) != 0 || len(repo.CreateTagAlbumCalls()) != 0 {
		t.Error("album with sub-albums must be left untouched")
	}
}

func TestConvertToTagAlbum_ChildLookupFails(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")
	repo := &albumRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
			return &domain.Album{ID: id, Title: "x", License: domain.LicenseNone}, nil
		},
		ListFunc: func(ctx context.Context, filter domain.AlbumFilter) ([]*domain.Album, error) {
			return nil, dbErr
		},
	}
	svc := newTestService(t, repo, defaultTxMock())

	_, err := svc.ConvertToTagAlbum(context.Background(), ConvertToTagAlbumInput{
		AlbumID:  uuid.New(),
		ShowTags: []string{"x"},
	})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if len(repo.DeleteCalls()) != 0 {
		t.Error("album must not be deleted when the sub-album lookup fails")
	}
}

// ---------------------------------------------------------------------------
// SetTakenRange
// ---------------------------------------------------------------------------

func TestSetTakenRange(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	minTaken := instantPtr(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))
	maxTaken := instantPtr(time.Date(2023, 5, 3, 0, 0, 0, 0, time.UTC))

	repo := &albumRepoMock{
		UpdateTakenRangeFunc: func(ctx context.Context, gotID uuid.UUID, mn, mx, upd *datetime.Instant) error {
			return nil
		},
	}
	svc := newTestService(t, repo, defaultTxMock())

	if err := svc.SetTakenRange(context.Background(), SetTakenRangeInput{
		AlbumID: id, MinTakenAt: minTaken, MaxTakenAt: maxTaken,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := repo.UpdateTakenRangeCalls()
	if len(calls) != 1 {
		t.Fatalf("UpdateTakenRange calls: got %d, want 1", len(calls))
	}
	if calls[0].ID != id || calls[0].MinTaken != minTaken || calls[0].MaxTaken != maxTaken {
		t.Errorf("unexpected arguments: %+v", calls[0])
	}
	if calls[0].UpdatedAt == nil || !calls[0].UpdatedAt.Equal(fixedNow.Truncate(time.Second)) {
		t.Errorf("updated_at: got %v", calls[0].UpdatedAt)
	}

	err := svc.SetTakenRange(context.Background(), SetTakenRangeInput{
		AlbumID: id, MinTakenAt: maxTaken, MaxTakenAt: minTaken,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("inverted range: expected ErrValidation, got %v", err)
	}
}
