// Package datetime marshals timestamps between the application and the
// database.
//
// The database only ever sees naive strings in the storage layout, always
// meaning a wall clock in the storage timezone. The application only ever
// sees aware Instants, expressed in the display timezone of the current call.
// The display timezone is looked up on every call (context first, then the
// configured source) and is never cached.
//
// Known ambiguity: a parsed value whose offset equals the storage timezone's
// offset is treated as naive and re-expressed in the display timezone. An
// explicit offset that happens to coincide with the storage offset cannot be
// told apart from a missing one.
package datetime

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lumen-gallery/albums/pkg/ctxutil"
)

const (
	// DefaultStorageZone is the zone naive database values are read in.
	DefaultStorageZone = "UTC"
	// DefaultStorageLayout matches a datetime column without zone suffix.
	DefaultStorageLayout = time.DateTime
)

// ZoneSource yields the display timezone at call time.
type ZoneSource func() *time.Location

// LocalZone reads the process-wide local zone at call time.
func LocalZone() *time.Location {
	return time.Local
}

// FixedZone returns a ZoneSource that always yields loc.
func FixedZone(loc *time.Location) ZoneSource {
	return func() *time.Location { return loc }
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithStorageZone sets the zone naive storage values are interpreted in.
func WithStorageZone(loc *time.Location) Option {
	return func(n *Normalizer) { n.storage = loc }
}

// WithStorageLayout sets the Go layout of stored values.
func WithStorageLayout(layout string) Option {
	return func(n *Normalizer) { n.layout = layout }
}

// WithDisplayZone sets the fallback display zone source used when the
// context carries none.
func WithDisplayZone(src ZoneSource) Option {
	return func(n *Normalizer) { n.display = src }
}

// Normalizer converts temporal values to and from their storage form.
// It is immutable after New and safe for concurrent use.
type Normalizer struct {
	storage *time.Location
	layout  string
	display ZoneSource
	steps   []parseStep
}

// New builds a Normalizer. Without options it stores UTC in
// DefaultStorageLayout and displays in the process local zone.
func New(opts ...Option) (*Normalizer, error) {
	n := &Normalizer{
		storage: time.UTC,
		layout:  DefaultStorageLayout,
		display: LocalZone,
	}
	for _, opt := range opts {
		opt(n)
	}

	if n.storage == nil {
		return nil, errors.New("datetime: storage zone is required")
	}
	if n.display == nil {
		n.display = LocalZone
	}
	if err := ValidateLayout(n.layout); err != nil {
		return nil, err
	}

	n.steps = []parseStep{
		n.parseEpoch,
		n.parseDateOnly,
		n.parseStorageLayout,
	}

	return n, nil
}

// ValidateLayout checks that layout carries a full date and time down to the
// second, so that a stored value names a single instant.
func ValidateLayout(layout string) error {
	if strings.TrimSpace(layout) == "" {
		return errors.New("datetime: storage layout is required")
	}
	ref := time.Date(2009, time.November, 10, 23, 17, 41, 0, time.UTC)
	parsed, err := time.ParseInLocation(layout, ref.Format(layout), time.UTC)
	if err != nil {
		return fmt.Errorf("datetime: storage layout %q: %w", layout, err)
	}
	if !parsed.Equal(ref) {
		return fmt.Errorf("datetime: storage layout %q loses date or time fields", layout)
	}
	return nil
}

// StorageZone returns the zone naive values are interpreted in.
func (n *Normalizer) StorageZone() *time.Location {
	return n.storage
}

// StorageLayout returns the layout of stored values.
func (n *Normalizer) StorageLayout() string {
	return n.layout
}

// DisplayZone returns the display zone for a call made with ctx.
func (n *Normalizer) DisplayZone(ctx context.Context) *time.Location {
	if loc, ok := ctxutil.TimezoneFromCtx(ctx); ok {
		return loc
	}
	if loc := n.display(); loc != nil {
		return loc
	}
	return time.UTC
}

// ToStorage resolves v like FromStorage and formats it in the storage
// layout, expressed in the storage zone. Empty input yields nil.
// The argument is never modified.
func (n *Normalizer) ToStorage(ctx context.Context, v any) (*string, error) {
	if isEmpty(v) {
		return nil, nil
	}

	t, err := n.resolve(v, n.DisplayZone(ctx))
	if err != nil {
		return nil, err
	}

	s := t.Time.In(n.storage).Format(n.layout)
	return &s, nil
}

// FromStorage resolves v into an Instant. First match wins:
//
//  1. empty (nil, blank string, zero time, NULL wrapper): nil
//  2. Instant: a copy in the display zone
//  3. time.Time, sql.NullTime, pgtype.Timestamptz: kept in their own zone
//  4. numbers and all-digit strings: epoch seconds (UTC), in the display zone
//  5. YYYY-MM-DD: midnight in the storage zone, in the display zone
//  6. storage layout: parsed in the storage zone, see localize
//  7. best-effort parse in the storage zone, see localize
//
// A string no step recognizes fails with a *ParseError, as does any result
// outside the years 0000-9999 in UTC or the storage zone. Unsupported types
// fail with an *InvalidInputTypeError.
func (n *Normalizer) FromStorage(ctx context.Context, v any) (*Instant, error) {
	if isEmpty(v) {
		return nil, nil
	}

	t, err := n.resolve(v, n.DisplayZone(ctx))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// localize moves t into display when its offset equals the storage zone's
// offset at that instant, i.e. when it is assumed to have been naive.
func (n *Normalizer) localize(t time.Time, display *time.Location) time.Time {
	_, offset := t.Zone()
	_, storageOffset := t.In(n.storage).Zone()
	if offset == storageOffset {
		return t.In(display)
	}
	return t
}
