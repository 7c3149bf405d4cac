package datetime

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/99designs/gqlgen/graphql"
)

// ClientLayout is the wire format handed to clients: ISO-8601 with a
// numeric UTC offset, e.g. 2024-01-31T10:15:00+0000.
const ClientLayout = "2006-01-02T15:04:05-0700"

var (
	_ graphql.Marshaler   = Instant{}
	_ graphql.Unmarshaler = (*Instant)(nil)
)

// Instant is a timezone-aware point in time as the application handles it.
// It is a value type: every zone change yields a new Instant.
type Instant struct {
	time.Time
}

// NewInstant wraps t without changing its location.
func NewInstant(t time.Time) Instant {
	return Instant{Time: t}
}

// In returns a copy of t expressed in loc.
func (t Instant) In(loc *time.Location) Instant {
	return Instant{Time: t.Time.In(loc)}
}

// SerializeForClient formats t in ClientLayout. The result always carries an
// explicit offset, whatever the display timezone.
func SerializeForClient(t Instant) string {
	return t.Time.Format(ClientLayout)
}

// ParseClient parses a value produced by SerializeForClient. RFC 3339 input
// is accepted as well.
func ParseClient(s string) (Instant, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{ClientLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return Instant{Time: t}, nil
		}
	}
	return Instant{}, &ParseError{Input: s}
}

// MarshalJSON emits SerializeForClient output, or null for the zero Instant.
func (t Instant) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(SerializeForClient(t))), nil
}

// UnmarshalJSON accepts null or a quoted client timestamp.
func (t *Instant) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*t = Instant{}
		return nil
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("datetime: instant must be a JSON string: %w", err)
	}
	parsed, err := ParseClient(unquoted)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalGQL writes t as a GraphQL string scalar, or null for the zero
// Instant.
func (t Instant) MarshalGQL(w io.Writer) {
	if t.IsZero() {
		graphql.Null.MarshalGQL(w)
		return
	}
	io.WriteString(w, strconv.Quote(SerializeForClient(t))) //nolint:errcheck
}

// UnmarshalGQL reads a GraphQL string scalar. null yields the zero Instant.
func (t *Instant) UnmarshalGQL(v any) error {
	if v == nil {
		*t = Instant{}
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return &InvalidInputTypeError{Type: fmt.Sprintf("%T", v)}
	}
	parsed, err := ParseClient(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
