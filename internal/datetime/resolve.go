package datetime

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	epochPattern    = regexp.MustCompile(`^[+-]?\d+$`)
)

// Years a stored value can carry in a four-digit layout.
const (
	minYear = 0
	maxYear = 9999
)

// parseStep tries one string format. ok is false when the format does not
// apply, so the next step runs. A non-nil error ends the chain.
type parseStep func(s string, display *time.Location) (t time.Time, ok bool, err error)

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case *string:
		return x == nil || strings.TrimSpace(*x) == ""
	case []byte:
		return len(bytes.TrimSpace(x)) == 0
	case json.Number:
		return x == ""
	case Instant:
		return x.IsZero()
	case *Instant:
		return x == nil || x.IsZero()
	case time.Time:
		return x.IsZero()
	case *time.Time:
		return x == nil || x.IsZero()
	case sql.NullTime:
		return !x.Valid || x.Time.IsZero()
	case sql.NullString:
		return !x.Valid || strings.TrimSpace(x.String) == ""
	case sql.NullInt64:
		return !x.Valid
	case pgtype.Timestamptz:
		return !x.Valid
	case pgtype.Timestamp:
		return !x.Valid
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// resolve runs the chain and rejects instants outside the years the storage
// layout can represent.
func (n *Normalizer) resolve(v any, display *time.Location) (Instant, error) {
	t, err := n.resolveValue(v, display)
	if err != nil {
		return Instant{}, err
	}
	if !n.inRange(t.Time) {
		return Instant{}, &ParseError{Input: fmt.Sprint(v), Err: errOutOfRange}
	}
	return t, nil
}

func (n *Normalizer) inRange(t time.Time) bool {
	for _, y := range []int{t.UTC().Year(), t.In(n.storage).Year()} {
		if y < minYear || y > maxYear {
			return false
		}
	}
	return true
}

func (n *Normalizer) resolveValue(v any, display *time.Location) (Instant, error) {
	switch x := v.(type) {
	case Instant:
		return x.In(display), nil
	case *Instant:
		return x.In(display), nil
	case time.Time:
		return Instant{Time: x}, nil
	case *time.Time:
		return Instant{Time: *x}, nil
	case sql.NullTime:
		return Instant{Time: x.Time}, nil
	case pgtype.Timestamptz:
		if x.InfinityModifier != pgtype.Finite {
			return Instant{}, &ParseError{Input: x.InfinityModifier.String()}
		}
		return Instant{Time: x.Time}, nil
	case pgtype.Timestamp:
		if x.InfinityModifier != pgtype.Finite {
			return Instant{}, &ParseError{Input: x.InfinityModifier.String()}
		}
		return Instant{Time: n.wallClock(x.Time).In(display)}, nil
	case string:
		return n.parseString(x, display)
	case *string:
		return n.parseString(*x, display)
	case []byte:
		return n.parseString(string(x), display)
	case sql.NullString:
		return n.parseString(x.String, display)
	case sql.NullInt64:
		return Instant{Time: time.Unix(x.Int64, 0).In(display)}, nil
	case json.Number:
		return n.parseString(x.String(), display)
	}

	t, ok, err := fromNumber(v)
	if err != nil {
		return Instant{}, err
	}
	if ok {
		return Instant{Time: t.In(display)}, nil
	}

	return Instant{}, &InvalidInputTypeError{Type: fmt.Sprintf("%T", v)}
}

func (n *Normalizer) parseString(s string, display *time.Location) (Instant, error) {
	s = strings.TrimSpace(s)
	for _, step := range n.steps {
		t, ok, err := step(s, display)
		if err != nil {
			return Instant{}, err
		}
		if ok {
			return Instant{Time: t}, nil
		}
	}
	return n.parseBestEffort(s, display)
}

func (n *Normalizer) parseEpoch(s string, display *time.Location) (time.Time, bool, error) {
	if epochPattern.MatchString(s) {
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, false, &ParseError{Input: s, Err: errOutOfRange}
		}
		return time.Unix(secs, 0).In(display), true, nil
	}
	// Fractional seconds, e.g. "1577836800.25".
	if strings.Count(s, ".") == 1 && strings.Trim(s, "+-.0123456789") == "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return time.Time{}, false, nil
		}
		t, err := fromFloat(f)
		if err != nil {
			return time.Time{}, false, err
		}
		return t.In(display), true, nil
	}
	return time.Time{}, false, nil
}

func (n *Normalizer) parseDateOnly(s string, display *time.Location) (time.Time, bool, error) {
	if !dateOnlyPattern.MatchString(s) {
		return time.Time{}, false, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, n.storage)
	if err != nil {
		return time.Time{}, false, nil
	}
	return t.In(display), true, nil
}

func (n *Normalizer) parseStorageLayout(s string, display *time.Location) (time.Time, bool, error) {
	t, err := time.ParseInLocation(n.layout, s, n.storage)
	if err != nil {
		return time.Time{}, false, nil
	}
	return n.localize(t, display), true, nil
}

func (n *Normalizer) parseBestEffort(s string, display *time.Location) (Instant, error) {
	t, err := dateparse.ParseIn(s, n.storage)
	if err != nil {
		return Instant{}, &ParseError{Input: s, Err: err}
	}
	return Instant{Time: n.localize(t, display)}, nil
}

// wallClock reads the fields of t as a wall clock in the storage zone.
func (n *Normalizer) wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), n.storage)
}

func fromNumber(v any) (time.Time, bool, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.Unix(rv.Int(), 0).UTC(), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return time.Time{}, false, &ParseError{Input: strconv.FormatUint(u, 10)}
		}
		return time.Unix(int64(u), 0).UTC(), true, nil
	case reflect.Float32, reflect.Float64:
		t, err := fromFloat(rv.Float())
		if err != nil {
			return time.Time{}, false, err
		}
		return t, true, nil
	}
	return time.Time{}, false, nil
}

// fromFloat converts epoch seconds with a fractional part. Values an int64
// cannot hold are rejected before conversion.
func fromFloat(f float64) (time.Time, error) {
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return time.Time{}, &ParseError{Input: strconv.FormatFloat(f, 'g', -1, 64), Err: errOutOfRange}
	}
	secs, frac := math.Modf(f)
	return time.Unix(int64(secs), int64(math.Round(frac*1e9))).UTC(), nil
}
