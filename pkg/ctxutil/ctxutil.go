package ctxutil

import (
	"context"
	"time"
)

type ctxKey string

const (
	timezoneKey  ctxKey = "timezone"
	requestIDKey ctxKey = "request_id"
)

// WithTimezone stores the display timezone for the current call in the context.
// A nil location leaves the context unchanged.
func WithTimezone(ctx context.Context, loc *time.Location) context.Context {
	if loc == nil {
		return ctx
	}
	return context.WithValue(ctx, timezoneKey, loc)
}

// TimezoneFromCtx extracts the display timezone from the context.
// Returns nil and false if the value is missing or of the wrong type.
func TimezoneFromCtx(ctx context.Context) (*time.Location, bool) {
	loc, ok := ctx.Value(timezoneKey).(*time.Location)
	if !ok || loc == nil {
		return nil, false
	}
	return loc, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
