package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored in ctx, or "-" when absent.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return id
	}
	return "-"
}

// Time starts a timer for op and returns a func that logs its duration and
// the error pointed to by errp, if any. Intended for use with defer:
//
//	defer obs.Time(ctx, "store.List")(&err)
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, op, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, op, dur.Milliseconds())
	}
}
