package history

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// backoff is the wait schedule for reconnecting to the history database.
type backoff struct {
	attempts int           // total tries, first one included
	first    time.Duration // wait after the first failure
	ceiling  time.Duration // upper bound for any single wait
}

// connectBackoff covers a database that is still starting next to the server.
var connectBackoff = backoff{attempts: 4, first: 500 * time.Millisecond, ceiling: 5 * time.Second}

// retryConnect calls connect until it succeeds, fails with a non-transient
// error, runs out of attempts, or ctx ends. Waits double after each failure.
func retryConnect[T any](ctx context.Context, b backoff, connect func() (T, error)) (T, error) {
	var zero T
	wait := b.first
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		v, err := connect()
		if err == nil {
			return v, nil
		}
		if attempt >= b.attempts || !isTransient(err) {
			return zero, err
		}

		slog.Warn("history: database not reachable, retrying",
			slog.Int("attempt", attempt), slog.Duration("wait", wait), slog.Any("error", err))
		t := time.NewTimer(wait)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return zero, ctx.Err()
		}
		wait = min(wait*2, b.ceiling)
	}
}

// isTransient reports whether err is a connection failure worth another try.
// pgx marks errors raised before anything reached the server as safe to retry.
func isTransient(err error) bool {
	if pgconn.SafeToRetry(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return dnsErr.IsTimeout || dnsErr.IsTemporary
		}
		return true
	}
	return false
}
