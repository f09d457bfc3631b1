package service

import "context"

// ResumenCache stores dashboard summaries. Implementations swallow their own
// failures: a broken cache must never fail a request.
type ResumenCache interface {
	// Key names the entry for base on store day dia under the current
	// generation. Callers take it before reading the data they summarise.
	Key(ctx context.Context, base, dia string) string
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, v interface{})
	// Invalidate retires every summary computed so far.
	Invalidate(ctx context.Context)
}
