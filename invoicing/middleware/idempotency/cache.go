package idempotency

import (
	"context"
	"time"

	"encore.dev/storage/cache"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

// EntryTTL is how long a completed response is replayed for the same key
const EntryTTL = 24 * time.Hour

var IdempotencyCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache holds one entry per (endpoint path, client key)
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(EntryTTL),
	},
)

// entryStore is the subset of the keyspace the middleware relies on
type entryStore interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

var entries entryStore = IdempotencyCache
