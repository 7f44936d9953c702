package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const totalsCacheKeyPrefix = "quote_totals:"

// setIfNewer stores ARGV[1] unless the cached document already carries a version >= ARGV[2].
// ARGV[3] is the TTL in milliseconds; 0 keeps the key without expiry.
var setIfNewer = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
  local ok, doc = pcall(cjson.decode, cur)
  if ok and type(doc) == 'table' then
    local v = tonumber(doc['version'])
    if v and v >= tonumber(ARGV[2]) then
      return 0
    end
  end
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
  redis.call('SET', KEYS[1], ARGV[1], 'PX', ttl)
else
  redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// TotalsRedisCache keeps the latest QuoteTotals of a quote as JSON in Redis.
// A nil client turns every call into a miss/no-op.
type TotalsRedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.ITotalsCache = (*TotalsRedisCache)(nil)

func NewTotalsRedisCache(rdb *redis.Client, ttl time.Duration) *TotalsRedisCache {
	return &TotalsRedisCache{rdb: rdb, ttl: ttl}
}

func (c *TotalsRedisCache) Get(ctx context.Context, quoteID string) (entities.QuoteTotals, bool, error) {
	if c.rdb == nil {
		return entities.QuoteTotals{}, false, nil
	}
	raw, err := c.rdb.Get(ctx, totalsCacheKeyPrefix+quoteID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.QuoteTotals{}, false, nil
		}
		return entities.QuoteTotals{}, false, err
	}
	var t entities.QuoteTotals
	if err := json.Unmarshal(raw, &t); err != nil {
		return entities.QuoteTotals{}, false, err
	}
	return t, true, nil
}

// Set stores t unless the cache already holds the same or a newer version of the quote's totals.
func (c *TotalsRedisCache) Set(ctx context.Context, t entities.QuoteTotals) error {
	if c.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	keys := []string{totalsCacheKeyPrefix + t.QuoteID}
	ttl := strconv.FormatInt(c.ttl.Milliseconds(), 10)
	return setIfNewer.Run(ctx, c.rdb, keys, string(raw), strconv.FormatInt(t.Version, 10), ttl).Err()
}

func (c *TotalsRedisCache) Invalidate(ctx context.Context, quoteID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, totalsCacheKeyPrefix+quoteID).Err()
}
