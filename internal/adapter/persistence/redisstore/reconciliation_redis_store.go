package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// keyReconciliation: checkout:reconciliation:{subject} -> ReconciliationRecord JSON
const keyReconciliation = "checkout:reconciliation:%s"

// redisCmdable is the subset of *redis.Client used by the store.
type redisCmdable interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ReconciliationRedisStore keeps one checkout record per shopper as a JSON
// string whose key expires with the record.
type ReconciliationRedisStore struct {
	rdb redisCmdable
}

var _ interfaces.IReconciliationStore = (*ReconciliationRedisStore)(nil)

func NewReconciliationRedisStore(rdb *redis.Client) *ReconciliationRedisStore {
	return &ReconciliationRedisStore{rdb: rdb}
}

func (s *ReconciliationRedisStore) Save(ctx context.Context, subject string, rec entities.ReconciliationRecord, ttl time.Duration) error {
	if ttl <= 0 {
		return s.Delete(ctx, subject)
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, recordKey(subject), raw, ttl).Err()
}

func (s *ReconciliationRedisStore) Load(ctx context.Context, subject string) (entities.ReconciliationRecord, bool, error) {
	raw, err := s.rdb.Get(ctx, recordKey(subject)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.ReconciliationRecord{}, false, nil
	}
	if err != nil {
		return entities.ReconciliationRecord{}, false, err
	}
	var rec entities.ReconciliationRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return entities.ReconciliationRecord{}, false, fmt.Errorf("decode reconciliation record: %w", err)
	}
	return rec, true, nil
}

func (s *ReconciliationRedisStore) Delete(ctx context.Context, subject string) error {
	return s.rdb.Del(ctx, recordKey(subject)).Err()
}

func recordKey(subject string) string {
	return fmt.Sprintf(keyReconciliation, subject)
}
