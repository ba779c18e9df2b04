package interfaces

import (
	"context"
	"time"

	"konveksi_checkout/internal/domain/entities"
)

// IReconciliationStore persists one ReconciliationRecord per shopper.
//
// Implementations: DynamoDB (TTL attribute) and Redis (key expiry).
// Load returns found=false when nothing is stored.

type IReconciliationStore interface {
	Save(ctx context.Context, subject string, rec entities.ReconciliationRecord, ttl time.Duration) error
	Load(ctx context.Context, subject string) (rec entities.ReconciliationRecord, found bool, err error)
	Delete(ctx context.Context, subject string) error
}
