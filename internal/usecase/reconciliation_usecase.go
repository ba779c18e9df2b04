package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
)

// DefaultReconciliationTTL bounds how long a record may be acted upon when the
// shopper abandons the flow.
const DefaultReconciliationTTL = 24 * time.Hour

// IReconciliationUseCase keeps the per-shopper checkout record that survives
// reloads and the round trip through the payment gateway.
//
// Confirm backs the confirmation view: it always re-fetches the order and never
// infers success from the stored marker.

type IReconciliationUseCase interface {
	Save(ctx context.Context, principal entities.Principal, rec entities.ReconciliationRecord) error
	Load(ctx context.Context, principal entities.Principal) (entities.ReconciliationRecord, bool, error)
	Clear(ctx context.Context, principal entities.Principal) error
	Confirm(ctx context.Context, principal entities.Principal) (entities.Confirmation, error)
	Finalize(ctx context.Context, principal entities.Principal, rec entities.ReconciliationRecord, order entities.Order) error
}

type ReconciliationUseCase struct {
	store   interfaces.IReconciliationStore
	backend interfaces.IOrderBackend
	cart    interfaces.ICartService
	events  eventEmitter
	ttl     time.Duration
	now     func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	store interfaces.IReconciliationStore,
	backend interfaces.IOrderBackend,
	cart interfaces.ICartService,
	publisher interfaces.IEventPublisher,
	ttl time.Duration,
) *ReconciliationUseCase {
	if ttl <= 0 {
		ttl = DefaultReconciliationTTL
	}
	return &ReconciliationUseCase{
		store:   store,
		backend: backend,
		cart:    cart,
		events:  eventEmitter{publisher: publisher},
		ttl:     ttl,
		now:     time.Now,
	}
}

func (u *ReconciliationUseCase) Save(ctx context.Context, principal entities.Principal, rec entities.ReconciliationRecord) error {
	subject, err := subjectOf(principal)
	if err != nil {
		return err
	}
	now := u.now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	// The lifetime is counted from creation; updates never extend it.
	if rec.ExpiresAt.IsZero() {
		rec.ExpiresAt = rec.CreatedAt.Add(u.ttl)
	}
	remaining := rec.ExpiresAt.Sub(now)
	if remaining <= 0 {
		log.Printf("[checkout][reconciliation] save skipped, record already expired subject=%s order_id=%s", subject, rec.OrderID)
		return u.store.Delete(ctx, subject)
	}
	if err := u.store.Save(ctx, subject, rec, remaining); err != nil {
		log.Printf("[checkout][reconciliation] save failed subject=%s order_id=%s err=%v", subject, rec.OrderID, err)
		return err
	}
	return nil
}

// Load returns the stored record. Expired records are deleted and reported as
// not found.
func (u *ReconciliationUseCase) Load(ctx context.Context, principal entities.Principal) (entities.ReconciliationRecord, bool, error) {
	subject, err := subjectOf(principal)
	if err != nil {
		return entities.ReconciliationRecord{}, false, err
	}
	rec, found, err := u.store.Load(ctx, subject)
	if err != nil {
		log.Printf("[checkout][reconciliation] load failed subject=%s err=%v", subject, err)
		return entities.ReconciliationRecord{}, false, err
	}
	if !found {
		return entities.ReconciliationRecord{}, false, nil
	}
	if rec.IsExpired(u.now()) {
		log.Printf("[checkout][reconciliation] record expired subject=%s order_id=%s expires_at=%s", subject, rec.OrderID, rec.ExpiresAt.Format(time.RFC3339))
		if err := u.store.Delete(ctx, subject); err != nil {
			log.Printf("[checkout][reconciliation] expired record delete failed subject=%s err=%v", subject, err)
		}
		return entities.ReconciliationRecord{}, false, nil
	}
	return rec, true, nil
}

func (u *ReconciliationUseCase) Clear(ctx context.Context, principal entities.Principal) error {
	subject, err := subjectOf(principal)
	if err != nil {
		return err
	}
	return u.store.Delete(ctx, subject)
}

func (u *ReconciliationUseCase) Confirm(ctx context.Context, principal entities.Principal) (entities.Confirmation, error) {
	rec, found, err := u.Load(ctx, principal)
	if err != nil {
		return entities.Confirmation{}, err
	}
	if !found {
		return entities.Confirmation{Status: entities.ConfirmationNone}, nil
	}
	if rec.OrderID == "" {
		// Buy-now draft that was never submitted.
		return entities.Confirmation{Status: entities.ConfirmationNone, Record: &rec}, nil
	}

	order, err := u.backend.GetOrder(ctx, principal, rec.OrderID)
	if err != nil {
		log.Printf("[checkout][reconciliation] confirm fetch failed order_id=%s err=%v", rec.OrderID, err)
		return entities.Confirmation{}, classifyBackendError(err)
	}

	confirmed := order.IsSettled()
	for _, p := range []*entities.PendingTransaction{rec.Pending, rec.PriorPending} {
		if p != nil {
			confirmed = confirmed || order.IsKindConfirmed(p.Kind)
		}
	}
	if confirmed {
		if err := u.Finalize(ctx, principal, rec, order); err != nil {
			log.Printf("[checkout][reconciliation] finalize failed order_id=%s err=%v", rec.OrderID, err)
		}
		return entities.Confirmation{Status: entities.ConfirmationConfirmed, Order: &order}, nil
	}

	status := entities.ConfirmationUnpaid
	if rec.HasPending() {
		status = entities.ConfirmationAwaiting
	}
	log.Printf("[checkout][reconciliation] confirm order_id=%s status=%s dp_status=%s settlement_status=%s", order.ID, status, order.DPStatus, order.SettlementStatus)
	return entities.Confirmation{Status: status, Order: &order, Record: &rec}, nil
}

// Finalize runs once the backend reflects a payment: the purchased cart lines
// are removed and the record is cleared. When the cart cannot be updated the
// record is kept so the next confirmation retries.
func (u *ReconciliationUseCase) Finalize(ctx context.Context, principal entities.Principal, rec entities.ReconciliationRecord, order entities.Order) error {
	productIDs := purchasedProductIDs(rec, order)
	if len(productIDs) > 0 && u.cart != nil {
		if err := u.cart.RemoveLines(ctx, principal, productIDs); err != nil {
			log.Printf("[checkout][reconciliation] cart cleanup failed order_id=%s err=%v", order.ID, err)
			return err
		}
		u.events.emit(ctx, entities.EventCartUpdated, order.ID, principal.Subject, entities.CartUpdatedPayload{
			OrderID:    order.ID,
			ProductIDs: productIDs,
		})
	}
	log.Printf("[checkout][reconciliation] finalized order_id=%s removed_lines=%d", order.ID, len(productIDs))
	return u.Clear(ctx, principal)
}

func purchasedProductIDs(rec entities.ReconciliationRecord, order entities.Order) []string {
	if rec.Draft != nil && rec.Draft.BuyNow {
		// Buy-now lines never went through the cart.
		return nil
	}
	if rec.Draft != nil && len(rec.Draft.Lines) > 0 {
		return rec.Draft.ProductIDs()
	}
	return entities.OrderDraft{Lines: order.Lines}.ProductIDs()
}

func subjectOf(principal entities.Principal) (string, error) {
	subject := strings.TrimSpace(principal.Subject)
	if subject == "" {
		return "", ErrInvalidPrincipal
	}
	return subject, nil
}
