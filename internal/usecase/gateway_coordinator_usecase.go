package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
)

const (
	DefaultPaymentSessionTimeout = 30 * time.Minute
	DefaultConfirmAttempts       = 3
	DefaultConfirmInterval       = 2 * time.Second
	defaultReconcileTimeout      = 30 * time.Second
)

// CoordinatorOptions tunes the gateway session lifecycle.
type CoordinatorOptions struct {
	// SessionTimeout bounds how long a gateway session is awaited, and how long
	// an order stays locked by an in-flight payment.
	SessionTimeout time.Duration
	// ConfirmAttempts and ConfirmInterval bound the re-fetch loop run after the
	// gateway reports success.
	ConfirmAttempts int
	ConfirmInterval time.Duration
}

func (o CoordinatorOptions) withDefaults() CoordinatorOptions {
	if o.SessionTimeout <= 0 {
		o.SessionTimeout = DefaultPaymentSessionTimeout
	}
	if o.ConfirmAttempts <= 0 {
		o.ConfirmAttempts = DefaultConfirmAttempts
	}
	if o.ConfirmInterval < 0 {
		o.ConfirmInterval = DefaultConfirmInterval
	}
	return o
}

// IGatewayCoordinatorUseCase drives one payment attempt end to end.
//
//   - CreateTransaction re-resolves the order, then asks the backend for a
//     session token. The backend remains the arbiter; a 409 yields a
//     *ConflictError built from a fresh resolver run.
//   - OpenPaymentUI opens the gateway surface and blocks until its single
//     outcome has been reconciled with the backend.
//   - StartPayment does both, waiting for the outcome in the background.

type IGatewayCoordinatorUseCase interface {
	CreateTransaction(ctx context.Context, principal entities.Principal, orderID string, kind entities.PaymentKind) (entities.PaymentSession, error)
	OpenPaymentUI(ctx context.Context, principal entities.Principal, session entities.PaymentSession) (entities.PaymentResult, error)
	StartPayment(ctx context.Context, principal entities.Principal, orderID string, kind entities.PaymentKind) (entities.PaymentSession, error)
}

// inflightPayment is the per-order lock. id identifies the acquisition so a
// stale session can never free a lock taken after it expired.
type inflightPayment struct {
	id           uint64
	sessionToken string
	acquiredAt   time.Time
}

type GatewayCoordinatorUseCase struct {
	backend        interfaces.IOrderBackend
	surface        interfaces.IPaymentSurface
	resolver       IPaymentStateResolver
	reconciliation IReconciliationUseCase
	events         eventEmitter
	opts           CoordinatorOptions

	mu              sync.Mutex
	inflight        map[string]inflightPayment
	lastAcquisition uint64

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

var _ IGatewayCoordinatorUseCase = (*GatewayCoordinatorUseCase)(nil)

func NewGatewayCoordinatorUseCase(
	backend interfaces.IOrderBackend,
	surface interfaces.IPaymentSurface,
	resolver IPaymentStateResolver,
	reconciliation IReconciliationUseCase,
	publisher interfaces.IEventPublisher,
	opts CoordinatorOptions,
) *GatewayCoordinatorUseCase {
	return &GatewayCoordinatorUseCase{
		backend:        backend,
		surface:        surface,
		resolver:       resolver,
		reconciliation: reconciliation,
		events:         eventEmitter{publisher: publisher},
		opts:           opts.withDefaults(),
		inflight:       make(map[string]inflightPayment),
		now:            time.Now,
		sleep:          sleepCtx,
	}
}

func (u *GatewayCoordinatorUseCase) CreateTransaction(ctx context.Context, principal entities.Principal, orderID string, kind entities.PaymentKind) (entities.PaymentSession, error) {
	session, _, err := u.createLocked(ctx, principal, orderID, kind)
	return session, err
}

// createLocked creates the transaction under the order lock and returns the
// acquisition holding it.
func (u *GatewayCoordinatorUseCase) createLocked(ctx context.Context, principal entities.Principal, orderID string, kind entities.PaymentKind) (entities.PaymentSession, uint64, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[payment][coordinator] create start order_id=%s kind=%s", orderID, kind)
	if orderID == "" {
		return entities.PaymentSession{}, 0, ErrInvalidOrderID
	}
	if !kind.Valid() {
		return entities.PaymentSession{}, 0, ErrInvalidPaymentKind
	}
	acquisition, ok := u.acquire(orderID)
	if !ok {
		log.Printf("[payment][coordinator] payment already in flight order_id=%s", orderID)
		return entities.PaymentSession{}, 0, ErrPaymentInProgress
	}

	session, err := u.createTransaction(ctx, principal, orderID, kind)
	if err != nil {
		u.release(orderID, acquisition)
		return entities.PaymentSession{}, 0, err
	}
	u.bind(orderID, acquisition, session.SessionToken)
	log.Printf("[payment][coordinator] create success order_id=%s kind=%s amount=%d", orderID, kind, session.Amount)
	return session, acquisition, nil
}

func (u *GatewayCoordinatorUseCase) createTransaction(ctx context.Context, principal entities.Principal, orderID string, kind entities.PaymentKind) (entities.PaymentSession, error) {
	_, actions, err := u.resolver.ResolveFresh(ctx, principal, orderID)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	action, _ := actions.Lookup(kind)
	if !action.Enabled {
		reason := actions.DisabledReason(kind)
		log.Printf("[payment][coordinator] pre-check rejected order_id=%s kind=%s reason=%q", orderID, kind, reason)
		return entities.PaymentSession{}, &ConflictError{OrderID: orderID, Kind: kind, Reason: reason, Actions: actions}
	}

	session, err := u.backend.CreateTransaction(ctx, principal, orderID, kind)
	if err != nil {
		log.Printf("[payment][coordinator] backend create-transaction failed order_id=%s kind=%s err=%v", orderID, kind, err)
		if isBackendConflict(err) {
			return entities.PaymentSession{}, u.conflictAfterRefresh(ctx, principal, orderID, kind, err)
		}
		return entities.PaymentSession{}, classifyBackendError(err)
	}
	if strings.TrimSpace(session.SessionToken) == "" {
		return entities.PaymentSession{}, fmt.Errorf("%w: backend returned an empty session token", ErrNetwork)
	}

	session.OrderID = orderID
	session.Kind = kind
	if session.CreatedAt.IsZero() {
		session.CreatedAt = u.now().UTC()
	}
	switch {
	case session.Amount == 0 && action.AmountKnown:
		session.Amount = action.Amount
	case session.Amount != 0 && action.AmountKnown && session.Amount != action.Amount:
		reason := fmt.Sprintf("amount mismatch: expected %d, backend quoted %d", action.Amount, session.Amount)
		log.Printf("[payment][coordinator] %s order_id=%s kind=%s", reason, orderID, kind)
		return entities.PaymentSession{}, &ConflictError{OrderID: orderID, Kind: kind, Reason: reason, Actions: actions}
	}
	return session, nil
}

// conflictAfterRefresh re-runs the resolver after the backend refused the
// transaction, so the caller sees the current reason rather than a stale one.
func (u *GatewayCoordinatorUseCase) conflictAfterRefresh(ctx context.Context, principal entities.Principal, orderID string, kind entities.PaymentKind, cause error) error {
	conflict := &ConflictError{OrderID: orderID, Kind: kind}
	var be *interfaces.BackendError
	if errors.As(cause, &be) {
		conflict.Reason = be.Message
	}

	_, refreshed, err := u.resolver.ResolveFresh(ctx, principal, orderID)
	if err != nil {
		log.Printf("[payment][coordinator] refresh after conflict failed order_id=%s err=%v", orderID, err)
		return conflict
	}
	conflict.Actions = refreshed
	if reason := refreshed.DisabledReason(kind); reason != "" {
		conflict.Reason = reason
	}
	return conflict
}

func (u *GatewayCoordinatorUseCase) OpenPaymentUI(ctx context.Context, principal entities.Principal, session entities.PaymentSession) (entities.PaymentResult, error) {
	defer u.releaseSession(session.OrderID, session.SessionToken)

	ctx, cancel := context.WithTimeout(ctx, u.opts.SessionTimeout)
	defer cancel()

	outcomes, err := u.open(ctx, principal, session)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	return u.await(ctx, principal, session, outcomes), nil
}

func (u *GatewayCoordinatorUseCase) StartPayment(ctx context.Context, principal entities.Principal, orderID string, kind entities.PaymentKind) (entities.PaymentSession, error) {
	session, acquisition, err := u.createLocked(ctx, principal, orderID, kind)
	if err != nil {
		return entities.PaymentSession{}, err
	}

	// The session outlives the request that started it.
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.opts.SessionTimeout)
	outcomes, err := u.open(bg, principal, session)
	if err != nil {
		cancel()
		u.release(session.OrderID, acquisition)
		return entities.PaymentSession{}, err
	}

	go func() {
		defer cancel()
		defer u.release(session.OrderID, acquisition)
		u.await(bg, principal, session, outcomes)
	}()
	return session, nil
}

// open opens the surface and marks the record so a reload during the gateway
// round trip re-checks the backend. A marker the gateway already answered for
// is kept aside rather than overwritten.
func (u *GatewayCoordinatorUseCase) open(ctx context.Context, principal entities.Principal, session entities.PaymentSession) (<-chan entities.GatewayOutcome, error) {
	if u.surface == nil {
		log.Printf("[payment][coordinator] payment surface not configured order_id=%s", session.OrderID)
		return nil, ErrGatewayUnavailable
	}
	outcomes, err := u.surface.Open(ctx, session)
	if err != nil {
		log.Printf("[payment][coordinator] surface open failed order_id=%s err=%v", session.OrderID, err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	rec := u.recordFor(ctx, principal, session.OrderID)
	if rec.Pending.ReachedGateway() {
		rec.PriorPending = rec.Pending
	}
	rec.Pending = &entities.PendingTransaction{
		Kind:          session.Kind,
		SessionToken:  session.SessionToken,
		Amount:        session.Amount,
		GatewayStatus: entities.GatewayStatusPending,
		MarkedAt:      u.now().UTC(),
	}
	u.saveRecord(ctx, principal, rec)
	log.Printf("[payment][coordinator] surface opened order_id=%s kind=%s", session.OrderID, session.Kind)
	return outcomes, nil
}

func (u *GatewayCoordinatorUseCase) await(ctx context.Context, principal entities.Principal, session entities.PaymentSession, outcomes <-chan entities.GatewayOutcome) entities.PaymentResult {
	var (
		outcome  entities.GatewayOutcome
		timedOut bool
	)
	select {
	case o, ok := <-outcomes:
		if ok {
			outcome = o
		} else {
			outcome = entities.OutcomeDismissed("payment surface closed without an outcome")
		}
	case <-ctx.Done():
		timedOut = true
	}

	// Reconciliation must still reach the backend after the session deadline.
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultReconcileTimeout)
	defer cancel()
	if timedOut {
		return u.reconcileTimeout(rctx, principal, session)
	}
	return u.reconcile(rctx, principal, session, outcome)
}

func (u *GatewayCoordinatorUseCase) reconcile(ctx context.Context, principal entities.Principal, session entities.PaymentSession, outcome entities.GatewayOutcome) entities.PaymentResult {
	log.Printf("[payment][coordinator] outcome order_id=%s kind=%s outcome=%s ref=%s reason=%q", session.OrderID, session.Kind, outcome.Kind, outcome.TransactionRef, outcome.Reason)
	result := entities.PaymentResult{OrderID: session.OrderID, Kind: session.Kind, Outcome: outcome}
	rec := u.recordFor(ctx, principal, session.OrderID)
	rec.LastOutcome = &outcome

	switch outcome.Kind {
	case entities.OutcomeSuccess:
		// Provisional until the backend reflects it.
		order, confirmed := u.awaitConfirmation(ctx, principal, session)
		if confirmed {
			if err := u.reconciliation.Finalize(ctx, principal, rec, order); err != nil {
				log.Printf("[payment][coordinator] finalize failed order_id=%s err=%v", session.OrderID, err)
			}
			result.Status = entities.PaymentConfirmed
			result.Advice = entities.AdviceNone
			result.Message = "payment confirmed"
			result.Order = &order
			break
		}
		rec.Pending = u.pendingMarker(session, outcome)
		u.saveRecord(ctx, principal, rec)
		result.Status = entities.PaymentAwaitingConfirmation
		result.Advice = entities.AdviceCheckStatus
		result.Message = "payment received by the gateway, waiting for confirmation"

	case entities.OutcomePending:
		rec.Pending = u.pendingMarker(session, outcome)
		u.saveRecord(ctx, principal, rec)
		result.Status = entities.PaymentAwaitingConfirmation
		result.Advice = entities.AdviceCheckStatus
		result.Message = "payment awaiting completion, follow the gateway instructions"

	case entities.OutcomeError:
		result.Status = entities.PaymentFailed
		result.Advice = entities.AdviceRetry
		next := "you can try again"
		if u.restorePrior(ctx, principal, &rec) {
			result.Advice = entities.AdviceCheckStatus
			next = "an earlier payment for this order may still complete, check the order status before paying again"
		}
		result.Message = "payment failed, " + next
		if outcome.Reason != "" {
			result.Message = fmt.Sprintf("payment failed (%s), %s", outcome.Reason, next)
		}

	default:
		// Closed by the shopper: nothing to retry automatically, and no marker
		// of this session may block the next attempt.
		prior := u.restorePrior(ctx, principal, &rec)
		result.Status = entities.PaymentCancelled
		result.Advice = entities.AdviceNone
		result.Message = ErrUserCancelled.Error()
		if prior {
			result.Advice = entities.AdviceCheckStatus
		}
	}

	u.events.emit(ctx, entities.EventPaymentOutcome, session.OrderID, principal.Subject, entities.PaymentOutcomePayload{
		OrderID: session.OrderID,
		Kind:    session.Kind,
		Outcome: outcome,
		Status:  result.Status,
	})
	return result
}

// reconcileTimeout handles a session that produced no outcome in time. The
// gateway may still have recorded something, so the marker is kept.
func (u *GatewayCoordinatorUseCase) reconcileTimeout(ctx context.Context, principal entities.Principal, session entities.PaymentSession) entities.PaymentResult {
	log.Printf("[payment][coordinator] session timed out order_id=%s kind=%s", session.OrderID, session.Kind)
	outcome := entities.OutcomeDismissed("payment session timed out")
	rec := u.recordFor(ctx, principal, session.OrderID)
	rec.LastOutcome = &outcome
	if rec.Pending == nil {
		rec.Pending = u.pendingMarker(session, entities.GatewayOutcome{Kind: entities.OutcomePending})
	}
	if rec.Pending.Outcome == "" {
		rec.Pending.Outcome = entities.OutcomePending
	}
	u.saveRecord(ctx, principal, rec)
	return entities.PaymentResult{
		OrderID: session.OrderID,
		Kind:    session.Kind,
		Status:  entities.PaymentAwaitingConfirmation,
		Outcome: outcome,
		Advice:  entities.AdviceCheckStatus,
		Message: "no answer from the payment gateway, check the order status before paying again",
	}
}

func (u *GatewayCoordinatorUseCase) awaitConfirmation(ctx context.Context, principal entities.Principal, session entities.PaymentSession) (entities.Order, bool) {
	var last entities.Order
	for attempt := 1; attempt <= u.opts.ConfirmAttempts; attempt++ {
		order, err := u.backend.GetOrder(ctx, principal, session.OrderID)
		if err != nil {
			log.Printf("[payment][coordinator] confirmation fetch failed order_id=%s attempt=%d err=%v", session.OrderID, attempt, err)
		} else {
			last = order
			if order.IsKindConfirmed(session.Kind) {
				log.Printf("[payment][coordinator] backend confirmed order_id=%s kind=%s attempt=%d", session.OrderID, session.Kind, attempt)
				return order, true
			}
		}
		if attempt < u.opts.ConfirmAttempts {
			if err := u.sleep(ctx, u.opts.ConfirmInterval); err != nil {
				break
			}
		}
	}
	return last, false
}

func (u *GatewayCoordinatorUseCase) pendingMarker(session entities.PaymentSession, outcome entities.GatewayOutcome) *entities.PendingTransaction {
	return &entities.PendingTransaction{
		Kind:           session.Kind,
		SessionToken:   session.SessionToken,
		TransactionRef: outcome.TransactionRef,
		Amount:         session.Amount,
		GatewayStatus:  outcome.GatewayStatus(),
		Outcome:        outcome.Kind,
		MarkedAt:       u.now().UTC(),
	}
}

// restorePrior drops the marker of a session that ended without reaching the
// gateway, putting back an earlier one that did. It reports whether such an
// earlier marker exists.
func (u *GatewayCoordinatorUseCase) restorePrior(ctx context.Context, principal entities.Principal, rec *entities.ReconciliationRecord) bool {
	rec.Pending, rec.PriorPending = rec.PriorPending, nil
	u.saveRecord(ctx, principal, *rec)
	if rec.Pending != nil {
		log.Printf("[payment][coordinator] earlier payment kept order_id=%s kind=%s ref=%s", rec.OrderID, rec.Pending.Kind, rec.Pending.TransactionRef)
		return true
	}
	return false
}

// recordFor returns the stored record for the order, or a fresh one when the
// stored record belongs to another order or is missing.
func (u *GatewayCoordinatorUseCase) recordFor(ctx context.Context, principal entities.Principal, orderID string) entities.ReconciliationRecord {
	if u.reconciliation == nil {
		return entities.ReconciliationRecord{OrderID: orderID}
	}
	rec, found, err := u.reconciliation.Load(ctx, principal)
	if err != nil {
		log.Printf("[payment][coordinator] record load failed order_id=%s err=%v", orderID, err)
	}
	if !found || rec.OrderID != orderID {
		return entities.ReconciliationRecord{OrderID: orderID}
	}
	return rec
}

func (u *GatewayCoordinatorUseCase) saveRecord(ctx context.Context, principal entities.Principal, rec entities.ReconciliationRecord) {
	if u.reconciliation == nil {
		return
	}
	if err := u.reconciliation.Save(ctx, principal, rec); err != nil {
		log.Printf("[payment][coordinator] record save failed order_id=%s err=%v", rec.OrderID, err)
	}
}

// acquire locks the order. An expired lock is taken over.
func (u *GatewayCoordinatorUseCase) acquire(orderID string) (uint64, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if cur, ok := u.inflight[orderID]; ok && u.now().Sub(cur.acquiredAt) < u.opts.SessionTimeout {
		return 0, false
	}
	u.lastAcquisition++
	u.inflight[orderID] = inflightPayment{id: u.lastAcquisition, acquiredAt: u.now()}
	return u.lastAcquisition, true
}

func (u *GatewayCoordinatorUseCase) bind(orderID string, acquisition uint64, sessionToken string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if cur, ok := u.inflight[orderID]; ok && cur.id == acquisition {
		cur.sessionToken = sessionToken
		u.inflight[orderID] = cur
	}
}

// release frees the order only while the lock is still the given acquisition.
func (u *GatewayCoordinatorUseCase) release(orderID string, acquisition uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if cur, ok := u.inflight[orderID]; ok && cur.id == acquisition {
		delete(u.inflight, orderID)
	}
}

// releaseSession frees the order only while the lock is bound to the session.
func (u *GatewayCoordinatorUseCase) releaseSession(orderID, sessionToken string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if cur, ok := u.inflight[orderID]; ok && sessionToken != "" && cur.sessionToken == sessionToken {
		delete(u.inflight, orderID)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
