package usecase

import (
	"context"
	"log"
	"strings"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID     = validationErrorf("invalid order_id")
	ErrInvalidPaymentKind = validationErrorf("invalid payment kind")
)

// IPaymentStateResolver decides which payment actions are legal for an order.
//
// Precedence, evaluated against the authoritative order only:
//  1. settled            => nothing payable ("already settled")
//  2. down payment paid  => REMAINDER only
//  3. otherwise          => DP or FULL
//
// ResolveFresh always fetches the order first; callers about to create a
// transaction must use it rather than a verdict computed at page load. When
// the backend does not echo the down-payment fraction, the one the shopper's
// draft was priced with is used. Without either, the DP amount is unknown.

type IPaymentStateResolver interface {
	Resolve(order entities.Order) entities.PaymentActions
	ResolveFresh(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, entities.PaymentActions, error)
}

type PaymentStateResolver struct {
	policy         *DownPaymentPolicy
	backend        interfaces.IOrderBackend
	reconciliation IReconciliationUseCase
}

var _ IPaymentStateResolver = (*PaymentStateResolver)(nil)

func NewPaymentStateResolver(policy *DownPaymentPolicy, backend interfaces.IOrderBackend, reconciliation IReconciliationUseCase) *PaymentStateResolver {
	return &PaymentStateResolver{policy: policy, backend: backend, reconciliation: reconciliation}
}

// Resolve is a pure function of the order's settlement flags and amounts.
func (r *PaymentStateResolver) Resolve(order entities.Order) entities.PaymentActions {
	out := entities.PaymentActions{OrderID: order.ID}

	if order.IsSettled() {
		out.Actions = []entities.PaymentAction{}
		out.Reason = entities.ReasonAlreadySettled
		return out
	}

	var calc AmountCalculator
	calcErr := ErrValidation
	if r.policy != nil {
		calc, calcErr = r.policy.CalculatorFor(order.DPFraction)
	}
	if calcErr != nil {
		log.Printf("[payment][resolver] no usable down payment fraction order_id=%s fraction=%s err=%v", order.ID, order.DPFraction.String(), calcErr)
	}

	if order.IsDownPaymentRecorded() {
		remainder := entities.PaymentAction{Kind: entities.PaymentKindRemainder, Enabled: true}
		if recorded, ok := order.RecordedDownPayment(); ok {
			if amount, err := calc.ComputeRemainder(order.Total, recorded); err == nil {
				remainder.Amount, remainder.AmountKnown = amount, true
			} else {
				log.Printf("[payment][resolver] remainder not computable order_id=%s total=%d recorded_dp=%d err=%v", order.ID, order.Total, recorded, err)
			}
		}
		out.Actions = []entities.PaymentAction{
			disabledAction(entities.PaymentKindDP, entities.ReasonDownPaymentRecorded),
			disabledAction(entities.PaymentKindFull, entities.ReasonDownPaymentRecorded),
			remainder,
		}
		return out
	}

	dp := entities.PaymentAction{Kind: entities.PaymentKindDP, Enabled: true}
	if calcErr == nil {
		if amount, err := calc.ComputeDP(order.Total); err == nil {
			dp.Amount, dp.AmountKnown = amount, true
		}
	}
	full := entities.PaymentAction{Kind: entities.PaymentKindFull, Enabled: true}
	if amount, err := calc.ComputeFull(order.Total); err == nil {
		full.Amount, full.AmountKnown = amount, true
	}
	out.Actions = []entities.PaymentAction{
		dp,
		full,
		disabledAction(entities.PaymentKindRemainder, entities.ReasonDownPaymentNotRecorded),
	}
	return out
}

func (r *PaymentStateResolver) ResolveFresh(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, entities.PaymentActions, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, entities.PaymentActions{}, ErrInvalidOrderID
	}
	order, err := r.backend.GetOrder(ctx, principal, orderID)
	if err != nil {
		log.Printf("[payment][resolver] fetch failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, entities.PaymentActions{}, classifyBackendError(err)
	}
	if order.ID == "" {
		order.ID = orderID
	}
	if order.DPFraction.IsZero() {
		r.applyDraftFraction(ctx, principal, &order)
	}
	actions := r.Resolve(order)
	log.Printf("[payment][resolver] resolved order_id=%s dp_status=%s settlement_status=%s enabled=%v", orderID, order.DPStatus, order.SettlementStatus, actions.EnabledKinds())
	return order, actions, nil
}

// applyDraftFraction fills the order's fraction from the shopper's stored
// draft of the same order.
func (r *PaymentStateResolver) applyDraftFraction(ctx context.Context, principal entities.Principal, order *entities.Order) {
	if r.reconciliation == nil {
		return
	}
	rec, found, err := r.reconciliation.Load(ctx, principal)
	if err != nil {
		log.Printf("[payment][resolver] record load failed order_id=%s err=%v", order.ID, err)
		return
	}
	if !found || rec.OrderID != order.ID || rec.Draft == nil || !rec.Draft.DPFraction.IsPositive() {
		return
	}
	order.DPFraction = rec.Draft.DPFraction
	if order.ProductLine == "" {
		order.ProductLine = rec.Draft.ProductLine
	}
	log.Printf("[payment][resolver] fraction taken from draft order_id=%s fraction=%s product_line=%s", order.ID, order.DPFraction.String(), order.ProductLine)
}

func disabledAction(kind entities.PaymentKind, reason string) entities.PaymentAction {
	return entities.PaymentAction{Kind: kind, Enabled: false, Reason: reason}
}
