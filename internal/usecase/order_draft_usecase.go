package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
)

// DefaultMaxLineQuantity is the per-line quantity ceiling when none is configured.
const DefaultMaxLineQuantity = 10000

// IOrderDraftUseCase turns a cart selection or a single "buy now" line into an
// order-creation request and submits it to the backend.
//
//   - BuildFromCart / BuildBuyNow are pure and fail fast with ErrValidation.
//   - Submit is the only call that reaches the backend.

type IOrderDraftUseCase interface {
	BuildFromCart(lines []entities.CartLine, note string) (entities.OrderDraft, error)
	BuildBuyNow(line entities.CartLine, note string) (entities.OrderDraft, error)
	StashDraft(ctx context.Context, principal entities.Principal, draft entities.OrderDraft) error
	Submit(ctx context.Context, principal entities.Principal, draft entities.OrderDraft) (entities.OrderSubmission, error)
}

type OrderDraftUseCase struct {
	policy         *DownPaymentPolicy
	maxQuantity    int
	backend        interfaces.IOrderBackend
	reconciliation IReconciliationUseCase
	events         eventEmitter
}

var _ IOrderDraftUseCase = (*OrderDraftUseCase)(nil)

func NewOrderDraftUseCase(
	policy *DownPaymentPolicy,
	maxQuantity int,
	backend interfaces.IOrderBackend,
	reconciliation IReconciliationUseCase,
	publisher interfaces.IEventPublisher,
) *OrderDraftUseCase {
	if maxQuantity <= 0 {
		maxQuantity = DefaultMaxLineQuantity
	}
	return &OrderDraftUseCase{
		policy:         policy,
		maxQuantity:    maxQuantity,
		backend:        backend,
		reconciliation: reconciliation,
		events:         eventEmitter{publisher: publisher},
	}
}

func (u *OrderDraftUseCase) BuildFromCart(lines []entities.CartLine, note string) (entities.OrderDraft, error) {
	return u.build(lines, note, false)
}

func (u *OrderDraftUseCase) BuildBuyNow(line entities.CartLine, note string) (entities.OrderDraft, error) {
	return u.build([]entities.CartLine{line}, note, true)
}

func (u *OrderDraftUseCase) build(lines []entities.CartLine, note string, buyNow bool) (entities.OrderDraft, error) {
	if len(lines) == 0 {
		return entities.OrderDraft{}, validationErrorf("at least one line is required")
	}

	draft := entities.OrderDraft{
		Lines:  make([]entities.OrderLine, 0, len(lines)),
		Note:   strings.TrimSpace(note),
		BuyNow: buyNow,
	}
	for i, in := range lines {
		productID := strings.TrimSpace(in.ProductID)
		if productID == "" {
			return entities.OrderDraft{}, validationErrorf("line %d: product_id is required", i)
		}
		if in.Quantity < 1 {
			return entities.OrderDraft{}, validationErrorf("line %d: quantity must be at least 1 (got %d)", i, in.Quantity)
		}
		if in.Quantity > u.maxQuantity {
			return entities.OrderDraft{}, validationErrorf("line %d: quantity must not exceed %d (got %d)", i, u.maxQuantity, in.Quantity)
		}
		if in.UnitPrice < 0 {
			return entities.OrderDraft{}, validationErrorf("line %d: unit_price must not be negative", i)
		}

		line := normalizeProductLine(in.ProductLine)
		fraction := u.policy.FractionFor(line)
		if i == 0 {
			draft.ProductLine = line
			draft.DPFraction = fraction
		} else if !fraction.Equal(draft.DPFraction) {
			// One order is charged under exactly one down-payment fraction.
			return entities.OrderDraft{}, validationErrorf(
				"line %d: product line %q uses down payment %s but the order uses %s; order them separately",
				i, line, fraction.String(), draft.DPFraction.String())
		}

		ol := entities.OrderLine{
			ProductID:       productID,
			ProductLine:     line,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			SelectedOptions: in.SelectedOptions,
		}
		draft.Lines = append(draft.Lines, ol)
		draft.AdvisoryTotal += ol.Subtotal()
	}
	return draft, nil
}

// StashDraft stores a draft-only record, used for buy-now before the order
// exists.
func (u *OrderDraftUseCase) StashDraft(ctx context.Context, principal entities.Principal, draft entities.OrderDraft) error {
	if len(draft.Lines) == 0 {
		return validationErrorf("at least one line is required")
	}
	return u.reconciliation.Save(ctx, principal, entities.ReconciliationRecord{Draft: &draft})
}

func (u *OrderDraftUseCase) Submit(ctx context.Context, principal entities.Principal, draft entities.OrderDraft) (entities.OrderSubmission, error) {
	log.Printf("[checkout][draft] submit start subject=%s lines=%d advisory_total=%d product_line=%s dp_fraction=%s",
		principal.Subject, len(draft.Lines), draft.AdvisoryTotal, draft.ProductLine, draft.DPFraction.String())
	if len(draft.Lines) == 0 {
		return entities.OrderSubmission{}, validationErrorf("at least one line is required")
	}
	if err := validateFraction(draft.DPFraction); err != nil {
		return entities.OrderSubmission{}, err
	}
	if u.backend == nil {
		log.Printf("[checkout][draft] order backend not configured")
		return entities.OrderSubmission{}, errors.New("order backend not configured")
	}

	order, err := u.backend.CreateOrder(ctx, principal, draft)
	if err != nil {
		log.Printf("[checkout][draft] backend create failed subject=%s err=%v", principal.Subject, err)
		if isBackendConflict(err) {
			return entities.OrderSubmission{}, ErrConflict
		}
		return entities.OrderSubmission{}, classifyBackendError(err)
	}
	if !order.DPFraction.IsPositive() {
		order.DPFraction = draft.DPFraction
	}
	if order.ProductLine == "" {
		order.ProductLine = draft.ProductLine
	}

	sub := entities.OrderSubmission{Order: order}
	if order.Total != draft.AdvisoryTotal {
		sub.Discrepancy = &entities.TotalDiscrepancy{AdvisoryTotal: draft.AdvisoryTotal, BackendTotal: order.Total}
		log.Printf("[checkout][draft] total discrepancy order_id=%s advisory_total=%d backend_total=%d", order.ID, draft.AdvisoryTotal, order.Total)
	}

	if u.reconciliation != nil {
		rec := entities.ReconciliationRecord{OrderID: order.ID, Draft: &draft}
		if err := u.reconciliation.Save(ctx, principal, rec); err != nil {
			// The order exists on the backend; the record only speeds up the
			// confirmation view.
			log.Printf("[checkout][draft] reconciliation save failed order_id=%s err=%v", order.ID, err)
		}
	}

	u.events.emit(ctx, entities.EventOrderCreated, order.ID, principal.Subject, entities.OrderCreatedPayload{
		OrderID:     order.ID,
		Total:       order.Total,
		ProductLine: draft.ProductLine,
		BuyNow:      draft.BuyNow,
	})
	log.Printf("[checkout][draft] submit success order_id=%s total=%d", order.ID, order.Total)
	return sub, nil
}
