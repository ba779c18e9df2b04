package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
	mock_interfaces "konveksi_checkout/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func unpaidOrder(total int64) entities.Order {
	return entities.Order{
		ID:               "ord-1",
		Total:            total,
		DPStatus:         entities.SettlementUnpaid,
		SettlementStatus: entities.SettlementUnpaid,
		DPFraction:       decimal.RequireFromString("0.5"),
	}
}

func TestPaymentStateResolver_Resolve(t *testing.T) {
	r := NewPaymentStateResolver(mustPolicy(t, "0.5", nil), nil, nil)

	t.Run("unpaid order offers down payment or full", func(t *testing.T) {
		got := r.Resolve(unpaidOrder(150000))

		assert.ElementsMatch(t, []entities.PaymentKind{entities.PaymentKindDP, entities.PaymentKindFull}, got.EnabledKinds())
		dp, _ := got.Lookup(entities.PaymentKindDP)
		assert.True(t, dp.AmountKnown)
		assert.Equal(t, int64(75000), dp.Amount)
		full, _ := got.Lookup(entities.PaymentKindFull)
		assert.Equal(t, int64(150000), full.Amount)
		assert.Equal(t, entities.ReasonDownPaymentNotRecorded, got.DisabledReason(entities.PaymentKindRemainder))
	})

	t.Run("recorded down payment offers remainder only", func(t *testing.T) {
		order := unpaidOrder(150000)
		order.DPStatus = entities.SettlementPaid
		order.DPPaidAmount = 75000

		got := r.Resolve(order)

		assert.Equal(t, []entities.PaymentKind{entities.PaymentKindRemainder}, got.EnabledKinds())
		rem, _ := got.Lookup(entities.PaymentKindRemainder)
		assert.True(t, rem.AmountKnown)
		assert.Equal(t, int64(75000), rem.Amount)
		assert.Equal(t, entities.ReasonDownPaymentRecorded, got.DisabledReason(entities.PaymentKindDP))
		assert.Equal(t, entities.ReasonDownPaymentRecorded, got.DisabledReason(entities.PaymentKindFull))
	})

	t.Run("remainder uses settled transactions when no paid amount is reported", func(t *testing.T) {
		order := unpaidOrder(100001)
		order.DPStatus = entities.SettlementPaid
		order.Transactions = []entities.PaymentTransaction{
			{Kind: entities.PaymentKindDP, Amount: 50001, GatewayStatus: entities.GatewayStatusSettled},
			{Kind: entities.PaymentKindDP, Amount: 50001, GatewayStatus: entities.GatewayStatusFailed},
		}

		rem, _ := r.Resolve(order).Lookup(entities.PaymentKindRemainder)
		assert.True(t, rem.AmountKnown)
		assert.Equal(t, int64(50000), rem.Amount)
	})

	t.Run("remainder amount unknown without a recorded figure", func(t *testing.T) {
		order := unpaidOrder(150000)
		order.DPStatus = entities.SettlementPaid

		rem, _ := r.Resolve(order).Lookup(entities.PaymentKindRemainder)
		assert.True(t, rem.Enabled)
		assert.False(t, rem.AmountKnown)
	})

	t.Run("settled order offers nothing", func(t *testing.T) {
		for _, dp := range []entities.SettlementFlag{entities.SettlementUnpaid, entities.SettlementPaid} {
			order := unpaidOrder(150000)
			order.DPStatus = dp
			order.SettlementStatus = entities.SettlementPaid

			got := r.Resolve(order)
			assert.Empty(t, got.Actions)
			assert.Equal(t, entities.ReasonAlreadySettled, got.Reason)
			for _, k := range entities.PaymentKinds {
				assert.Equal(t, entities.ReasonAlreadySettled, got.DisabledReason(k))
			}
		}
	})

	t.Run("dp and remainder are never enabled together", func(t *testing.T) {
		for _, dp := range []entities.SettlementFlag{entities.SettlementUnpaid, entities.SettlementPaid} {
			for _, st := range []entities.SettlementFlag{entities.SettlementUnpaid, entities.SettlementPaid} {
				order := unpaidOrder(1000)
				order.DPStatus, order.SettlementStatus = dp, st
				got := r.Resolve(order)
				assert.False(t, got.IsEnabled(entities.PaymentKindDP) && got.IsEnabled(entities.PaymentKindRemainder))
			}
		}
	})

	t.Run("order without fraction leaves the down payment unpriced", func(t *testing.T) {
		order := unpaidOrder(1001)
		order.DPFraction = decimal.Zero

		got := r.Resolve(order)
		dp, _ := got.Lookup(entities.PaymentKindDP)
		assert.True(t, dp.Enabled)
		assert.False(t, dp.AmountKnown)
		full, _ := got.Lookup(entities.PaymentKindFull)
		assert.True(t, full.AmountKnown)
		assert.Equal(t, int64(1001), full.Amount)
	})

	t.Run("rounds half up on the recorded fraction", func(t *testing.T) {
		order := unpaidOrder(1001)

		dp, _ := r.Resolve(order).Lookup(entities.PaymentKindDP)
		assert.True(t, dp.AmountKnown)
		assert.Equal(t, int64(501), dp.Amount)
	})
}

func TestPaymentStateResolver_ResolveFresh(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		r := NewPaymentStateResolver(mustPolicy(t, "0.5", nil), nil, nil)
		_, _, err := r.ResolveFresh(context.Background(), testPrincipal, " ")
		assert.ErrorIs(t, err, ErrInvalidOrderID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrderBackend(ctrl)
		r := NewPaymentStateResolver(mustPolicy(t, "0.5", nil), backend, nil)

		backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-x").Return(entities.Order{}, &interfaces.BackendError{StatusCode: 404})

		_, _, err := r.ResolveFresh(context.Background(), testPrincipal, "ord-x")
		assert.True(t, errors.Is(err, ErrOrderNotFound))
	})

	t.Run("resolves the fetched order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrderBackend(ctrl)
		r := NewPaymentStateResolver(mustPolicy(t, "0.5", nil), backend, nil)

		backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(150000), nil)

		order, actions, err := r.ResolveFresh(context.Background(), testPrincipal, "ord-1")
		require.NoError(t, err)
		assert.Equal(t, "ord-1", order.ID)
		assert.True(t, actions.IsEnabled(entities.PaymentKindDP))
	})

	draftRecord := func(orderID string) entities.ReconciliationRecord {
		return entities.ReconciliationRecord{
			OrderID: orderID,
			Draft: &entities.OrderDraft{
				Lines:       []entities.OrderLine{{ProductID: "p1", ProductLine: "seragam", Quantity: 4, UnitPrice: 50000}},
				ProductLine: "seragam",
				DPFraction:  decimal.RequireFromString("0.3"),
			},
			CreatedAt: fixedNow,
			ExpiresAt: fixedNow.Add(time.Hour),
		}
	}

	t.Run("order without fraction is priced with the drafted fraction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrderBackend(ctrl)
		store := newMemStore()
		recon := NewReconciliationUseCase(store, backend, nil, nil, time.Hour)
		recon.now = func() time.Time { return fixedNow }
		r := NewPaymentStateResolver(mustPolicy(t, "0.5", map[string]string{"seragam": "0.3"}), backend, recon)
		_ = store.Save(context.Background(), "shopper-1", draftRecord("ord-1"), time.Hour)

		fetched := unpaidOrder(200000)
		fetched.DPFraction = decimal.Zero
		backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(fetched, nil)

		order, actions, err := r.ResolveFresh(context.Background(), testPrincipal, "ord-1")
		require.NoError(t, err)
		assert.Equal(t, "0.3", order.DPFraction.String())
		assert.Equal(t, "seragam", order.ProductLine)
		dp, _ := actions.Lookup(entities.PaymentKindDP)
		assert.True(t, dp.AmountKnown)
		assert.Equal(t, int64(60000), dp.Amount)
	})

	t.Run("draft of another order is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrderBackend(ctrl)
		store := newMemStore()
		recon := NewReconciliationUseCase(store, backend, nil, nil, time.Hour)
		recon.now = func() time.Time { return fixedNow }
		r := NewPaymentStateResolver(mustPolicy(t, "0.5", map[string]string{"seragam": "0.3"}), backend, recon)
		_ = store.Save(context.Background(), "shopper-1", draftRecord("ord-other"), time.Hour)

		fetched := unpaidOrder(200000)
		fetched.DPFraction = decimal.Zero
		backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(fetched, nil)

		_, actions, err := r.ResolveFresh(context.Background(), testPrincipal, "ord-1")
		require.NoError(t, err)
		dp, _ := actions.Lookup(entities.PaymentKindDP)
		assert.True(t, dp.Enabled)
		assert.False(t, dp.AmountKnown)
	})
}
