package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
	mock_interfaces "konveksi_checkout/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memStore struct {
	mu   sync.Mutex
	recs map[string]entities.ReconciliationRecord
}

func newMemStore() *memStore {
	return &memStore{recs: map[string]entities.ReconciliationRecord{}}
}

func (s *memStore) Save(_ context.Context, subject string, rec entities.ReconciliationRecord, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[subject] = rec
	return nil
}

func (s *memStore) Load(_ context.Context, subject string) (entities.ReconciliationRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[subject]
	return rec, ok, nil
}

func (s *memStore) Delete(_ context.Context, subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, subject)
	return nil
}

func (s *memStore) get(subject string) (entities.ReconciliationRecord, bool) {
	rec, ok, _ := s.Load(context.Background(), subject)
	return rec, ok
}

type coordinatorFixture struct {
	uc      *GatewayCoordinatorUseCase
	backend *mock_interfaces.MockIOrderBackend
	surface *mock_interfaces.MockIPaymentSurface
	cart    *mock_interfaces.MockICartService
	store   *memStore
}

func newCoordinatorFixture(t *testing.T, ctrl *gomock.Controller, opts CoordinatorOptions) *coordinatorFixture {
	t.Helper()
	backend := mock_interfaces.NewMockIOrderBackend(ctrl)
	surface := mock_interfaces.NewMockIPaymentSurface(ctrl)
	cart := mock_interfaces.NewMockICartService(ctrl)
	store := newMemStore()

	recon := NewReconciliationUseCase(store, backend, cart, nil, time.Hour)
	recon.now = func() time.Time { return fixedNow }
	resolver := NewPaymentStateResolver(mustPolicy(t, "0.5", nil), backend, recon)

	uc := NewGatewayCoordinatorUseCase(backend, surface, resolver, recon, nil, opts)
	uc.now = func() time.Time { return fixedNow }
	uc.sleep = func(context.Context, time.Duration) error { return nil }
	return &coordinatorFixture{uc: uc, backend: backend, surface: surface, cart: cart, store: store}
}

func outcomeChan(outcomes ...entities.GatewayOutcome) <-chan entities.GatewayOutcome {
	ch := make(chan entities.GatewayOutcome, len(outcomes))
	for _, o := range outcomes {
		ch <- o
	}
	close(ch)
	return ch
}

func (f *coordinatorFixture) inflight(orderID string) bool {
	f.uc.mu.Lock()
	defer f.uc.mu.Unlock()
	_, ok := f.uc.inflight[orderID]
	return ok
}

func dpPaidOrder(total, dpPaid int64) entities.Order {
	o := unpaidOrder(total)
	o.DPStatus = entities.SettlementPaid
	o.DPPaidAmount = dpPaid
	return o
}

func TestGatewayCoordinator_CreateTransaction(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		_, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKind("HALF"))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("full after down payment is rejected before the backend call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(dpPaidOrder(150000, 75000), nil)

		_, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindFull)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, entities.ReasonDownPaymentRecorded, conflict.Reason)
		assert.True(t, conflict.Actions.IsEnabled(entities.PaymentKindRemainder))
		assert.False(t, f.inflight("ord-1"))
	})

	t.Run("settled order rejects every kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		settled := unpaidOrder(150000)
		settled.SettlementStatus = entities.SettlementPaid
		f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(settled, nil).Times(len(entities.PaymentKinds))

		for _, k := range entities.PaymentKinds {
			_, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", k)
			var conflict *ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, entities.ReasonAlreadySettled, conflict.Reason)
		}
	})

	t.Run("backend conflict re-resolves the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		gomock.InOrder(
			f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(150000), nil),
			f.backend.EXPECT().CreateTransaction(gomock.Any(), testPrincipal, "ord-1", entities.PaymentKindDP).
				Return(entities.PaymentSession{}, &interfaces.BackendError{StatusCode: 409, Message: "dp already paid"}),
			f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(dpPaidOrder(150000, 75000), nil),
		)

		_, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindDP)
		assert.ErrorIs(t, err, ErrConflict)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, entities.ReasonDownPaymentRecorded, conflict.Reason)
		assert.Equal(t, []entities.PaymentKind{entities.PaymentKindRemainder}, conflict.Actions.EnabledKinds())
	})

	t.Run("backend quoting a different amount is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(150000), nil)
		f.backend.EXPECT().CreateTransaction(gomock.Any(), testPrincipal, "ord-1", entities.PaymentKindDP).
			Return(entities.PaymentSession{SessionToken: "tok-1", Amount: 70000}, nil)

		_, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindDP)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("empty session token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(150000), nil)
		f.backend.EXPECT().CreateTransaction(gomock.Any(), testPrincipal, "ord-1", entities.PaymentKindFull).Return(entities.PaymentSession{}, nil)

		_, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindFull)
		assert.ErrorIs(t, err, ErrNetwork)
	})

	t.Run("second attempt while one is in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(150000), nil)
		f.backend.EXPECT().CreateTransaction(gomock.Any(), testPrincipal, "ord-1", entities.PaymentKindDP).
			Return(entities.PaymentSession{SessionToken: "tok-1"}, nil)

		session, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindDP)
		require.NoError(t, err)
		assert.Equal(t, int64(75000), session.Amount)

		_, err = f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindFull)
		assert.ErrorIs(t, err, ErrPaymentInProgress)
	})
}

func TestGatewayCoordinator_OpenPaymentUI(t *testing.T) {
	session := entities.PaymentSession{OrderID: "ord-1", Kind: entities.PaymentKindDP, SessionToken: "tok-1", Amount: 75000}
	draft := &entities.OrderDraft{Lines: []entities.OrderLine{{ProductID: "p1", Quantity: 3, UnitPrice: 50000}}}

	t.Run("success confirmed by the backend clears cart and record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{ConfirmAttempts: 3})
		_ = f.store.Save(context.Background(), "shopper-1", entities.ReconciliationRecord{OrderID: "ord-1", Draft: draft, CreatedAt: fixedNow, ExpiresAt: fixedNow.Add(time.Hour)}, time.Hour)

		f.surface.EXPECT().Open(gomock.Any(), session).Return(outcomeChan(entities.OutcomeSucceeded("mp-1")), nil)
		gomock.InOrder(
			f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(150000), nil),
			f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(dpPaidOrder(150000, 75000), nil),
		)
		f.cart.EXPECT().RemoveLines(gomock.Any(), testPrincipal, []string{"p1"}).Return(nil)

		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, session)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentConfirmed, res.Status)
		assert.Equal(t, entities.AdviceNone, res.Advice)
		_, found := f.store.get("shopper-1")
		assert.False(t, found)
	})

	t.Run("success not yet reflected keeps the marker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{ConfirmAttempts: 2})

		f.surface.EXPECT().Open(gomock.Any(), session).Return(outcomeChan(entities.OutcomeSucceeded("mp-1")), nil)
		f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(150000), nil).Times(2)

		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, session)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentAwaitingConfirmation, res.Status)
		assert.Equal(t, entities.AdviceCheckStatus, res.Advice)

		rec, found := f.store.get("shopper-1")
		require.True(t, found)
		require.NotNil(t, rec.Pending)
		assert.Equal(t, entities.GatewayStatusSettled, rec.Pending.GatewayStatus)
		assert.Equal(t, "mp-1", rec.Pending.TransactionRef)
	})

	t.Run("pending keeps the marker and the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		f.surface.EXPECT().Open(gomock.Any(), session).Return(outcomeChan(entities.OutcomePendingManual("mp-2")), nil)

		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, session)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentAwaitingConfirmation, res.Status)
		rec, found := f.store.get("shopper-1")
		require.True(t, found)
		require.NotNil(t, rec.Pending)
		assert.Equal(t, entities.GatewayStatusPending, rec.Pending.GatewayStatus)
	})

	t.Run("error advises retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		f.surface.EXPECT().Open(gomock.Any(), session).Return(outcomeChan(entities.OutcomeFailed("card declined")), nil)

		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, session)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentFailed, res.Status)
		assert.Equal(t, entities.AdviceRetry, res.Advice)
		assert.Contains(t, res.Message, "card declined")
	})

	t.Run("closed clears the marker and is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		f.surface.EXPECT().Open(gomock.Any(), session).Return(outcomeChan(entities.OutcomeDismissed("closed by user")), nil)

		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, session)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentCancelled, res.Status)
		assert.Equal(t, entities.AdviceNone, res.Advice)
		rec, found := f.store.get("shopper-1")
		require.True(t, found)
		assert.Nil(t, rec.Pending)
	})

	t.Run("error after an earlier pending payment advises a status check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		second := entities.PaymentSession{OrderID: "ord-1", Kind: entities.PaymentKindDP, SessionToken: "tok-2", Amount: 75000}
		gomock.InOrder(
			f.surface.EXPECT().Open(gomock.Any(), session).Return(outcomeChan(entities.OutcomePendingManual("ref-1")), nil),
			f.surface.EXPECT().Open(gomock.Any(), second).Return(outcomeChan(entities.OutcomeFailed("declined")), nil),
		)

		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, session)
		require.NoError(t, err)
		assert.Equal(t, entities.AdviceCheckStatus, res.Advice)

		res, err = f.uc.OpenPaymentUI(context.Background(), testPrincipal, second)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentFailed, res.Status)
		assert.Equal(t, entities.AdviceCheckStatus, res.Advice)
		assert.Contains(t, res.Message, "declined")

		rec, found := f.store.get("shopper-1")
		require.True(t, found)
		require.NotNil(t, rec.Pending)
		assert.Equal(t, "ref-1", rec.Pending.TransactionRef)
		assert.Equal(t, "tok-1", rec.Pending.SessionToken)
		assert.Equal(t, entities.GatewayStatusPending, rec.Pending.GatewayStatus)
		assert.Nil(t, rec.PriorPending)
	})

	t.Run("closing a new session keeps an earlier pending payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		second := entities.PaymentSession{OrderID: "ord-1", Kind: entities.PaymentKindDP, SessionToken: "tok-2", Amount: 75000}
		gomock.InOrder(
			f.surface.EXPECT().Open(gomock.Any(), session).Return(outcomeChan(entities.OutcomePendingManual("ref-1")), nil),
			f.surface.EXPECT().Open(gomock.Any(), second).Return(outcomeChan(entities.OutcomeDismissed("closed by user")), nil),
		)

		_, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, session)
		require.NoError(t, err)
		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, second)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentCancelled, res.Status)
		assert.Equal(t, entities.AdviceCheckStatus, res.Advice)

		rec, _ := f.store.get("shopper-1")
		require.NotNil(t, rec.Pending)
		assert.Equal(t, "ref-1", rec.Pending.TransactionRef)
	})

	t.Run("timeout keeps the marker and advises a status check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{SessionTimeout: 20 * time.Millisecond})

		never := make(chan entities.GatewayOutcome)
		f.surface.EXPECT().Open(gomock.Any(), session).Return((<-chan entities.GatewayOutcome)(never), nil)

		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, session)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentAwaitingConfirmation, res.Status)
		assert.Equal(t, entities.AdviceCheckStatus, res.Advice)
		rec, found := f.store.get("shopper-1")
		require.True(t, found)
		assert.NotNil(t, rec.Pending)
	})

	t.Run("surface unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		f.surface.EXPECT().Open(gomock.Any(), session).Return(nil, interfaces.ErrPaymentSurfaceUnavailable)

		_, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, session)
		assert.True(t, errors.Is(err, ErrGatewayUnavailable))
		_, found := f.store.get("shopper-1")
		assert.False(t, found)
	})
}

func TestGatewayCoordinator_StartPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

	f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(150000), nil)
	f.backend.EXPECT().CreateTransaction(gomock.Any(), testPrincipal, "ord-1", entities.PaymentKindFull).
		Return(entities.PaymentSession{SessionToken: "tok-9", Amount: 150000}, nil)

	outcomes := make(chan entities.GatewayOutcome, 1)
	f.surface.EXPECT().Open(gomock.Any(), gomock.Any()).Return((<-chan entities.GatewayOutcome)(outcomes), nil)

	ctx, cancel := context.WithCancel(context.Background())
	session, err := f.uc.StartPayment(ctx, testPrincipal, "ord-1", entities.PaymentKindFull)
	require.NoError(t, err)
	assert.Equal(t, "tok-9", session.SessionToken)
	// The request ending must not abort the session.
	cancel()

	rec, found := f.store.get("shopper-1")
	require.True(t, found)
	require.NotNil(t, rec.Pending)
	assert.Equal(t, "tok-9", rec.Pending.SessionToken)
	assert.True(t, f.inflight("ord-1"))

	outcomes <- entities.OutcomeDismissed("closed by user")
	close(outcomes)

	assert.Eventually(t, func() bool { return !f.inflight("ord-1") }, time.Second, 5*time.Millisecond)
	rec, _ = f.store.get("shopper-1")
	assert.Nil(t, rec.Pending)
}

func TestGatewayCoordinator_Lifecycle(t *testing.T) {
	t.Run("down payment then remainder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{ConfirmAttempts: 1})

		gomock.InOrder(
			f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(200000), nil),
			f.backend.EXPECT().CreateTransaction(gomock.Any(), testPrincipal, "ord-1", entities.PaymentKindDP).
				Return(entities.PaymentSession{SessionToken: "tok-dp"}, nil),
			f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(dpPaidOrder(200000, 100000), nil),
			f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(dpPaidOrder(200000, 100000), nil),
			f.backend.EXPECT().CreateTransaction(gomock.Any(), testPrincipal, "ord-1", entities.PaymentKindRemainder).
				Return(entities.PaymentSession{SessionToken: "tok-rem", Amount: 100000}, nil),
		)
		f.surface.EXPECT().Open(gomock.Any(), gomock.Any()).Return(outcomeChan(entities.OutcomeSucceeded("mp-dp")), nil)

		dp, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindDP)
		require.NoError(t, err)
		assert.Equal(t, int64(100000), dp.Amount)

		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, dp)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentConfirmed, res.Status)
		assert.False(t, f.inflight("ord-1"))

		rem, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindRemainder)
		require.NoError(t, err)
		assert.Equal(t, int64(100000), rem.Amount)
		assert.Equal(t, "tok-rem", rem.SessionToken)
	})

	t.Run("closed session does not block a new attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		f.backend.EXPECT().GetOrder(gomock.Any(), testPrincipal, "ord-1").Return(unpaidOrder(150000), nil).Times(2)
		gomock.InOrder(
			f.backend.EXPECT().CreateTransaction(gomock.Any(), testPrincipal, "ord-1", entities.PaymentKindDP).
				Return(entities.PaymentSession{SessionToken: "tok-1"}, nil),
			f.backend.EXPECT().CreateTransaction(gomock.Any(), testPrincipal, "ord-1", entities.PaymentKindDP).
				Return(entities.PaymentSession{SessionToken: "tok-2"}, nil),
		)
		f.surface.EXPECT().Open(gomock.Any(), gomock.Any()).Return(outcomeChan(entities.OutcomeDismissed("closed by user")), nil)

		first, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindDP)
		require.NoError(t, err)
		res, err := f.uc.OpenPaymentUI(context.Background(), testPrincipal, first)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentCancelled, res.Status)

		next, err := f.uc.CreateTransaction(context.Background(), testPrincipal, "ord-1", entities.PaymentKindDP)
		require.NoError(t, err)
		assert.Equal(t, "tok-2", next.SessionToken)
		assert.Equal(t, int64(75000), next.Amount)
	})
}

func TestGatewayCoordinator_OrderLock(t *testing.T) {
	t.Run("stale release does not free a re-acquired order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{SessionTimeout: time.Minute})

		first, ok := f.uc.acquire("ord-1")
		require.True(t, ok)
		f.uc.bind("ord-1", first, "tok-old")

		later := fixedNow.Add(2 * time.Minute)
		f.uc.now = func() time.Time { return later }
		second, ok := f.uc.acquire("ord-1")
		require.True(t, ok)
		assert.NotEqual(t, first, second)

		f.uc.releaseSession("ord-1", "tok-old")
		f.uc.release("ord-1", first)
		assert.True(t, f.inflight("ord-1"))
		_, ok = f.uc.acquire("ord-1")
		assert.False(t, ok)

		f.uc.release("ord-1", second)
		assert.False(t, f.inflight("ord-1"))
	})

	t.Run("unbound lock is not freed by a session token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCoordinatorFixture(t, ctrl, CoordinatorOptions{})

		_, ok := f.uc.acquire("ord-1")
		require.True(t, ok)
		f.uc.releaseSession("ord-1", "")
		f.uc.releaseSession("ord-1", "tok-any")
		assert.True(t, f.inflight("ord-1"))
	})
}
