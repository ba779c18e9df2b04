package usecase

import (
	"context"
	"errors"
	"testing"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"
	mock_interfaces "konveksi_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestGatewayCallbackUseCase_HandleNotification(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewGatewayCallbackUseCase(nil)
		if err := uc.HandleNotification(context.Background(), " "); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewGatewayCallbackUseCase(nil)
		if err := uc.HandleNotification(context.Background(), "1"); !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGatewayCallbackUseCase(gw)

		gw.EXPECT().LookupPayment(gomock.Any(), "991").Return("", entities.GatewayOutcome{}, errors.New("401"))

		if err := uc.HandleNotification(context.Background(), "991"); !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("delivers to the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGatewayCallbackUseCase(gw)

		outcome := entities.OutcomeSucceeded("991")
		gw.EXPECT().LookupPayment(gomock.Any(), "991").Return("tok-1", outcome, nil)
		gw.EXPECT().Deliver("tok-1", outcome).Return(nil)

		if err := uc.HandleNotification(context.Background(), "991"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("session no longer open is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGatewayCallbackUseCase(gw)

		gw.EXPECT().LookupPayment(gomock.Any(), "991").Return("tok-1", entities.OutcomeSucceeded("991"), nil)
		gw.EXPECT().Deliver("tok-1", gomock.Any()).Return(interfaces.ErrUnknownPaymentSession)

		if err := uc.HandleNotification(context.Background(), "991"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGatewayCallbackUseCase_RelayOutcome(t *testing.T) {
	t.Run("invalid outcome", func(t *testing.T) {
		uc := NewGatewayCallbackUseCase(nil)
		err := uc.RelayOutcome(context.Background(), "tok-1", entities.GatewayOutcome{Kind: "done"})
		if !errors.Is(err, ErrInvalidOutcome) {
			t.Fatalf("expected ErrInvalidOutcome, got %v", err)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		uc := NewGatewayCallbackUseCase(nil)
		err := uc.RelayOutcome(context.Background(), "", entities.OutcomeSucceeded("x"))
		if !errors.Is(err, ErrInvalidSessionToken) {
			t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
		}
	})

	t.Run("maps gateway errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGatewayCallbackUseCase(gw)

		gw.EXPECT().Deliver("tok-1", gomock.Any()).Return(interfaces.ErrUnknownPaymentSession)
		gw.EXPECT().Deliver("tok-2", gomock.Any()).Return(interfaces.ErrOutcomeAlreadyDelivered)

		if err := uc.RelayOutcome(context.Background(), "tok-1", entities.OutcomeDismissed("")); !errors.Is(err, ErrUnknownSession) {
			t.Fatalf("expected ErrUnknownSession, got %v", err)
		}
		if err := uc.RelayOutcome(context.Background(), "tok-2", entities.OutcomeDismissed("")); !errors.Is(err, ErrOutcomeDelivered) {
			t.Fatalf("expected ErrOutcomeDelivered, got %v", err)
		}
	})
}
