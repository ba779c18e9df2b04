package request

import (
	"strings"

	"konveksi_checkout/internal/domain/entities"
)

type StartPaymentRequest struct {
	Kind string `json:"kind" binding:"required"`
}

func (r StartPaymentRequest) ResolveKind() entities.PaymentKind {
	return entities.PaymentKind(strings.ToUpper(strings.TrimSpace(r.Kind)))
}
