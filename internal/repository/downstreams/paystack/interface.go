package paystack

import (
	"context"
	"fmt"
)

// Paystack wraps the transaction endpoints of the payment gateway.
//
// Calls are guarded by a circuit breaker but never retried at this layer.
// Amounts are always given in the smallest currency unit.
type Paystack interface {
	InitializeTransaction(ctx context.Context, request InitializeTransactionRequest) (InitializedTransaction, error)
	VerifyTransaction(ctx context.Context, reference string) (VerifiedTransaction, error)
}

type InitializeTransactionRequest struct {
	Email       string `json:"email"`
	AmountMinor int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url"`
}

type InitializedTransaction struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

type VerifiedTransaction struct {
	Reference   string
	Status      string
	AmountMinor int64
}

// GatewayError wraps an upstream failure, carrying the upstream message
// for the logs. It must never be surfaced to the caller verbatim.
type GatewayError struct {
	Operation string
	Message   string
}

var _ error = (*GatewayError)(nil)

func (e *GatewayError) Error() string {
	return fmt.Sprintf("paystack %s failed: %s", e.Operation, e.Message)
}

// LimitExceededError is returned before any network call when the
// transaction amount exceeds the configured gateway bound.
type LimitExceededError struct {
	AmountMinor int64
	LimitMinor  int64
}

var _ error = (*LimitExceededError)(nil)

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("transaction amount %d exceeds the configured limit of %d minor units", e.AmountMinor, e.LimitMinor)
}
