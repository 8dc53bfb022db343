package paystack

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/FOLISOLOMON/invoice/internal/repository/downstreams"
)

type Impl struct {
	client     aurestclientapi.Client
	baseUrl    string
	limitMinor int64
}

var _ Paystack = (*Impl)(nil)

func New(baseUrl string, secretKey string, amountLimitMinor int64) (Paystack, error) {
	if baseUrl == "" {
		return nil, errors.New("paystack.base_url not configured. This service cannot function without the payment gateway")
	}
	if secretKey == "" {
		return nil, errors.New("paystack.secret_key not configured")
	}

	client, err := downstreams.ClientWith(
		downstreams.BearerTokenRequestManipulator(secretKey),
		"paystack-breaker",
	)
	if err != nil {
		return nil, err
	}

	return &Impl{
		client:     client,
		baseUrl:    baseUrl,
		limitMinor: amountLimitMinor,
	}, nil
}

// envelope is the common response wrapper of the gateway api.
type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type transactionDto struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
	Status           string `json:"status"`
	Amount           int64  `json:"amount"`
}

func (i *Impl) InitializeTransaction(ctx context.Context, request InitializeTransactionRequest) (InitializedTransaction, error) {
	// the gateway enforces its own transaction ceiling, so fail fast
	// before going on the wire
	if i.limitMinor > 0 && request.AmountMinor > i.limitMinor {
		return InitializedTransaction{}, &LimitExceededError{
			AmountMinor: request.AmountMinor,
			LimitMinor:  i.limitMinor,
		}
	}

	url := fmt.Sprintf("%s/transaction/initialize", i.baseUrl)
	bodyDto := envelope[transactionDto]{}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyDto,
	}

	err := i.client.Perform(ctx, http.MethodPost, url, request, &response)
	if err := gatewayErrByStatus("initialize", err, response.Status, bodyDto.Message); err != nil {
		return InitializedTransaction{}, err
	}

	return InitializedTransaction{
		AuthorizationURL: bodyDto.Data.AuthorizationURL,
		AccessCode:       bodyDto.Data.AccessCode,
		Reference:        bodyDto.Data.Reference,
	}, nil
}

func (i *Impl) VerifyTransaction(ctx context.Context, reference string) (VerifiedTransaction, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", i.baseUrl, reference)
	bodyDto := envelope[transactionDto]{}
	response := aurestclientapi.ParsedResponse{
		Body: &bodyDto,
	}

	err := i.client.Perform(ctx, http.MethodGet, url, nil, &response)
	if err := gatewayErrByStatus("verify", err, response.Status, bodyDto.Message); err != nil {
		return VerifiedTransaction{}, err
	}

	return VerifiedTransaction{
		Reference:   bodyDto.Data.Reference,
		Status:      bodyDto.Data.Status,
		AmountMinor: bodyDto.Data.Amount,
	}, nil
}

func gatewayErrByStatus(operation string, err error, status int, upstreamMessage string) error {
	if err != nil {
		return &GatewayError{Operation: operation, Message: err.Error()}
	}
	if status >= 300 {
		if upstreamMessage == "" {
			upstreamMessage = fmt.Sprintf("unexpected http status %d", status)
		}
		return &GatewayError{Operation: operation, Message: upstreamMessage}
	}
	return nil
}
