package downstreams

import (
	"context"
	"net/http"
	"time"

	aurestlogging "github.com/StephanHCB/go-autumn-restclient/implementation/requestlogging"
	"github.com/go-chi/chi/v5/middleware"

	aurestbreaker "github.com/StephanHCB/go-autumn-restclient-circuitbreaker/implementation/breaker"
	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	auresthttpclient "github.com/StephanHCB/go-autumn-restclient/implementation/httpclient"
	"github.com/go-http-utils/headers"

	"github.com/FOLISOLOMON/invoice/internal/restapi/common"
)

func requestIDFromContext(ctx context.Context) string {
	if reqID, ok := ctx.Value(common.CtxKeyRequestID{}).(string); ok {
		return reqID
	}

	return "ffffffff"
}

// BearerTokenRequestManipulator authenticates outgoing calls with a static
// bearer token and forwards the request id of the triggering request.
func BearerTokenRequestManipulator(token string) aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		r.Header.Add(headers.Authorization, "Bearer "+token)
		r.Header.Add(middleware.RequestIDHeader, requestIDFromContext(ctx))
	}
}

func ClientWith(requestManipulator aurestclientapi.RequestManipulatorCallback, circuitBreakerName string) (aurestclientapi.Client, error) {
	httpClient, err := auresthttpclient.New(0, nil, requestManipulator)
	if err != nil {
		return nil, err
	}

	requestLoggingClient := aurestlogging.New(httpClient)

	circuitBreakerClient := aurestbreaker.New(requestLoggingClient,
		circuitBreakerName,
		10,
		2*time.Minute,
		30*time.Second,
		15*time.Second,
	)

	return circuitBreakerClient, nil
}
