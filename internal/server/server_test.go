package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FOLISOLOMON/invoice/internal/config"
	"github.com/FOLISOLOMON/invoice/internal/entities"
	"github.com/FOLISOLOMON/invoice/internal/interaction"
	"github.com/FOLISOLOMON/invoice/internal/restapi/middleware"
)

type interactorMock struct {
	sendInvoiceCalls int
}

var _ interaction.Interactor = (*interactorMock)(nil)

func (m *interactorMock) SendInvoice(ctx context.Context, request *entities.InvoiceRequest) error {
	m.sendInvoiceCalls++
	return nil
}

func (m *interactorMock) HandleWebhookEvent(ctx context.Context, event interaction.WebhookEvent) error {
	return nil
}

func (m *interactorMock) PaymentStatus(ctx context.Context, reference string) entities.PaymentStatus {
	return entities.PaymentStatusPending
}

func (m *interactorMock) VerifyPayment(ctx context.Context, reference string) entities.PaymentStatus {
	return entities.PaymentStatusPending
}

func testConfig(apiToken string) *config.Application {
	return &config.Application{
		Security: config.SecurityConfig{
			Fixed: config.FixedTokenConfig{
				Api: apiToken,
			},
		},
	}
}

const sendInvoiceBody = `{
	"clientEmail": "client@example.com",
	"brandKey": "primegraphics",
	"invoiceData": {
		"clientName": "Acme Ltd",
		"invoiceNumber": "2024-001",
		"date": "2024-04-30",
		"dueDate": "2024-05-14",
		"items": [
			{"id": 1, "description": "Design work", "quantity": 1, "price": 100, "tax": 0}
		],
		"total": 100
	}
}`

func TestHealthEndpoints(t *testing.T) {
	router := CreateRouter(&interactorMock{}, testConfig(""))
	srv := httptest.NewServer(router)
	defer srv.Close()

	for _, path := range []string{"/", "/info/health"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		require.Equal(t, "ok", body.Status)
	}
}

func TestSendInvoiceRequiresTokenWhenConfigured(t *testing.T) {
	mock := &interactorMock{}
	router := CreateRouter(mock, testConfig("demo-secret-token"))
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/send-invoice", "application/json", strings.NewReader(sendInvoiceBody))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 0, mock.sendInvoiceCalls)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/send-invoice", strings.NewReader(sendInvoiceBody))
	require.NoError(t, err)
	req.Header.Set("X-API-TOKEN", "demo-secret-token")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, mock.sendInvoiceCalls)
}

func TestSendInvoiceOpenWithoutConfiguredToken(t *testing.T) {
	mock := &interactorMock{}
	router := CreateRouter(mock, testConfig(""))
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/send-invoice", "application/json", strings.NewReader(sendInvoiceBody))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, mock.sendInvoiceCalls)
}

func TestRequestIdHeaderIsEchoed(t *testing.T) {
	router := CreateRouter(&interactorMock{}, testConfig(""))
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	require.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}
