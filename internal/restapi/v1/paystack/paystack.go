package v1paystack

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/FOLISOLOMON/invoice/internal/config"
	"github.com/FOLISOLOMON/invoice/internal/entities"
	"github.com/FOLISOLOMON/invoice/internal/interaction"
	"github.com/FOLISOLOMON/invoice/internal/logging"
	"github.com/FOLISOLOMON/invoice/internal/repository/downstreams/paystack"
	"github.com/FOLISOLOMON/invoice/internal/restapi/common"
	"github.com/FOLISOLOMON/invoice/internal/restapi/media"
)

type paystackHandler struct {
	interactor         interaction.Interactor
	webhookSecret      string
	successRedirectURL string
	failureRedirectURL string
}

func Create(router chi.Router, i interaction.Interactor, conf *config.Application) {
	handler := paystackHandler{
		interactor:         i,
		webhookSecret:      conf.Paystack.SecretKey,
		successRedirectURL: conf.Service.SuccessRedirectURL,
		failureRedirectURL: conf.Service.FailureRedirectURL,
	}

	router.Post("/paystack/webhook", handler.handleWebhookPost)
	router.Get("/paystack/payment-status/{reference}", handler.handlePaymentStatusGet)
	router.Get("/paystack/payment-success", handler.handlePaymentSuccessGet)
}

// handleWebhookPost is not routed through the generic endpoint handler
// because the signature check needs the raw request body.
func (h *paystackHandler) handleWebhookPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.LoggerFromContext(ctx)

	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Error("Error when closing the request body. [error]: %v", err)
		}
	}()

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("failed to read webhook body. [error]: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid body"))
		return
	}

	signature := r.Header.Get(paystack.SignatureHeader)
	if !paystack.ValidWebhookSignature(rawBody, h.webhookSecret, signature) {
		logger.Warn("invalid webhook signature")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid signature"))
		return
	}

	var event interaction.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		logger.Warn("failed to parse webhook event. [error]: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid body"))
		return
	}

	if err := h.interactor.HandleWebhookEvent(ctx, event); err != nil {
		logger.Error("failed to handle webhook event. [error]: %v", err)
		common.SendInternalServerError(w, logger, "failed to process webhook")
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Webhook received"))
}

type paymentStatusDto struct {
	Status entities.PaymentStatus `json:"status"`
}

// handlePaymentStatusGet never errors for unknown references, those simply
// read as pending.
func (h *paystackHandler) handlePaymentStatusGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.LoggerFromContext(ctx)

	reference := chi.URLParam(r, "reference")
	status := h.interactor.PaymentStatus(ctx, reference)

	w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(http.StatusOK)
	common.EncodeToJSON(w, paymentStatusDto{Status: status}, logger)
}

// handlePaymentSuccessGet is the landing hook the gateway redirects the
// payer to after checkout. It re-verifies the transaction and forwards
// the payer to the configured landing page. A still pending payment is
// treated as not (yet) successful.
func (h *paystackHandler) handlePaymentSuccessGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.LoggerFromContext(ctx)

	reference := r.URL.Query().Get("reference")
	if reference == "" {
		common.SendBadRequestResponse(w, logger, "reference query parameter is required")
		return
	}

	status := h.interactor.VerifyPayment(ctx, reference)

	target := h.failureRedirectURL
	if status == entities.PaymentStatusSuccess {
		target = h.successRedirectURL
	}

	http.Redirect(w, r, target, http.StatusFound)
}
