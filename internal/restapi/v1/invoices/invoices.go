package v1invoices

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/FOLISOLOMON/invoice/internal/interaction"
	"github.com/FOLISOLOMON/invoice/internal/logging"
	"github.com/FOLISOLOMON/invoice/internal/restapi/common"
	"github.com/FOLISOLOMON/invoice/internal/restapi/media"
)

type invoiceHandler struct {
	interactor interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	handler := invoiceHandler{
		interactor: i,
	}

	router.Post("/send-invoice", common.CreateHandler(
		handler.sendInvoiceEndpoint,
		sendInvoiceRequestHandler,
		sendInvoiceResponseHandler,
	))
}

func (h *invoiceHandler) sendInvoiceEndpoint(ctx context.Context, request *SendInvoiceRequest, logger logging.Logger) (*SendInvoiceResponse, error) {
	if err := h.interactor.SendInvoice(ctx, invoiceRequestFrom(request)); err != nil {
		return nil, err
	}

	return &SendInvoiceResponse{
		Status:  "success",
		Message: "Invoice email sent successfully",
	}, nil
}

func sendInvoiceRequestHandler(r *http.Request) (*SendInvoiceRequest, error) {
	var request SendInvoiceRequest

	// unknown extra fields are tolerated for forward compatibility
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}

	return &request, nil
}

func sendInvoiceResponseHandler(ctx context.Context, res *SendInvoiceResponse, w http.ResponseWriter) error {
	w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(res)
}
