package common

import (
	"context"
	"net/http"

	"github.com/FOLISOLOMON/invoice/internal/apierrors"
	"github.com/FOLISOLOMON/invoice/internal/logging"
)

type RequestHandler[Req any] func(r *http.Request) (*Req, error)
type ResponseHandler[Res any] func(ctx context.Context, res *Res, w http.ResponseWriter) error
type Endpoint[Req, Res any] func(ctx context.Context, request *Req, logger logging.Logger) (*Res, error)

const unknownErrorMessage = "an unexpected error occurred"

func CreateHandler[Req, Res any](endpoint Endpoint[Req, Res],
	requestHandler RequestHandler[Req],
	responseHandler ResponseHandler[Res]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.LoggerFromContext(ctx)

		defer func() {
			err := r.Body.Close()
			if err != nil {
				logger.Error("Error when closing the request body. [error]: %v", err)
			}
		}()

		if requestHandler == nil {
			logger.Error("No request handler supplied")
			SendInternalServerError(w, logger, unknownErrorMessage)
			return
		}

		if responseHandler == nil {
			logger.Error("No response handler supplied")
			SendInternalServerError(w, logger, unknownErrorMessage)
			return
		}

		request, err := requestHandler(r)
		if err != nil {
			logger.Error("An error occurred while parsing the request. [error]: %v", err)
			SendBadRequestResponse(w, logger, "invalid request body")
			return
		}

		response, err := endpoint(ctx, request, logger)
		if err != nil {
			if status := apierrors.AsAPIStatus(err); status != nil {
				// internal detail goes to the log only, the message in
				// the status is what the caller may see
				if status.Status().Details != "" {
					logger.Error("An error occurred during the request. [error]: %s", status.Status().Details)
				} else {
					logger.Warn("Request was not successful. [error]: %s", status.Status().Message)
				}

				SendErrorResponse(w, status.Status().Code, status.Status().Message, logger)
				return
			}

			logger.Error("An error occurred during the request. [error]: %v", err)
			SendInternalServerError(w, logger, unknownErrorMessage)
			return
		}

		if err := responseHandler(ctx, response, w); err != nil {
			logger.Error("An error occurred during the handling of the response. [error]: %v", err)
			SendInternalServerError(w, logger, unknownErrorMessage)
			return
		}
	})
}
