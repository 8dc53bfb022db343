package common

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/FOLISOLOMON/invoice/internal/logging"
	"github.com/FOLISOLOMON/invoice/internal/restapi/media"
)

type CtxKeyRequestID struct{}

func EncodeToJSON(w http.ResponseWriter, obj interface{}, logger logging.Logger) {
	enc := json.NewEncoder(w)

	if obj != nil {
		err := enc.Encode(obj)

		if err != nil {
			logger.Error("Could not encode response. [error]: %v", err)
		}
	}
}

func SendErrorResponse(w http.ResponseWriter, status int, message string, logger logging.Logger) {
	w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(status)
	EncodeToJSON(w, NewAPIError(message), logger)
}

func SendBadRequestResponse(w http.ResponseWriter, logger logging.Logger, message string) {
	SendErrorResponse(w, http.StatusBadRequest, message, logger)
}

func SendInternalServerError(w http.ResponseWriter, logger logging.Logger, message string) {
	SendErrorResponse(w, http.StatusInternalServerError, message, logger)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "00000000"
	}
	if reqID, ok := ctx.Value(CtxKeyRequestID{}).(string); ok {
		return reqID
	}
	return "ffffffff"
}
