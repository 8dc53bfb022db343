package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/FOLISOLOMON/invoice/internal/entities"
)

// Error reports the first field that failed validation together with a
// message that is safe to show to the caller.
type Error struct {
	Field   string
	Message string
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	return e.Message
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateInvoiceRequest checks the shape of an inbound invoice request.
// It fails fast on the first violation rather than aggregating all errors,
// so the caller always receives a single actionable message.
func ValidateInvoiceRequest(req *entities.InvoiceRequest) error {
	if req == nil {
		return &Error{Field: "request", Message: "request body is required"}
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &Error{Field: "request", Message: "request failed validation"}
	}

	first := validationErrors[0]
	return &Error{
		Field:   fieldPath(first),
		Message: messageFor(first),
	}
}

func fieldPath(fe validator.FieldError) string {
	// Namespace looks like InvoiceRequest.InvoiceData.Items[0].Quantity,
	// strip the type prefix and lower the first rune of each segment to
	// match the json field names of the request.
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}

	segments := strings.Split(ns, ".")
	for i, s := range segments {
		if s == "" {
			continue
		}
		segments[i] = strings.ToLower(s[:1]) + s[1:]
	}

	return strings.Join(segments, ".")
}

func messageFor(fe validator.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on the '%s' rule", field, fe.Tag())
	}
}
