package entities

// InvoiceRequest is the inbound request to send an invoice to a client.
// Once it passed validation it is treated as immutable.
type InvoiceRequest struct {
	ClientEmail string      `json:"clientEmail" validate:"required,email"`
	InvoiceData InvoiceData `json:"invoiceData" validate:"required"`

	// BrandKey selects the visual/contact configuration applied to the
	// rendered document and the email. Empty means the configured default.
	BrandKey string `json:"brandKey"`
}

type InvoiceData struct {
	ClientName    string     `json:"clientName" validate:"required"`
	InvoiceNumber string     `json:"invoiceNumber" validate:"required"`
	Date          string     `json:"date" validate:"required"`
	DueDate       string     `json:"dueDate" validate:"required"`
	Items         []LineItem `json:"items" validate:"required,min=1,dive"`

	// Total is taken at face value and not reconciled against the line
	// items, see the item amounts for the derived values.
	Total float64 `json:"total" validate:"min=0"`
}

type LineItem struct {
	ID          int64   `json:"id"`
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"min=1"`
	Price       float64 `json:"price" validate:"min=0"`
	Tax         float64 `json:"tax" validate:"min=0"`
}

// Amount is the derived gross amount of a single line item.
func (l LineItem) Amount() float64 {
	return l.Quantity*l.Price + l.Tax
}
