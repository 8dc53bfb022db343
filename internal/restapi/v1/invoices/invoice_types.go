package v1invoices

// SendInvoiceRequest contains all information that is sent by the client
// when calling the send-invoice endpoint.
type SendInvoiceRequest struct {
	ClientEmail string         `json:"clientEmail"`
	InvoiceData InvoiceDataDto `json:"invoiceData"`
	BrandKey    string         `json:"brandKey"`
}

type InvoiceDataDto struct {
	ClientName    string        `json:"clientName"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Date          string        `json:"date"`
	DueDate       string        `json:"dueDate"`
	Items         []LineItemDto `json:"items"`
	Total         float64       `json:"total"`
}

type LineItemDto struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Tax         float64 `json:"tax"`
}

type SendInvoiceResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
