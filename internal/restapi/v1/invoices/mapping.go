package v1invoices

import (
	"github.com/FOLISOLOMON/invoice/internal/entities"
)

func invoiceRequestFrom(dto *SendInvoiceRequest) *entities.InvoiceRequest {
	items := make([]entities.LineItem, 0, len(dto.InvoiceData.Items))
	for _, item := range dto.InvoiceData.Items {
		items = append(items, entities.LineItem{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Tax:         item.Tax,
		})
	}

	return &entities.InvoiceRequest{
		ClientEmail: dto.ClientEmail,
		BrandKey:    dto.BrandKey,
		InvoiceData: entities.InvoiceData{
			ClientName:    dto.InvoiceData.ClientName,
			InvoiceNumber: dto.InvoiceData.InvoiceNumber,
			Date:          dto.InvoiceData.Date,
			DueDate:       dto.InvoiceData.DueDate,
			Items:         items,
			Total:         dto.InvoiceData.Total,
		},
	}
}
