package interaction

import (
	"html/template"
	"strings"

	"github.com/FOLISOLOMON/invoice/internal/config"
	"github.com/FOLISOLOMON/invoice/internal/entities"
	"github.com/FOLISOLOMON/invoice/internal/render"
)

var invoiceEmailTemplate = template.Must(template.New("invoiceEmail").Parse(`<html>
  <body>
    <p>Hello {{.ClientName}},</p>
    <p>Thank you for your order. Here are your invoice details:</p>
    <p><strong>Invoice Number:</strong> {{.InvoiceNumber}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <ul>
      {{- range .Items}}
      <li>{{.Description}} &ndash; Qty: {{.Quantity}} &ndash; {{printf "%.2f" .Price}}</li>
      {{- end}}
    </ul>
    <p><strong>Total:</strong> {{printf "%.2f" .Total}}</p>
    <p><a href="{{.PaymentURL}}" style="background-color: #28a745; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Pay Now</a></p>
    <p>Your invoice is attached to this email as a PDF.</p>
    <p>Best regards,<br>{{.BrandName}}<br><a href="mailto:{{.SupportEmail}}">{{.SupportEmail}}</a></p>
  </body>
</html>`))

type emailTemplateData struct {
	ClientName    string
	InvoiceNumber string
	Date          string
	Items         []entities.LineItem
	Total         float64
	PaymentURL    string
	BrandName     string
	SupportEmail  string
}

func invoiceEmailBody(data entities.InvoiceData, brand config.BrandConfig, paymentURL string) (string, error) {
	sb := &strings.Builder{}
	err := invoiceEmailTemplate.Execute(sb, emailTemplateData{
		ClientName:    data.ClientName,
		InvoiceNumber: data.InvoiceNumber,
		Date:          render.FormatDisplayDate(data.Date),
		Items:         data.Items,
		Total:         data.Total,
		PaymentURL:    paymentURL,
		BrandName:     brand.DisplayName,
		SupportEmail:  brand.SupportEmail,
	})
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}
