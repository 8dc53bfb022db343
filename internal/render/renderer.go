package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/FOLISOLOMON/invoice/internal/config"
	"github.com/FOLISOLOMON/invoice/internal/entities"
)

// UnknownBrandError is returned when the requested brand key is not
// configured. It is safe to surface to the caller.
type UnknownBrandError struct {
	Key string
}

var _ error = (*UnknownBrandError)(nil)

func (e *UnknownBrandError) Error() string {
	return fmt.Sprintf("unknown brand key %q", e.Key)
}

// RenderError wraps an engine or asset failure during rendering.
type RenderError struct {
	Err error
}

var _ error = (*RenderError)(nil)

func (e *RenderError) Error() string {
	return fmt.Sprintf("document rendering failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer produces invoice PDF documents. It is stateless across calls,
// every render acquires its own engine instance which is released again
// before the call returns, whether rendering succeeded or not. Instances
// are never shared between concurrent requests.
type Renderer interface {
	Render(data entities.InvoiceData, brandKey string) (*entities.RenderedDocument, error)
}

var _ Renderer = (*pdfRenderer)(nil)

type pdfRenderer struct {
	brands   map[string]config.BrandConfig
	assetDir string
}

func NewPDFRenderer(brands map[string]config.BrandConfig, assetDir string) Renderer {
	return &pdfRenderer{
		brands:   brands,
		assetDir: assetDir,
	}
}

func (r *pdfRenderer) Render(data entities.InvoiceData, brandKey string) (*entities.RenderedDocument, error) {
	brand, ok := r.brands[brandKey]
	if !ok {
		return nil, &UnknownBrandError{Key: brandKey}
	}

	logo, err := r.loadAsset(brand.LogoFile)
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	watermark, err := r.loadAsset(brand.WatermarkFile)
	if err != nil {
		return nil, &RenderError{Err: err}
	}

	buf := &bytes.Buffer{}
	if err := renderDocument(buf, data, brand, logo, watermark); err != nil {
		return nil, &RenderError{Err: err}
	}

	return &entities.RenderedDocument{
		Bytes:    buf.Bytes(),
		Filename: fmt.Sprintf("invoice_%s.pdf", data.InvoiceNumber),
		MIMEType: "application/pdf",
	}, nil
}

type asset struct {
	bytes     []byte
	imageType string
}

func (r *pdfRenderer) loadAsset(filename string) (asset, error) {
	b, err := os.ReadFile(filepath.Join(r.assetDir, filename))
	if err != nil {
		return asset{}, err
	}

	imageType := strings.ToUpper(strings.TrimPrefix(filepath.Ext(filename), "."))
	if imageType == "JPEG" {
		imageType = "JPG"
	}

	return asset{bytes: b, imageType: imageType}, nil
}

// renderDocument holds the whole lifetime of one pdf engine instance.
// The deferred Close makes sure the engine is torn down even when the
// layout code errors half way through.
func renderDocument(buf *bytes.Buffer, data entities.InvoiceData, brand config.BrandConfig, logo asset, watermark asset) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	defer pdf.Close()

	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()

	// faint full page watermark behind the content
	pdf.RegisterImageOptionsReader("watermark", gofpdf.ImageOptions{ImageType: watermark.imageType}, bytes.NewReader(watermark.bytes))
	pdf.SetAlpha(0.08, "Normal")
	pdf.ImageOptions("watermark", (pageWidth-120)/2, (pageHeight-120)/2, 120, 0, false, gofpdf.ImageOptions{ImageType: watermark.imageType}, 0, "")
	pdf.SetAlpha(1.0, "Normal")

	pdf.RegisterImageOptionsReader("logo", gofpdf.ImageOptions{ImageType: logo.imageType}, bytes.NewReader(logo.bytes))
	pdf.ImageOptions("logo", 15, 12, 35, 0, false, gofpdf.ImageOptions{ImageType: logo.imageType}, 0, "")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, brand.DisplayName, "", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 6, "Billed to:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, data.ClientName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 6, "Invoice #:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, data.InvoiceNumber, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 6, "Date:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, FormatDisplayDate(data.Date), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 6, "Due date:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, FormatDisplayDate(data.DueDate), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	colWidths := []float64{80, 20, 30, 20, 30}
	headerTitles := []string{"Description", "Quantity", "Unit Price", "Tax", "Amount"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, title := range headerTitles {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(colWidths[i], 8, title, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range data.Items {
		pdf.CellFormat(colWidths[0], 8, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, trimTrailingZeros(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%.2f", item.Tax), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("%.2f", item.Amount()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// the total row prints the invoice's own total, it is intentionally
	// not recomputed from the line items
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2]+colWidths[3], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("%.2f", data.Total), "1", 1, "R", false, 0, "")

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Questions? Contact us at %s", brand.SupportEmail), "", 1, "L", false, 0, "")

	if err := pdf.Error(); err != nil {
		return err
	}

	return pdf.Output(buf)
}

func trimTrailingZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
