package quote

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Document carries everything needed to render a quotation PDF.
type Document struct {
	From          string
	To            string
	Date          time.Time
	MarkupPercent float64
	Cart          Cart
}

// Brand accent used for the header and table heading.
var accentColor = [3]int{219, 207, 172}

const footerNote = "Esta cotización está sujeta a disponibilidad de inventario."

// Filename builds the download name: sanitized recipient plus date.
func (d Document) Filename() string {
	to := d.To
	if to == "" {
		to = "Cliente"
	}
	return fmt.Sprintf("Cotizacion_Sielu_%s_%s.pdf",
		strings.Join(strings.Fields(to), "_"),
		d.Date.Format("02-01-2006"))
}

// Render produces the quotation PDF: brand header, line-item table and the
// totals block, matching the commercial quotation layout.
func (d Document) Render() ([]byte, error) {
	if len(d.Cart.Items) == 0 {
		return nil, fmt.Errorf("quotation has no items")
	}

	from := d.From
	if from == "" {
		from = "Asesor Sielu"
	}
	to := d.To
	if to == "" {
		to = "Cliente"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // Spanish accents on core fonts
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.Text(14, 20, "Sielu")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(26, 26, 26)
	pdf.Text(14, 30, tr("COTIZACIÓN COMERCIAL"))

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(85, 85, 85)
	pdf.Text(14, 40, tr(fmt.Sprintf("Fecha: %s", d.Date.Format("02/01/2006"))))
	pdf.Text(14, 46, tr(fmt.Sprintf("De: %s", from)))
	pdf.Text(14, 52, tr(fmt.Sprintf("Para: %s", to)))

	// Line-item table
	headers := []string{"CÓDIGO", "PRODUCTO", "CANT.", "V. UNITARIO", "V. TOTAL"}
	widths := []float64{30, 82, 15, 27.5, 27.5}
	aligns := []string{"L", "L", "C", "R", "R"}

	pdf.SetY(60)
	pdf.SetX(14)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.SetTextColor(26, 26, 26)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(245, 243, 238)
	for n, it := range d.Cart.Items {
		unit := UnitPrice(it.BasePrice, d.MarkupPercent)
		row := []string{
			it.BillingCode,
			it.Name,
			fmt.Sprintf("%d", it.Quantity),
			FormatCOP(unit),
			FormatCOP(it.LineTotal(d.MarkupPercent)),
		}
		fill := n%2 == 1 // striped
		pdf.SetX(14)
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, tr(cell), "", 0, aligns[i], fill, 0, "")
		}
		pdf.Ln(-1)
	}

	// Totals block, right aligned
	totals := d.Cart.ComputeTotals(d.MarkupPercent)
	pdf.Ln(4)
	pdf.SetTextColor(26, 26, 26)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(14)
	pdf.CellFormat(182, 6, tr(fmt.Sprintf("Subtotal: %s", FormatCOP(totals.Subtotal))), "", 1, "R", false, 0, "")
	pdf.SetX(14)
	pdf.CellFormat(182, 6, tr(fmt.Sprintf("IVA (19%%): %s", FormatCOP(totals.Tax))), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetX(14)
	pdf.CellFormat(182, 8, tr(fmt.Sprintf("TOTAL: %s", FormatCOP(totals.Total))), "", 1, "R", false, 0, "")

	// Footer
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(150, 150, 150)
	pdf.SetY(272)
	pdf.SetX(14)
	pdf.CellFormat(182, 6, tr(footerNote), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
