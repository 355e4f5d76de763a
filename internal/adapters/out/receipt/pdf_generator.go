// Package receipt renders purchase receipts as PDF files under a documents root.
package receipt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	title    = "COMPROBANTE DE COMPRA"
	subtitle = "Universidad Andrés Bello"
	labelW   = 50.0
	rowH     = 7.0
)

// PDFGenerator implements ports.ReceiptGenerator. The file for an order is
// always written to the same relative path (order.ReceiptPath), replacing any
// previous rendering atomically.
type PDFGenerator struct {
	root string
}

var _ ports.ReceiptGenerator = (*PDFGenerator)(nil)

func NewPDFGenerator(root string) (*PDFGenerator, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errs.NewValueIsRequiredError("documents root")
	}
	return &PDFGenerator{root: root}, nil
}

// Generate renders the receipt of a completed order and returns its path
// relative to the documents root.
func (g *PDFGenerator) Generate(ctx context.Context, o *order.Order, b *buyer.Buyer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := o.Validate(); err != nil {
		return "", err
	}
	if err := b.Validate(); err != nil {
		return "", err
	}
	shipping, ok := o.Shipping()
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("order", errors.New("draft orders have no receipt"))
	}

	rel := order.ReceiptPath(o)
	full := filepath.Join(g.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create receipt directory: %w", err)
	}

	pdf := render(o, b, shipping)
	if err := writeAtomically(full, pdf); err != nil {
		return "", err
	}
	return rel, nil
}

func writeAtomically(path string, pdf *fpdf.Fpdf) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".receipt-*.pdf")
	if err != nil {
		return fmt.Errorf("create receipt file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err = pdf.Output(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("render receipt: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write receipt: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store receipt: %w", err)
	}
	return nil
}

func render(o *order.Order, b *buyer.Buyer, shipping order.ShippingSnapshot) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pairs := func(rows [][2]string) {
		for _, r := range rows {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(labelW, rowH, tr(r[0]), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(0, rowH, tr(r[1]), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}
	heading := func(s string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, tr(s), "", 1, "L", false, 0, "")
	}

	pairs([][2]string{
		{"Número de Compra:", o.ID().String()},
		{"Fecha:", o.CreatedAt().Format("02/01/2006 15:04:05")},
		{"Estado:", strings.ToUpper(o.Status().String())},
	})

	contact := shipping.Contact()
	heading("DATOS DEL COMPRADOR")
	pairs([][2]string{
		{"Nombre:", b.FullName()},
		{"Email:", contact.Email().String()},
		{"RUT:", contact.NationalID().String()},
		{"Teléfono:", contact.Phone().String()},
	})

	address := shipping.Address()
	heading("INFORMACIÓN DE ENVÍO")
	rows := [][2]string{
		{"Dirección:", address.Street()},
		{"Comuna:", address.Commune()},
		{"Ciudad:", address.City()},
	}
	if address.PostalCode() != "" {
		rows = append(rows, [2]string{"Código Postal:", address.PostalCode()})
	}
	rows = append(rows, [2]string{"Método de Envío:", shipping.MethodName()})
	if shipping.EstimatedTime() != "" {
		rows = append(rows, [2]string{"Tiempo Estimado:", shipping.EstimatedTime()})
	}
	pairs(rows)

	heading("DETALLE DE PRODUCTOS")
	widths := []float64{80, 25, 40, 40}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Producto", "Cantidad", "Precio Unitario", "Subtotal"} {
		pdf.CellFormat(widths[i], rowH, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range o.LineItems() {
		pdf.CellFormat(widths[0], rowH, tr(item.ProductName()), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], rowH, fmt.Sprintf("%d", item.Quantity()), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], rowH, FormatCLP(item.UnitPrice()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], rowH, FormatCLP(item.Subtotal()), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	totals := [][2]string{
		{"Subtotal:", FormatCLP(o.Subtotal())},
		{"Costo de Envío:", FormatCLP(o.ShippingCost())},
		{"TOTAL:", FormatCLP(o.Total())},
	}
	for i, r := range totals {
		style := ""
		if i == len(totals)-1 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(145, rowH, tr(r[0]), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, rowH, r[1], "", 1, "R", false, 0, "")
	}
	return pdf
}

// FormatCLP renders an amount as "$12.345", or "$12.345,50" when it has cents.
func FormatCLP(m kernel.Money) string {
	amount := m.Amount()
	whole := amount.Truncate(0)
	digits := whole.Abs().String()

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	frac := amount.Sub(whole)
	if !frac.IsZero() {
		cents := frac.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		fmt.Fprintf(&b, ",%02d", cents)
	}
	return "$" + b.String()
}
