package infra

// pdf.go — Receipt PDF generation using go-pdf/fpdf.
// Two receipt kinds share the same A7 thermal-style layout:
//   - sale receipt:       item table + total + payment breakdown
//   - membership receipt: plan, validity window, amount paid, remaining balance
//
// The output file is saved under storagePath.

import (
	"fmt"
	"os"
	"path/filepath"

	"gymplus/internal/model"

	"github.com/go-pdf/fpdf"
)

const (
	receiptPageW = 74.0
	receiptPageH = 105.0
)

func newReceiptPDF() *fpdf.Fpdf {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: receiptPageW, Ht: receiptPageH},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()
	return pdf
}

func receiptHeader(pdf *fpdf.Fpdf, subtitle string) float64 {
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "GymPlus", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	return contentW
}

func receiptSeparator(pdf *fpdf.Fpdf) {
	pageW, _ := pdf.GetPageSize()
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)
}

func receiptPagos(pdf *fpdf.Fpdf, contentW float64, pagos []model.Pago) {
	pdf.SetFont("Helvetica", "", 7)
	for _, pago := range pagos {
		metodo := "pago"
		if pago.TipoPago != nil {
			metodo = pago.TipoPago.Descripcion
		}
		pdf.CellFormat(contentW*0.68, 4, "Pago ("+metodo+"):", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.32, 4, "$"+pago.Monto.StringFixed(2), "", 1, "R", false, 0, "")
	}
}

func receiptFooter(pdf *fpdf.Fpdf, contentW float64, msg string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, msg, "", 1, "C", false, 0, "")
}

// GenerateReciboVentaPDF generates a PDF receipt for a completed Venta.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerateReciboVentaPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("venta_%s.pdf", venta.ID))

	pdf := newReceiptPDF()
	contentW := receiptHeader(pdf, "Recibo de Compra")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	receiptSeparator(pdf)

	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range venta.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		// Truncate long names
		if len(nombre) > 22 {
			nombre = nombre[:21] + "…"
		}
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	receiptSeparator(pdf)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	receiptPagos(pdf, contentW, venta.Pagos)
	receiptFooter(pdf, contentW, "¡Gracias por su compra!")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// GenerateReciboMembresiaPDF generates a PDF receipt for a membership purchase
// or an installment payment against it.
func GenerateReciboMembresiaPDF(m *model.Membresia, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("membresia_%s.pdf", m.ID))

	pdf := newReceiptPDF()
	contentW := receiptHeader(pdf, "Recibo de Membresia")

	pdf.SetFont("Helvetica", "", 7)
	if m.Cliente != nil {
		pdf.CellFormat(contentW, 4, m.Cliente.Nombre+" "+m.Cliente.Apellido, "", 1, "L", false, 0, "")
	}
	if m.TipoMembresia != nil {
		pdf.CellFormat(contentW, 4, "Plan: "+m.TipoMembresia.Nombre, "", 1, "L", false, 0, "")
	}
	vigencia := "Desde " + m.FechaInicio.Format("02/01/2006")
	if m.FechaFin != nil {
		vigencia += " hasta " + m.FechaFin.Format("02/01/2006")
	}
	pdf.CellFormat(contentW, 4, vigencia, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	receiptSeparator(pdf)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.68, 6, "PRECIO:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.32, 6, "$"+m.Precio.StringFixed(2), "", 1, "R", false, 0, "")

	if !m.SaldoPendiente.IsZero() {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(contentW*0.68, 5, "Saldo pendiente:", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.32, 5, "$"+m.SaldoPendiente.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	receiptPagos(pdf, contentW, m.Pagos)
	receiptFooter(pdf, contentW, "¡Gracias por entrenar con nosotros!")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
