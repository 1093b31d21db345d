package invoice

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/BruksfildServices01/barber-shop/internal/models"
)

// Renderer grava a fatura em PDF de cada compra. O caminho é estável:
// <dir>/factura-<purchaseID>.pdf.
type Renderer struct {
	dir string
}

func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("invoice dir: %w", err)
	}
	return &Renderer{dir: dir}, nil
}

func (r *Renderer) Path(purchaseID uint) string {
	return filepath.Join(r.dir, fmt.Sprintf("factura-%d.pdf", purchaseID))
}

func (r *Renderer) Render(p *models.Purchase, productName string) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 14, "Factura de Compra", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 12)

	line := func(s string) {
		pdf.CellFormat(0, 8, s, "", 1, "L", false, 0, "")
	}

	line(fmt.Sprintf("ID de compra: %d", p.ID))
	line(fmt.Sprintf("Producto: %s", productName))
	line(fmt.Sprintf("Cantidad: %d", p.Quantity))
	line(fmt.Sprintf("Precio total: $ %.2f", p.Total()))
	line(fmt.Sprintf("Metodo de pago: %s", p.PaymentMethod))
	line(fmt.Sprintf("Fecha de compra: %s", p.PurchaseDate.Format("02/01/2006 15:04:05")))

	path := r.Path(p.ID)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("invoice render: %w", err)
	}
	return path, nil
}
