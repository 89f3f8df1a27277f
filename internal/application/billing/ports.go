package billing

import (
	"context"

	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

// DocumentPDFGenerator renderiza la representación gráfica (PDF) de un
// documento. Es un camino presentacional separado del texto compartible:
// puede formatear moneda con conciencia de locale y no tiene que coincidir
// byte a byte con ShareText.
type DocumentPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *entity.Receipt, business *entity.Business) ([]byte, error)
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, business *entity.Business) ([]byte, error)
}
