package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

// PDFUseCase renderiza documentos persistidos como PDF descargable.
type PDFUseCase struct {
	receiptRepo  repository.ReceiptRepository
	invoiceRepo  repository.InvoiceRepository
	businessRepo repository.BusinessRepository
	generator    DocumentPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	receiptRepo repository.ReceiptRepository,
	invoiceRepo repository.InvoiceRepository,
	businessRepo repository.BusinessRepository,
	generator DocumentPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		receiptRepo:  receiptRepo,
		invoiceRepo:  invoiceRepo,
		businessRepo: businessRepo,
		generator:    generator,
	}
}

// ReceiptPDF genera el PDF de un recibo del usuario. Devuelve los bytes del
// documento y el nombre de archivo sugerido para la descarga.
func (uc *PDFUseCase) ReceiptPDF(ctx context.Context, userID, receiptID string) ([]byte, string, error) {
	receipt, err := uc.receiptRepo.GetByID(receiptID)
	if err != nil {
		return nil, "", err
	}
	if receipt == nil || receipt.UserID != userID {
		return nil, "", domain.ErrNotFound
	}
	business, err := uc.businessRepo.GetByUserID(userID)
	if err != nil {
		return nil, "", err
	}
	if business == nil {
		return nil, "", domain.ErrBusinessNotFound
	}

	pdf, err := uc.generator.GenerateReceiptPDF(ctx, receipt, business)
	if err != nil {
		return nil, "", fmt.Errorf("generando PDF del recibo: %w", err)
	}
	return pdf, downloadName("receipt"), nil
}

// InvoicePDF genera el PDF de una factura del usuario.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, userID, invoiceID string) ([]byte, string, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, "", domain.ErrNotFound
	}
	business, err := uc.businessRepo.GetByUserID(userID)
	if err != nil {
		return nil, "", err
	}
	if business == nil {
		return nil, "", domain.ErrBusinessNotFound
	}

	pdf, err := uc.generator.GenerateInvoicePDF(ctx, invoice, business)
	if err != nil {
		return nil, "", fmt.Errorf("generando PDF de la factura: %w", err)
	}
	return pdf, downloadName("invoice"), nil
}

// downloadName produce un nombre único por descarga, no por documento: el
// timestamp evita que el navegador pise descargas repetidas del mismo id.
func downloadName(kind string) string {
	return fmt.Sprintf("%s_%d.pdf", kind, time.Now().UnixMilli())
}
