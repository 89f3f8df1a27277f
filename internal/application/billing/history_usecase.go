package billing

import (
	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

// HistoryUseCase combina recibos y facturas del usuario en una sola vista.
type HistoryUseCase struct {
	receiptRepo repository.ReceiptRepository
	invoiceRepo repository.InvoiceRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(receiptRepo repository.ReceiptRepository, invoiceRepo repository.InvoiceRepository) *HistoryUseCase {
	return &HistoryUseCase{receiptRepo: receiptRepo, invoiceRepo: invoiceRepo}
}

// Get devuelve el historial completo del usuario. Cada colección llega
// ordenada del repositorio (más reciente primero); la mezcla cronológica
// entre tipos la hace el cliente.
func (uc *HistoryUseCase) Get(userID string) (*dto.HistoryResponse, error) {
	receipts, err := uc.receiptRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	out := &dto.HistoryResponse{
		Receipts: make([]dto.ReceiptResponse, 0, len(receipts)),
		Invoices: make([]dto.InvoiceResponse, 0, len(invoices)),
	}
	for _, r := range receipts {
		out.Receipts = append(out.Receipts, *toReceiptResponse(r))
	}
	for _, i := range invoices {
		out.Invoices = append(out.Invoices, *toInvoiceResponse(i))
	}
	return out, nil
}
