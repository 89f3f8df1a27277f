package billing

import (
	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/document"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

// ShareUseCase produce el texto compartible y el enlace wa.me de un
// documento persistido. El destinatario es el teléfono del cliente del
// documento; sin teléfono el enlace abre el composer genérico.
type ShareUseCase struct {
	receiptRepo  repository.ReceiptRepository
	invoiceRepo  repository.InvoiceRepository
	businessRepo repository.BusinessRepository
}

// NewShareUseCase construye el caso de uso.
func NewShareUseCase(
	receiptRepo repository.ReceiptRepository,
	invoiceRepo repository.InvoiceRepository,
	businessRepo repository.BusinessRepository,
) *ShareUseCase {
	return &ShareUseCase{receiptRepo: receiptRepo, invoiceRepo: invoiceRepo, businessRepo: businessRepo}
}

// ShareReceipt arma texto y enlace para un recibo del usuario.
func (uc *ShareUseCase) ShareReceipt(userID, receiptID string) (*dto.ShareResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil || receipt.UserID != userID {
		return nil, domain.ErrNotFound
	}
	business, err := uc.businessRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrBusinessNotFound
	}

	text := document.ShareText(receiptShareDoc(receipt, business))
	return &dto.ShareResponse{
		Text: text,
		URL:  document.ShareLink(document.NormalizePhone(receipt.CustomerPhone), text),
	}, nil
}

// ShareInvoice arma texto y enlace para una factura del usuario.
func (uc *ShareUseCase) ShareInvoice(userID, invoiceID string) (*dto.ShareResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, domain.ErrNotFound
	}
	business, err := uc.businessRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrBusinessNotFound
	}

	text := document.ShareText(invoiceShareDoc(invoice, business))
	return &dto.ShareResponse{
		Text: text,
		URL:  document.ShareLink(document.NormalizePhone(invoice.CustomerPhone), text),
	}, nil
}
