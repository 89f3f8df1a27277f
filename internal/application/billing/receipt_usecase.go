package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/document"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

// ReceiptUseCase crea y consulta recibos del usuario autenticado.
type ReceiptUseCase struct {
	receiptRepo  repository.ReceiptRepository
	businessRepo repository.BusinessRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(receiptRepo repository.ReceiptRepository, businessRepo repository.BusinessRepository) *ReceiptUseCase {
	return &ReceiptUseCase{receiptRepo: receiptRepo, businessRepo: businessRepo}
}

// Create valida y persiste un recibo. Requiere perfil de negocio configurado
// y al menos una línea con nombre. Los totales del body se ignoran: el
// servidor recalcula con document.ComputeTotals y persiste esos valores.
func (uc *ReceiptUseCase) Create(userID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	business, err := uc.businessRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrBusinessNotFound
	}

	items := itemsFromRequest(in.Items)
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if date == nil {
		date = &now
	}

	totals := document.ComputeTotals(items, in.Discount, in.TaxRate)

	receipt := &entity.Receipt{
		ID:              uuid.New().String(),
		ReceiptNumber:   document.NewNumber(document.PrefixReceipt),
		UserID:          userID,
		BusinessID:      business.ID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Date:            *date,
		Subtotal:        totals.Subtotal,
		TaxRate:         totals.TaxRate,
		TaxAmount:       totals.TaxAmount,
		Discount:        totals.Discount,
		Total:           totals.Total,
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.receiptRepo.Create(receipt); err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

// List devuelve los recibos del usuario, más recientes primero.
func (uc *ReceiptUseCase) List(userID string) ([]dto.ReceiptResponse, error) {
	receipts, err := uc.receiptRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, *toReceiptResponse(r))
	}
	return out, nil
}

// GetByID devuelve un recibo del usuario. Un recibo ajeno se reporta como
// inexistente, igual que uno que no existe.
func (uc *ReceiptUseCase) GetByID(userID, id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

func (uc *ReceiptUseCase) getOwned(userID, id string) (*entity.Receipt, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil || receipt.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return receipt, nil
}
