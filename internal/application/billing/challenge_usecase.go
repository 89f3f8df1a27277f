package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

// ChallengeUseCase gestiona disputas presentadas por terceros sobre
// documentos emitidos. La presentación es pública (el tercero no tiene
// cuenta); la consulta y resolución pertenecen al dueño del documento.
type ChallengeUseCase struct {
	challengeRepo repository.ChallengeRepository
	receiptRepo   repository.ReceiptRepository
	invoiceRepo   repository.InvoiceRepository
}

// NewChallengeUseCase construye el caso de uso.
func NewChallengeUseCase(
	challengeRepo repository.ChallengeRepository,
	receiptRepo repository.ReceiptRepository,
	invoiceRepo repository.InvoiceRepository,
) *ChallengeUseCase {
	return &ChallengeUseCase{challengeRepo: challengeRepo, receiptRepo: receiptRepo, invoiceRepo: invoiceRepo}
}

// Create registra una disputa nueva. Exige exactamente uno de
// receipt_id/invoice_id, que el documento exista, y nombre y motivo no
// vacíos. La disputa nace en estado pending.
func (uc *ChallengeUseCase) Create(in dto.CreateChallengeRequest) (*dto.ChallengeResponse, error) {
	if (in.ReceiptID == "") == (in.InvoiceID == "") {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.ChallengerName) == "" || strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrInvalidInput
	}

	if in.ReceiptID != "" {
		receipt, err := uc.receiptRepo.GetByID(in.ReceiptID)
		if err != nil {
			return nil, err
		}
		if receipt == nil {
			return nil, domain.ErrNotFound
		}
	} else {
		invoice, err := uc.invoiceRepo.GetByID(in.InvoiceID)
		if err != nil {
			return nil, err
		}
		if invoice == nil {
			return nil, domain.ErrNotFound
		}
	}

	challenge := &entity.Challenge{
		ID:              uuid.New().String(),
		ReceiptID:       in.ReceiptID,
		InvoiceID:       in.InvoiceID,
		ChallengerName:  in.ChallengerName,
		ChallengerEmail: in.ChallengerEmail,
		ChallengerPhone: in.ChallengerPhone,
		Reason:          in.Reason,
		Status:          entity.ChallengeStatusPending,
		CreatedAt:       time.Now(),
	}
	if err := uc.challengeRepo.Create(challenge); err != nil {
		return nil, err
	}
	return toChallengeResponse(challenge), nil
}

// ListForUser devuelve las disputas sobre cualquier documento del usuario.
func (uc *ChallengeUseCase) ListForUser(userID string) ([]dto.ChallengeResponse, error) {
	receipts, err := uc.receiptRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	receiptIDs := make([]string, 0, len(receipts))
	for _, r := range receipts {
		receiptIDs = append(receiptIDs, r.ID)
	}
	invoiceIDs := make([]string, 0, len(invoices))
	for _, i := range invoices {
		invoiceIDs = append(invoiceIDs, i.ID)
	}

	challenges, err := uc.challengeRepo.ListByDocumentIDs(receiptIDs, invoiceIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChallengeResponse, 0, len(challenges))
	for _, c := range challenges {
		out = append(out, *toChallengeResponse(c))
	}
	return out, nil
}

// Resolve cambia el estado de una disputa sobre un documento del usuario.
// Al pasar a resolved o rejected se estampa resolved_at; volver a pending
// lo limpia.
func (uc *ChallengeUseCase) Resolve(userID, challengeID string, in dto.ResolveChallengeRequest) (*dto.ChallengeResponse, error) {
	if !entity.ValidChallengeStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	challenge, err := uc.challengeRepo.GetByID(challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, domain.ErrNotFound
	}
	owned, err := uc.ownsDocument(userID, challenge)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrNotFound
	}

	challenge.Status = in.Status
	challenge.ResolutionNotes = in.ResolutionNotes
	if in.Status == entity.ChallengeStatusPending {
		challenge.ResolvedAt = nil
	} else {
		now := time.Now()
		challenge.ResolvedAt = &now
	}
	if err := uc.challengeRepo.Update(challenge); err != nil {
		return nil, err
	}
	return toChallengeResponse(challenge), nil
}

func (uc *ChallengeUseCase) ownsDocument(userID string, c *entity.Challenge) (bool, error) {
	if c.ReceiptID != "" {
		receipt, err := uc.receiptRepo.GetByID(c.ReceiptID)
		if err != nil {
			return false, err
		}
		return receipt != nil && receipt.UserID == userID, nil
	}
	invoice, err := uc.invoiceRepo.GetByID(c.InvoiceID)
	if err != nil {
		return false, err
	}
	return invoice != nil && invoice.UserID == userID, nil
}

func toChallengeResponse(c *entity.Challenge) *dto.ChallengeResponse {
	return &dto.ChallengeResponse{
		ID:              c.ID,
		ReceiptID:       c.ReceiptID,
		InvoiceID:       c.InvoiceID,
		ChallengerName:  c.ChallengerName,
		ChallengerEmail: c.ChallengerEmail,
		ChallengerPhone: c.ChallengerPhone,
		Reason:          c.Reason,
		Status:          c.Status,
		ResolutionNotes: c.ResolutionNotes,
		CreatedAt:       c.CreatedAt,
		ResolvedAt:      c.ResolvedAt,
	}
}
