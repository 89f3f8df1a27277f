package repository

import "github.com/jhoicas/Recibos-api/internal/domain/entity"

// ChallengeRepository puerto de persistencia para disputas sobre documentos.
type ChallengeRepository interface {
	Create(challenge *entity.Challenge) error
	GetByID(id string) (*entity.Challenge, error)
	ListByDocumentIDs(receiptIDs, invoiceIDs []string) ([]*entity.Challenge, error)
	Update(challenge *entity.Challenge) error
}
