package entity

import "time"

// Estados de una disputa sobre un documento emitido.
const (
	ChallengeStatusPending  = "pending"
	ChallengeStatusResolved = "resolved"
	ChallengeStatusRejected = "rejected"
)

// ValidChallengeStatus indica si s es uno de los estados conocidos.
func ValidChallengeStatus(s string) bool {
	switch s {
	case ChallengeStatusPending, ChallengeStatusResolved, ChallengeStatusRejected:
		return true
	}
	return false
}

// Challenge representa una disputa presentada por un tercero sobre un recibo
// o una factura. Exactamente uno de ReceiptID/InvoiceID es no vacío.
type Challenge struct {
	ID        string
	ReceiptID string
	InvoiceID string

	ChallengerName  string
	ChallengerEmail string
	ChallengerPhone string

	Reason          string
	Status          string // ver constantes ChallengeStatus*
	ResolutionNotes string

	CreatedAt  time.Time
	ResolvedAt *time.Time
}
