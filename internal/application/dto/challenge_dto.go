package dto

import "time"

// CreateChallengeRequest body para POST /api/history/challenge (público:
// lo presenta el tercero que disputa el documento).
type CreateChallengeRequest struct {
	ReceiptID       string `json:"receipt_id,omitempty"`
	InvoiceID       string `json:"invoice_id,omitempty"`
	ChallengerName  string `json:"challenger_name"`
	ChallengerEmail string `json:"challenger_email"`
	ChallengerPhone string `json:"challenger_phone,omitempty"`
	Reason          string `json:"reason"`
}

// ResolveChallengeRequest body para PATCH /api/history/challenges/:id.
type ResolveChallengeRequest struct {
	Status          string `json:"status"` // resolved | rejected | pending
	ResolutionNotes string `json:"resolution_notes"`
}

// ChallengeResponse disputa en respuestas.
type ChallengeResponse struct {
	ID              string     `json:"id"`
	ReceiptID       string     `json:"receipt_id,omitempty"`
	InvoiceID       string     `json:"invoice_id,omitempty"`
	ChallengerName  string     `json:"challenger_name"`
	ChallengerEmail string     `json:"challenger_email"`
	ChallengerPhone string     `json:"challenger_phone,omitempty"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}
