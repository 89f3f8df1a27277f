package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Recibos-api/internal/domain/entity"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

var _ repository.ChallengeRepository = (*ChallengeRepo)(nil)

// ChallengeRepo implementación del puerto ChallengeRepository sobre PostgreSQL.
type ChallengeRepo struct {
	pool *pgxpool.Pool
}

// NewChallengeRepository construye el adaptador de persistencia para disputas.
func NewChallengeRepository(pool *pgxpool.Pool) *ChallengeRepo {
	return &ChallengeRepo{pool: pool}
}

const challengeColumns = `id, receipt_id, invoice_id,
	challenger_name, challenger_email, challenger_phone,
	reason, status, resolution_notes, created_at, resolved_at`

// Create persiste una nueva disputa.
func (r *ChallengeRepo) Create(challenge *entity.Challenge) error {
	query := `
		INSERT INTO challenges (` + challengeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		challenge.ID, nullIfEmpty(challenge.ReceiptID), nullIfEmpty(challenge.InvoiceID),
		challenge.ChallengerName, nullIfEmpty(challenge.ChallengerEmail), nullIfEmpty(challenge.ChallengerPhone),
		challenge.Reason, challenge.Status, nullIfEmpty(challenge.ResolutionNotes),
		challenge.CreatedAt, challenge.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert challenge: %w", err)
	}
	return nil
}

// GetByID obtiene una disputa por ID. Devuelve (nil, nil) si no existe.
func (r *ChallengeRepo) GetByID(id string) (*entity.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`
	challenge, err := scanChallenge(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get challenge: %w", err)
	}
	return challenge, nil
}

// ListByDocumentIDs lista las disputas sobre cualquiera de los documentos dados,
// más recientes primero.
func (r *ChallengeRepo) ListByDocumentIDs(receiptIDs, invoiceIDs []string) ([]*entity.Challenge, error) {
	if len(receiptIDs) == 0 && len(invoiceIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + challengeColumns + `
		FROM challenges
		WHERE receipt_id = ANY($1) OR invoice_id = ANY($2)
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, receiptIDs, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	defer rows.Close()

	var list []*entity.Challenge
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan challenge: %w", err)
		}
		list = append(list, challenge)
	}
	return list, rows.Err()
}

// Update actualiza estado, notas de resolución y timestamp de resolución.
func (r *ChallengeRepo) Update(challenge *entity.Challenge) error {
	query := `
		UPDATE challenges SET status = $2, resolution_notes = $3, resolved_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		challenge.ID, challenge.Status, nullIfEmpty(challenge.ResolutionNotes), challenge.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("update challenge: %w", err)
	}
	return nil
}

func scanChallenge(row pgx.Row) (*entity.Challenge, error) {
	var c entity.Challenge
	var receiptID, invoiceID, challengerEmail, challengerPhone, resolutionNotes *string
	err := row.Scan(
		&c.ID, &receiptID, &invoiceID,
		&c.ChallengerName, &challengerEmail, &challengerPhone,
		&c.Reason, &c.Status, &resolutionNotes,
		&c.CreatedAt, &c.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	c.ReceiptID = derefStr(receiptID)
	c.InvoiceID = derefStr(invoiceID)
	c.ChallengerEmail = derefStr(challengerEmail)
	c.ChallengerPhone = derefStr(challengerPhone)
	c.ResolutionNotes = derefStr(resolutionNotes)
	return &c, nil
}
