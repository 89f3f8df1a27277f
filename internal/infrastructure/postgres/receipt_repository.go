package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Recibos-api/internal/domain/entity"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL.
// Las líneas viven en la columna jsonb items: siempre se leen con la cabecera
// y nunca se consultan por separado.
type ReceiptRepo struct {
	pool *pgxpool.Pool
}

// NewReceiptRepository construye el adaptador de persistencia para recibos.
func NewReceiptRepository(pool *pgxpool.Pool) *ReceiptRepo {
	return &ReceiptRepo{pool: pool}
}

const receiptColumns = `id, receipt_number, user_id, business_id,
	customer_name, customer_email, customer_phone, customer_address,
	date, subtotal, tax_rate, tax_amount, discount, total,
	payment_method, notes, items, created_at, updated_at`

// Create persiste un nuevo recibo con sus líneas embebidas.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	items, err := itemsToJSON(receipt.Items)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err = r.pool.Exec(context.Background(), query,
		receipt.ID, receipt.ReceiptNumber, receipt.UserID, receipt.BusinessID,
		nullIfEmpty(receipt.CustomerName), nullIfEmpty(receipt.CustomerEmail),
		nullIfEmpty(receipt.CustomerPhone), nullIfEmpty(receipt.CustomerAddress),
		receipt.Date, receipt.Subtotal, receipt.TaxRate, receipt.TaxAmount,
		receipt.Discount, receipt.Total,
		nullIfEmpty(receipt.PaymentMethod), nullIfEmpty(receipt.Notes), items,
		receipt.CreatedAt, receipt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("receipt number already exists: %w", err)
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID obtiene un recibo por ID. Devuelve (nil, nil) si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`
	receipt, err := scanReceipt(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return receipt, nil
}

// ListByUser lista los recibos del usuario, más recientes primero.
func (r *ReceiptRepo) ListByUser(userID string) ([]*entity.Receipt, error) {
	return r.list(`user_id`, userID)
}

// ListByBusiness lista los recibos emitidos por un negocio, más recientes primero.
func (r *ReceiptRepo) ListByBusiness(businessID string) ([]*entity.Receipt, error) {
	return r.list(`business_id`, businessID)
}

func (r *ReceiptRepo) list(column, value string) ([]*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE ` + column + ` = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, value)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, receipt)
	}
	return list, rows.Err()
}

func scanReceipt(row pgx.Row) (*entity.Receipt, error) {
	var rc entity.Receipt
	var customerName, customerEmail, customerPhone, customerAddress *string
	var paymentMethod, notes *string
	var rawItems []byte
	err := row.Scan(
		&rc.ID, &rc.ReceiptNumber, &rc.UserID, &rc.BusinessID,
		&customerName, &customerEmail, &customerPhone, &customerAddress,
		&rc.Date, &rc.Subtotal, &rc.TaxRate, &rc.TaxAmount, &rc.Discount, &rc.Total,
		&paymentMethod, &notes, &rawItems,
		&rc.CreatedAt, &rc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rc.CustomerName = derefStr(customerName)
	rc.CustomerEmail = derefStr(customerEmail)
	rc.CustomerPhone = derefStr(customerPhone)
	rc.CustomerAddress = derefStr(customerAddress)
	rc.PaymentMethod = derefStr(paymentMethod)
	rc.Notes = derefStr(notes)
	rc.Items, err = itemsFromJSON(rawItems)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}
