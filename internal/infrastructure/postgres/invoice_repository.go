package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Recibos-api/internal/domain/entity"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
// Igual que en recibos, las líneas van embebidas en la columna jsonb items.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `id, invoice_number, user_id, business_id,
	customer_name, customer_email, customer_phone, customer_address, customer_tax_id,
	issue_date, due_date, subtotal, tax_rate, tax_amount, discount, total,
	status, payment_terms, notes, items, created_at, updated_at`

// Create persiste una nueva factura con sus líneas embebidas.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	items, err := itemsToJSON(invoice.Items)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err = r.pool.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.UserID, invoice.BusinessID,
		invoice.CustomerName, nullIfEmpty(invoice.CustomerEmail),
		nullIfEmpty(invoice.CustomerPhone), nullIfEmpty(invoice.CustomerAddress),
		nullIfEmpty(invoice.CustomerTaxID),
		invoice.IssueDate, invoice.DueDate, invoice.Subtotal, invoice.TaxRate,
		invoice.TaxAmount, invoice.Discount, invoice.Total,
		invoice.Status, nullIfEmpty(invoice.PaymentTerms), nullIfEmpty(invoice.Notes), items,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	invoice, err := scanInvoice(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return invoice, nil
}

// ListByUser lista las facturas del usuario, más recientes primero.
func (r *InvoiceRepo) ListByUser(userID string) ([]*entity.Invoice, error) {
	return r.list(`user_id`, userID)
}

// ListByBusiness lista las facturas emitidas por un negocio, más recientes primero.
func (r *InvoiceRepo) ListByBusiness(businessID string) ([]*entity.Invoice, error) {
	return r.list(`business_id`, businessID)
}

func (r *InvoiceRepo) list(column, value string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE ` + column + ` = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, value)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, invoice)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables de la factura (estado y notas).
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET status = $2, notes = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		invoice.ID, invoice.Status, nullIfEmpty(invoice.Notes), invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var customerEmail, customerPhone, customerAddress, customerTaxID *string
	var paymentTerms, notes *string
	var rawItems []byte
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.UserID, &inv.BusinessID,
		&inv.CustomerName, &customerEmail, &customerPhone, &customerAddress, &customerTaxID,
		&inv.IssueDate, &inv.DueDate, &inv.Subtotal, &inv.TaxRate,
		&inv.TaxAmount, &inv.Discount, &inv.Total,
		&inv.Status, &paymentTerms, &notes, &rawItems,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.CustomerEmail = derefStr(customerEmail)
	inv.CustomerPhone = derefStr(customerPhone)
	inv.CustomerAddress = derefStr(customerAddress)
	inv.CustomerTaxID = derefStr(customerTaxID)
	inv.PaymentTerms = derefStr(paymentTerms)
	inv.Notes = derefStr(notes)
	inv.Items, err = itemsFromJSON(rawItems)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
