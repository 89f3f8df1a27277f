package billing_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeReceiptRepo struct {
	byID map[string]*entity.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{byID: map[string]*entity.Receipt{}}
}

func (f *fakeReceiptRepo) Create(r *entity.Receipt) error {
	f.byID[r.ID] = r
	return nil
}

func (f *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	return f.byID[id], nil
}

func (f *fakeReceiptRepo) ListByUser(userID string) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range f.byID {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReceiptRepo) ListByBusiness(businessID string) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, r := range f.byID {
		if r.BusinessID == businessID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	byID map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byID: map[string]*entity.Invoice{}}
}

func (f *fakeInvoiceRepo) Create(i *entity.Invoice) error {
	f.byID[i.ID] = i
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return f.byID[id], nil
}

func (f *fakeInvoiceRepo) ListByUser(userID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, i := range f.byID {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ListByBusiness(businessID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, i := range f.byID {
		if i.BusinessID == businessID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Update(i *entity.Invoice) error {
	f.byID[i.ID] = i
	return nil
}

type fakeBusinessRepo struct {
	byUser map[string]*entity.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{byUser: map[string]*entity.Business{}}
}

func (f *fakeBusinessRepo) Create(b *entity.Business) error {
	f.byUser[b.UserID] = b
	return nil
}

func (f *fakeBusinessRepo) GetByUserID(userID string) (*entity.Business, error) {
	return f.byUser[userID], nil
}

func (f *fakeBusinessRepo) Update(b *entity.Business) error {
	f.byUser[b.UserID] = b
	return nil
}

type fakeChallengeRepo struct {
	byID map[string]*entity.Challenge
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{byID: map[string]*entity.Challenge{}}
}

func (f *fakeChallengeRepo) Create(c *entity.Challenge) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeChallengeRepo) GetByID(id string) (*entity.Challenge, error) {
	return f.byID[id], nil
}

func (f *fakeChallengeRepo) ListByDocumentIDs(receiptIDs, invoiceIDs []string) ([]*entity.Challenge, error) {
	in := func(id string, ids []string) bool {
		for _, v := range ids {
			if v == id {
				return true
			}
		}
		return false
	}
	var out []*entity.Challenge
	for _, c := range f.byID {
		if (c.ReceiptID != "" && in(c.ReceiptID, receiptIDs)) ||
			(c.InvoiceID != "" && in(c.InvoiceID, invoiceIDs)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeChallengeRepo) Update(c *entity.Challenge) error {
	f.byID[c.ID] = c
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos base
// ──────────────────────────────────────────────────────────────────────────────

func testBusiness(userID string) *entity.Business {
	now := time.Now()
	return &entity.Business{
		ID:        "biz-1",
		UserID:    userID,
		Name:      "Acme Design Studio",
		Address:   "123 Main Street",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62704",
		Country:   "USA",
		Phone:     "+1 (555) 010-0000",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
