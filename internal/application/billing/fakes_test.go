package billing_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/billing"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/catalog"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/repository"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/infrastructure/memory"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/pkg/logger"
)

const (
	companyID      = "00000000-0000-0000-0000-0000000000c1"
	otherCompanyID = "00000000-0000-0000-0000-0000000000c2"
	userID         = "00000000-0000-0000-0000-0000000000e1"
	customerID     = "00000000-0000-0000-0000-0000000000a1"
	riceID         = "00000000-0000-0000-0000-0000000000p1"
	boxID          = "00000000-0000-0000-0000-0000000000p2"
)

type fakeCompanies struct{ m map[string]*entity.Company }

func (f *fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return f.m[id], nil
}

type fakeCustomers struct{ m map[string]*entity.Customer }

func (f *fakeCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return f.m[id], nil
}

type fakeProducts struct {
	mu    sync.Mutex
	list  []*entity.Product
	calls int
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) ListByCompany(_ context.Context, cid string, limit, offset int) ([]*entity.Product, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	var out []*entity.Product
	for _, p := range f.list {
		if p.CompanyID == cid {
			out = append(out, p)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeInvoices repositorio de facturas en memoria; también actúa como tx runner.
type fakeInvoices struct {
	mu       sync.Mutex
	invoices map[string]*entity.Invoice
	details  map[string][]*entity.InvoiceDetail
	failWith error
}

func newFakeInvoices() *fakeInvoices {
	return &fakeInvoices{invoices: map[string]*entity.Invoice{}, details: map[string][]*entity.InvoiceDetail{}}
}

func (f *fakeInvoices) Create(_ context.Context, inv *entity.Invoice) error {
	for _, existing := range f.invoices {
		if existing.CompanyID == inv.CompanyID && existing.Prefix == inv.Prefix && existing.Number == inv.Number {
			return errors.New("duplicate number")
		}
	}
	f.invoices[inv.ID] = inv
	return nil
}

func (f *fakeInvoices) CreateDetail(_ context.Context, d *entity.InvoiceDetail) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.details[d.InvoiceID] = append(f.details[d.InvoiceID], d)
	return nil
}

func (f *fakeInvoices) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoices) GetDetailsByInvoiceID(_ context.Context, id string) ([]*entity.InvoiceDetail, error) {
	out := append([]*entity.InvoiceDetail(nil), f.details[id]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// RunInvoice emula la transacción: si fn falla, descarta lo escrito.
func (f *fakeInvoices) RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx := &fakeInvoices{invoices: map[string]*entity.Invoice{}, details: map[string][]*entity.InvoiceDetail{}, failWith: f.failWith}
	for k, v := range f.invoices {
		tx.invoices[k] = v
	}
	for k, v := range f.details {
		tx.details[k] = v
	}
	if err := fn(tx); err != nil {
		return err
	}
	f.invoices, f.details = tx.invoices, tx.details
	return nil
}

type fixture struct {
	drafts   *memory.DraftStore
	invoices *fakeInvoices
	products *fakeProducts
	uc       *billing.DraftUseCase
	query    *billing.InvoiceUseCase
}

func newFixture(taxEnabled bool) *fixture {
	companies := &fakeCompanies{m: map[string]*entity.Company{
		companyID:      {ID: companyID, Name: "Kirana", TaxEnabled: taxEnabled, Status: "active"},
		otherCompanyID: {ID: otherCompanyID, Name: "Otra", TaxEnabled: true, Status: "active"},
	}}
	customers := &fakeCustomers{m: map[string]*entity.Customer{
		customerID: {ID: customerID, CompanyID: companyID, Name: "Ramesh Traders"},
	}}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	products := &fakeProducts{list: []*entity.Product{
		{
			ID: riceID, CompanyID: companyID, SKU: "RICE-1", Name: "Basmati Rice",
			Price: decimal.NewFromInt(10), TaxRate: decimal.NewFromInt(18), HSNCode: "1006",
			Unit: "kg", UnitDecimalPlaces: 2, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: boxID, CompanyID: companyID, SKU: "BOX-1", Name: "Carton Box",
			Price: decimal.NewFromFloat(12.5), TaxRate: decimal.NewFromInt(18), HSNCode: "4819",
			Unit: "pcs", UnitDecimalPlaces: 0, CreatedAt: now, UpdatedAt: now,
		},
	}}
	drafts := memory.NewDraftStore(time.Hour)
	invoices := newFakeInvoices()
	cat := catalog.NewService(products, time.Minute)
	return &fixture{
		drafts:   drafts,
		invoices: invoices,
		products: products,
		uc:       billing.NewDraftUseCase(drafts, companies, customers, cat, invoices, logger.Nop()),
		query:    billing.NewInvoiceUseCase(invoices),
	}
}
