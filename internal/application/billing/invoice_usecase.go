package billing

import (
	"context"
	"fmt"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/dto"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/repository"
)

// InvoiceUseCase consultas sobre facturas emitidas.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo}
}

// Get obtiene una factura por ID con su detalle completo.
func (uc *InvoiceUseCase) Get(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	details, err := uc.invoiceRepo.GetDetailsByInvoiceID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener detalle de factura: %w", err)
	}
	return toInvoiceResponse(inv, details), nil
}

func toInvoiceResponse(inv *entity.Invoice, details []*entity.InvoiceDetail) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		CustomerID:    inv.CustomerID,
		PartyName:     inv.PartyName,
		Prefix:        inv.Prefix,
		Number:        inv.Number,
		Date:          inv.Date.Format("2006-01-02"),
		Subtotal:      inv.Subtotal,
		DiscountTotal: inv.DiscountTotal,
		TaxTotal:      inv.TaxTotal,
		GrandTotal:    inv.GrandTotal,
		Status:        inv.Status,
		Details:       make([]dto.InvoiceDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.InvoiceDetailResponse{
			ID:             d.ID,
			Position:       d.Position,
			ProductID:      d.ProductID,
			ItemName:       d.ItemName,
			Unit:           d.Unit,
			HSNCode:        d.HSNCode,
			Quantity:       d.Quantity,
			Rate:           d.Rate,
			DiscountAmount: d.DiscountAmount,
			TaxRate:        d.TaxRate,
			Amount:         d.Amount,
			TaxAmount:      d.TaxAmount,
			TotalAmount:    d.TotalAmount,
		})
	}
	return resp
}
