package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/dto"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/lineitem"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/repository"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/pkg/logger"
)

// DefaultInvoicePrefix prefijo de numeración cuando la petición no trae uno.
const DefaultInvoicePrefix = "INV"

// DraftUseCase ciclo de vida del borrador de factura: se crea vacío, se edita línea
// a línea (derivar → validar en cada edición), se emite o se descarta.
type DraftUseCase struct {
	drafts    repository.DraftRepository
	companies repository.CompanyRepository
	customers repository.CustomerRepository
	catalog   CatalogLoader
	txRunner  InvoiceTxRunner
	log       *logger.Logger
	locks     *keyedMutex
	now       func() time.Time
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(
	drafts repository.DraftRepository,
	companies repository.CompanyRepository,
	customers repository.CustomerRepository,
	catalog CatalogLoader,
	txRunner InvoiceTxRunner,
	log *logger.Logger,
) *DraftUseCase {
	return &DraftUseCase{
		drafts:    drafts,
		companies: companies,
		customers: customers,
		catalog:   catalog,
		txRunner:  txRunner,
		log:       log,
		locks:     newKeyedMutex(),
		now:       time.Now,
	}
}

// Create crea un borrador vacío para la empresa.
func (uc *DraftUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateDraftRequest) (*dto.DraftResponse, error) {
	company, err := uc.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if in.CustomerID != "" {
		customer, err := uc.customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		if customer.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		if strings.TrimSpace(in.PartyName) == "" {
			in.PartyName = customer.Name
		}
	}

	now := uc.now()
	draft := &entity.Draft{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		UserID:     userID,
		CustomerID: in.CustomerID,
		PartyName:  strings.TrimSpace(in.PartyName),
		Lines:      []entity.DraftLine{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("guardar borrador: %w", err)
	}
	return toDraftResponse(draft, company.TaxEnabled), nil
}

// Get devuelve el borrador con los errores de validación actuales de cada línea.
func (uc *DraftUseCase) Get(ctx context.Context, companyID, draftID string) (*dto.DraftResponse, error) {
	company, err := uc.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	draft, err := uc.load(ctx, companyID, draftID)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft, company.TaxEnabled), nil
}

// AddLine agrega una línea vacía al borrador.
func (uc *DraftUseCase) AddLine(ctx context.Context, companyID, draftID string) (*dto.DraftLineResponse, error) {
	unlock := uc.locks.Lock(draftID)
	defer unlock()

	draft, err := uc.load(ctx, companyID, draftID)
	if err != nil {
		return nil, err
	}
	line := entity.DraftLine{
		ID:   uuid.New().String(),
		Item: lineitem.LineItem{UnitKind: lineitem.UnitInteger},
	}
	draft.Lines = append(draft.Lines, line)
	if err := uc.save(ctx, draft); err != nil {
		return nil, err
	}
	resp := toDraftLineResponse(line)
	return &resp, nil
}

// SelectItem asigna un ítem de catálogo a la línea (reinicia unidad y, con impuestos, HSN y tasa).
func (uc *DraftUseCase) SelectItem(ctx context.Context, companyID, draftID, lineID string, in dto.SelectItemRequest) (*dto.DraftLineResponse, error) {
	if strings.TrimSpace(in.ItemID) == "" {
		return nil, domain.ErrInvalidInput
	}
	unlock := uc.locks.Lock(draftID)
	defer unlock()

	company, err := uc.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	draft, err := uc.load(ctx, companyID, draftID)
	if err != nil {
		return nil, err
	}
	_, line := draft.Line(lineID)
	if line == nil {
		return nil, domain.ErrNotFound
	}
	snap, err := uc.catalog.Load(ctx, companyID)
	if err != nil {
		return nil, err
	}
	entry, ok := snap.Lookup(in.ItemID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	line.Item = lineitem.NewCalculator(company.TaxEnabled).SelectItem(line.Item, entry)
	if err := uc.save(ctx, draft); err != nil {
		return nil, err
	}
	resp := toDraftLineResponse(*line)
	return &resp, nil
}

// EditLine aplica la edición de un campo y devuelve la línea derivada con sus errores.
// Un valor no numérico nunca es error: degrada a 0.
func (uc *DraftUseCase) EditLine(ctx context.Context, companyID, draftID, lineID string, in dto.EditLineRequest) (*dto.DraftLineResponse, error) {
	field, ok := lineitem.ParseField(in.Field)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	unlock := uc.locks.Lock(draftID)
	defer unlock()

	company, err := uc.company(ctx, companyID)
	if err != nil {
		return nil, err
	}
	draft, err := uc.load(ctx, companyID, draftID)
	if err != nil {
		return nil, err
	}
	_, line := draft.Line(lineID)
	if line == nil {
		return nil, domain.ErrNotFound
	}
	kind, err := uc.resolveKind(ctx, companyID, line.Item)
	if err != nil {
		return nil, err
	}

	line.Item = lineitem.NewCalculator(company.TaxEnabled).DeriveOnChange(line.Item, field, in.Value, kind)
	if err := uc.save(ctx, draft); err != nil {
		return nil, err
	}
	resp := toDraftLineResponse(*line)
	return &resp, nil
}

// RemoveLine quita una línea del borrador.
func (uc *DraftUseCase) RemoveLine(ctx context.Context, companyID, draftID, lineID string) error {
	unlock := uc.locks.Lock(draftID)
	defer unlock()

	draft, err := uc.load(ctx, companyID, draftID)
	if err != nil {
		return err
	}
	idx, _ := draft.Line(lineID)
	if idx < 0 {
		return domain.ErrNotFound
	}
	draft.Lines = append(draft.Lines[:idx], draft.Lines[idx+1:]...)
	return uc.save(ctx, draft)
}

// Discard descarta el borrador sin emitir.
func (uc *DraftUseCase) Discard(ctx context.Context, companyID, draftID string) error {
	unlock := uc.locks.Lock(draftID)
	defer unlock()

	if _, err := uc.load(ctx, companyID, draftID); err != nil {
		return err
	}
	if err := uc.drafts.Delete(ctx, draftID); err != nil {
		return fmt.Errorf("descartar borrador: %w", err)
	}
	return nil
}

// Submit valida todas las líneas y, si no hay errores, emite la factura (cabecera y
// detalles en una sola transacción) y elimina el borrador.
// Con líneas inválidas devuelve *ValidationError y no persiste nada.
func (uc *DraftUseCase) Submit(ctx context.Context, companyID, userID, draftID string, in dto.SubmitDraftRequest) (*dto.InvoiceResponse, error) {
	unlock := uc.locks.Lock(draftID)
	defer unlock()

	draft, err := uc.load(ctx, companyID, draftID)
	if err != nil {
		return nil, err
	}
	if len(draft.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	date := now
	if in.Date != "" {
		date, err = time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	invalid := make(map[string]lineitem.Violations)
	for _, line := range draft.Lines {
		kind, err := uc.resolveKind(ctx, companyID, line.Item)
		if err != nil {
			return nil, err
		}
		if v := lineitem.Validate(line.Item, kind); !v.Empty() {
			invalid[line.ID] = v
		}
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Lines: invalid}
	}

	prefix := strings.TrimSpace(in.Prefix)
	if prefix == "" {
		prefix = DefaultInvoicePrefix
	}
	number := strings.TrimSpace(in.Number)
	if number == "" {
		// El sufijo evita colisiones entre emisiones del mismo segundo.
		number = fmt.Sprintf("%s-%d-%s", prefix, now.Unix(), uuid.New().String()[:8])
	}

	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: draft.CustomerID,
		PartyName:  draft.PartyName,
		Prefix:     prefix,
		Number:     number,
		Date:       date,
		Status:     entity.InvoiceStatusIssued,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	details := make([]*entity.InvoiceDetail, 0, len(draft.Lines))
	for i, line := range draft.Lines {
		d := toInvoiceDetail(inv.ID, i+1, line.Item)
		inv.Subtotal = inv.Subtotal.Add(d.Amount)
		inv.DiscountTotal = inv.DiscountTotal.Add(d.DiscountAmount)
		inv.TaxTotal = inv.TaxTotal.Add(d.TaxAmount)
		inv.GrandTotal = inv.GrandTotal.Add(d.TotalAmount)
		details = append(details, d)
	}

	err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		for _, d := range details {
			if err := invoiceRepo.CreateDetail(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).
			Str("company_id", companyID).
			Str("draft_id", draftID).
			Msg("emitir factura desde borrador")
		return nil, err
	}

	// La factura ya está emitida: un fallo al borrar el borrador solo se registra, expira por TTL.
	if err := uc.drafts.Delete(ctx, draftID); err != nil {
		uc.log.Warn().Err(err).Str("draft_id", draftID).Msg("eliminar borrador emitido")
	}
	uc.log.Info().
		Str("company_id", companyID).
		Str("draft_id", draftID).
		Str("invoice_id", inv.ID).
		Int("lines", len(details)).
		Str("grand_total", inv.GrandTotal.StringFixed(2)).
		Msg("factura emitida")

	return toInvoiceResponse(inv, details), nil
}

func (uc *DraftUseCase) company(ctx context.Context, companyID string) (*entity.Company, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func (uc *DraftUseCase) load(ctx context.Context, companyID, draftID string) (*entity.Draft, error) {
	draft, err := uc.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("obtener borrador: %w", err)
	}
	if draft == nil {
		return nil, domain.ErrNotFound
	}
	if draft.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return draft, nil
}

func (uc *DraftUseCase) save(ctx context.Context, draft *entity.Draft) error {
	draft.UpdatedAt = uc.now()
	if err := uc.drafts.Save(ctx, draft); err != nil {
		return fmt.Errorf("guardar borrador: %w", err)
	}
	return nil
}

// resolveKind toma el tipo de unidad del ítem de catálogo seleccionado; si la
// línea aún no tiene ítem o el ítem ya no existe, usa el que quedó en la línea.
func (uc *DraftUseCase) resolveKind(ctx context.Context, companyID string, item lineitem.LineItem) (lineitem.UnitKind, error) {
	kind := item.UnitKind
	if kind == "" {
		kind = lineitem.UnitInteger
	}
	if item.ItemID == "" {
		return kind, nil
	}
	snap, err := uc.catalog.Load(ctx, companyID)
	if err != nil {
		return "", err
	}
	if entry, ok := snap.Lookup(item.ItemID); ok && entry.UnitKind != "" {
		return entry.UnitKind, nil
	}
	return kind, nil
}

func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(lineitem.Round2(f))
}

func toInvoiceDetail(invoiceID string, position int, item lineitem.LineItem) *entity.InvoiceDetail {
	return &entity.InvoiceDetail{
		ID:             uuid.New().String(),
		InvoiceID:      invoiceID,
		Position:       position,
		ProductID:      item.ItemID,
		ItemName:       item.Item,
		Unit:           item.Unit,
		HSNCode:        item.HSNCode,
		Quantity:       decimal.NewFromFloat(item.Quantity),
		Rate:           decimal.NewFromFloat(item.Rate),
		DiscountAmount: decimal.NewFromFloat(item.DiscountAmount),
		TaxRate:        decimal.NewFromFloat(item.TaxRate),
		Amount:         money(item.Amount),
		TaxAmount:      money(item.TaxAmount),
		TotalAmount:    money(item.TotalAmount),
	}
}

func toLineItemResponse(item lineitem.LineItem) dto.LineItemResponse {
	kind := item.UnitKind
	if kind == "" {
		kind = lineitem.UnitInteger
	}
	return dto.LineItemResponse{
		ItemID:          item.ItemID,
		Item:            item.Item,
		Unit:            item.Unit,
		UnitKind:        string(kind),
		HSNCode:         item.HSNCode,
		Quantity:        decimal.NewFromFloat(item.Quantity),
		QuantityDisplay: lineitem.FormatQuantity(item.Quantity, kind),
		Rate:            decimal.NewFromFloat(item.Rate),
		DiscountAmount:  decimal.NewFromFloat(item.DiscountAmount),
		TaxRate:         decimal.NewFromFloat(item.TaxRate),
		Amount:          money(item.Amount),
		TaxAmount:       money(item.TaxAmount),
		TotalAmount:     money(item.TotalAmount),
	}
}

func toDraftLineResponse(line entity.DraftLine) dto.DraftLineResponse {
	resp := dto.DraftLineResponse{ID: line.ID, Item: toLineItemResponse(line.Item)}
	if v := lineitem.Validate(line.Item, line.Item.UnitKind); !v.Empty() {
		resp.Violations = v
	}
	return resp
}

func toDraftResponse(d *entity.Draft, taxEnabled bool) *dto.DraftResponse {
	resp := &dto.DraftResponse{
		ID:         d.ID,
		CompanyID:  d.CompanyID,
		CustomerID: d.CustomerID,
		PartyName:  d.PartyName,
		TaxEnabled: taxEnabled,
		Lines:      make([]dto.DraftLineResponse, 0, len(d.Lines)),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	for _, line := range d.Lines {
		lr := toDraftLineResponse(line)
		resp.Subtotal = resp.Subtotal.Add(lr.Item.Amount)
		resp.DiscountTotal = resp.DiscountTotal.Add(lr.Item.DiscountAmount)
		resp.TaxTotal = resp.TaxTotal.Add(lr.Item.TaxAmount)
		resp.GrandTotal = resp.GrandTotal.Add(lr.Item.TotalAmount)
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}
