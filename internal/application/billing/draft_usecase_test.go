package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/billing"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/dto"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newDraft(t *testing.T, f *fixture) *dto.DraftResponse {
	t.Helper()
	d, err := f.uc.Create(context.Background(), companyID, userID, dto.CreateDraftRequest{CustomerID: customerID})
	require.NoError(t, err)
	return d
}

func addLine(t *testing.T, f *fixture, draftID string) string {
	t.Helper()
	line, err := f.uc.AddLine(context.Background(), companyID, draftID)
	require.NoError(t, err)
	return line.ID
}

func edit(t *testing.T, f *fixture, draftID, lineID, field string, value any) *dto.DraftLineResponse {
	t.Helper()
	out, err := f.uc.EditLine(context.Background(), companyID, draftID, lineID, dto.EditLineRequest{Field: field, Value: value})
	require.NoError(t, err)
	return out
}

func selectItem(t *testing.T, f *fixture, draftID, lineID, itemID string) *dto.DraftLineResponse {
	t.Helper()
	out, err := f.uc.SelectItem(context.Background(), companyID, draftID, lineID, dto.SelectItemRequest{ItemID: itemID})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / AddLine
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_TomaNombreDelCliente(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Ramesh Traders", d.PartyName)
	assert.True(t, d.TaxEnabled)
	assert.Empty(t, d.Lines)
}

func TestCreate_ClienteInexistente(t *testing.T) {
	f := newFixture(true)
	_, err := f.uc.Create(context.Background(), companyID, userID, dto.CreateDraftRequest{CustomerID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ClienteDeOtraEmpresa(t *testing.T) {
	f := newFixture(true)
	_, err := f.uc.Create(context.Background(), otherCompanyID, userID, dto.CreateDraftRequest{CustomerID: customerID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAddLine_LineaVaciaConErrores(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)

	line, err := f.uc.AddLine(context.Background(), companyID, d.ID)
	require.NoError(t, err)

	assert.Equal(t, "integer", line.Item.UnitKind)
	assert.Equal(t, "0", line.Item.QuantityDisplay)
	assert.Equal(t, "Item is required", line.Violations["item_id"])
	assert.Equal(t, "Quantity must be greater than 0 and should be a valid whole number", line.Violations["quantity"])
	assert.Equal(t, "Rate must be greater than 0", line.Violations["rate"])
}

// ──────────────────────────────────────────────────────────────────────────────
// SelectItem / EditLine
// ──────────────────────────────────────────────────────────────────────────────

func TestSelectItem_ConImpuestosCopiaHSNYTasa(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	lineID := addLine(t, f, d.ID)

	line := selectItem(t, f, d.ID, lineID, riceID)

	assert.Equal(t, riceID, line.Item.ItemID)
	assert.Equal(t, "Basmati Rice", line.Item.Item)
	assert.Equal(t, "kg", line.Item.Unit)
	assert.Equal(t, "decimal", line.Item.UnitKind)
	assert.Equal(t, "1006", line.Item.HSNCode)
	assert.Equal(t, "18", line.Item.TaxRate.String())
}

func TestSelectItem_SinImpuestosNoCopiaHSNNiTasa(t *testing.T) {
	f := newFixture(false)
	d := newDraft(t, f)
	lineID := addLine(t, f, d.ID)

	line := selectItem(t, f, d.ID, lineID, riceID)

	assert.False(t, d.TaxEnabled)
	assert.Empty(t, line.Item.HSNCode)
	assert.True(t, line.Item.TaxRate.IsZero())
	assert.Equal(t, "decimal", line.Item.UnitKind)
}

func TestSelectItem_ItemInexistente(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	lineID := addLine(t, f, d.ID)

	_, err := f.uc.SelectItem(context.Background(), companyID, d.ID, lineID, dto.SelectItemRequest{ItemID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditLine_RecalculaImporteImpuestoYTotal(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	lineID := addLine(t, f, d.ID)
	selectItem(t, f, d.ID, lineID, riceID)

	edit(t, f, d.ID, lineID, "quantity", "2.5")
	line := edit(t, f, d.ID, lineID, "rate", 10.0)

	assert.Equal(t, "2.5", line.Item.Quantity.String())
	assert.Equal(t, "2.50", line.Item.QuantityDisplay)
	assert.Equal(t, "25", line.Item.Amount.String())
	assert.Equal(t, "4.5", line.Item.TaxAmount.String())
	assert.Equal(t, "29.5", line.Item.TotalAmount.String())
	assert.Empty(t, line.Violations)
}

func TestEditLine_UnidadEnteraTruncaCantidad(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	lineID := addLine(t, f, d.ID)
	selectItem(t, f, d.ID, lineID, boxID)

	line := edit(t, f, d.ID, lineID, "quantity", "3.7")

	assert.Equal(t, "3", line.Item.Quantity.String())
	assert.Equal(t, "3", line.Item.QuantityDisplay)
}

func TestEditLine_ValorNoNumericoDegradaACero(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	lineID := addLine(t, f, d.ID)
	selectItem(t, f, d.ID, lineID, boxID)
	edit(t, f, d.ID, lineID, "quantity", 4)

	line := edit(t, f, d.ID, lineID, "rate", "abc")

	assert.True(t, line.Item.Rate.IsZero())
	assert.True(t, line.Item.Amount.IsZero())
	assert.Equal(t, "Rate must be greater than 0", line.Violations["rate"])
}

func TestEditLine_CampoDesconocido(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	lineID := addLine(t, f, d.ID)

	_, err := f.uc.EditLine(context.Background(), companyID, d.ID, lineID, dto.EditLineRequest{Field: "colour", Value: "red"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEditLine_LineaInexistente(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)

	_, err := f.uc.EditLine(context.Background(), companyID, d.ID, "nope", dto.EditLineRequest{Field: "rate", Value: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_BorradorDeOtraEmpresa(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)

	_, err := f.uc.Get(context.Background(), otherCompanyID, d.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRemoveLine_QuitaSoloEsaLinea(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	first := addLine(t, f, d.ID)
	second := addLine(t, f, d.ID)

	require.NoError(t, f.uc.RemoveLine(context.Background(), companyID, d.ID, first))

	got, err := f.uc.Get(context.Background(), companyID, d.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, second, got.Lines[0].ID)

	assert.ErrorIs(t, f.uc.RemoveLine(context.Background(), companyID, d.ID, first), domain.ErrNotFound)
}

func TestDiscard_EliminaElBorrador(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)

	require.NoError(t, f.uc.Discard(context.Background(), companyID, d.ID))

	_, err := f.uc.Get(context.Background(), companyID, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func fillTwoLines(t *testing.T, f *fixture, draftID string) {
	t.Helper()
	rice := addLine(t, f, draftID)
	selectItem(t, f, draftID, rice, riceID)
	edit(t, f, draftID, rice, "quantity", "2.5")
	edit(t, f, draftID, rice, "rate", 10)

	box := addLine(t, f, draftID)
	selectItem(t, f, draftID, box, boxID)
	edit(t, f, draftID, box, "quantity", "3.7")
	edit(t, f, draftID, box, "rate", "12.5")
	edit(t, f, draftID, box, "discount_amount", 2)
}

func TestGet_TotalesProvisionales(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	fillTwoLines(t, f, d.ID)

	got, err := f.uc.Get(context.Background(), companyID, d.ID)
	require.NoError(t, err)

	assert.Equal(t, "62.5", got.Subtotal.String())
	assert.Equal(t, "2", got.DiscountTotal.String())
	assert.Equal(t, "10.89", got.TaxTotal.String())
	assert.Equal(t, "71.39", got.GrandTotal.String())
}

func TestSubmit_EmiteFacturaYEliminaBorrador(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	fillTwoLines(t, f, d.ID)

	inv, err := f.uc.Submit(context.Background(), companyID, userID, d.ID, dto.SubmitDraftRequest{Date: "2026-03-01"})
	require.NoError(t, err)

	assert.Equal(t, billing.DefaultInvoicePrefix, inv.Prefix)
	assert.NotEmpty(t, inv.Number)
	assert.Equal(t, "2026-03-01", inv.Date)
	assert.Equal(t, "Ramesh Traders", inv.PartyName)
	assert.Equal(t, "62.5", inv.Subtotal.String())
	assert.Equal(t, "10.89", inv.TaxTotal.String())
	assert.Equal(t, "71.39", inv.GrandTotal.String())
	require.Len(t, inv.Details, 2)
	assert.Equal(t, 1, inv.Details[0].Position)
	assert.Equal(t, "41.89", inv.Details[1].TotalAmount.String())

	_, err = f.uc.Get(context.Background(), companyID, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el borrador emitido debe eliminarse")

	stored, err := f.query.Get(context.Background(), companyID, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.GrandTotal.String(), stored.GrandTotal.String())
	require.Len(t, stored.Details, 2)
	assert.Equal(t, "Basmati Rice", stored.Details[0].ItemName)
}

func TestSubmit_SinNumeroDosBorradoresNoColisionan(t *testing.T) {
	f := newFixture(true)
	first := newDraft(t, f)
	fillTwoLines(t, f, first.ID)
	second := newDraft(t, f)
	fillTwoLines(t, f, second.ID)

	a, err := f.uc.Submit(context.Background(), companyID, userID, first.ID, dto.SubmitDraftRequest{})
	require.NoError(t, err)
	b, err := f.uc.Submit(context.Background(), companyID, userID, second.ID, dto.SubmitDraftRequest{})
	require.NoError(t, err)

	assert.NotEqual(t, a.Number, b.Number)
	assert.Regexp(t, `^`+billing.DefaultInvoicePrefix+`-\d+-[0-9a-f]{8}$`, a.Number)
}

func TestSubmit_LineasInvalidasNoPersisteNada(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	fillTwoLines(t, f, d.ID)
	bad := addLine(t, f, d.ID)

	_, err := f.uc.Submit(context.Background(), companyID, userID, d.ID, dto.SubmitDraftRequest{})
	require.Error(t, err)

	var verr *billing.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	require.Len(t, verr.Lines, 1)
	assert.Equal(t, "Item is required", verr.Lines[bad]["item_id"])
	assert.Contains(t, verr.Lines[bad], "rate")

	assert.Empty(t, f.invoices.invoices)
	_, err = f.uc.Get(context.Background(), companyID, d.ID)
	assert.NoError(t, err, "el borrador sigue disponible para corregir")
}

func TestSubmit_BorradorVacio(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)

	_, err := f.uc.Submit(context.Background(), companyID, userID, d.ID, dto.SubmitDraftRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_FechaInvalida(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	fillTwoLines(t, f, d.ID)

	_, err := f.uc.Submit(context.Background(), companyID, userID, d.ID, dto.SubmitDraftRequest{Date: "01/03/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_FalloEnTransaccionConservaBorrador(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	fillTwoLines(t, f, d.ID)
	f.invoices.failWith = errors.New("db caída")

	_, err := f.uc.Submit(context.Background(), companyID, userID, d.ID, dto.SubmitDraftRequest{Number: "7"})
	require.Error(t, err)

	assert.Empty(t, f.invoices.invoices, "la cabecera no debe quedar sin sus líneas")
	_, err = f.uc.Get(context.Background(), companyID, d.ID)
	assert.NoError(t, err)
}

func TestInvoiceGet_OtraEmpresa(t *testing.T) {
	f := newFixture(true)
	d := newDraft(t, f)
	fillTwoLines(t, f, d.ID)
	inv, err := f.uc.Submit(context.Background(), companyID, userID, d.ID, dto.SubmitDraftRequest{Prefix: "B2B", Number: "0001"})
	require.NoError(t, err)
	assert.Equal(t, "B2B", inv.Prefix)
	assert.Equal(t, "0001", inv.Number)

	_, err = f.query.Get(context.Background(), otherCompanyID, inv.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.query.Get(context.Background(), companyID, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
