package entity

import (
	"time"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/lineitem"
)

// Draft borrador de factura en edición. Vive hasta que se emite o se descarta;
// no es persistencia contable.
type Draft struct {
	ID         string      `json:"id"`
	CompanyID  string      `json:"company_id"`
	UserID     string      `json:"user_id"`
	CustomerID string      `json:"customer_id,omitempty"`
	PartyName  string      `json:"party_name,omitempty"`
	Lines      []DraftLine `json:"lines"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// DraftLine línea del borrador.
type DraftLine struct {
	ID   string            `json:"id"`
	Item lineitem.LineItem `json:"item"`
}

// Line devuelve la línea con el ID indicado (índice -1 si no existe).
func (d *Draft) Line(lineID string) (int, *DraftLine) {
	for i := range d.Lines {
		if d.Lines[i].ID == lineID {
			return i, &d.Lines[i]
		}
	}
	return -1, nil
}
