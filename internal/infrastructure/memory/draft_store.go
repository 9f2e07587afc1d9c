package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftStore)(nil)

// DraftStore borradores en memoria del proceso con expiración por inactividad.
// Se usa en tests y cuando no hay Redis configurado.
type DraftStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]storedDraft
}

type storedDraft struct {
	data      []byte
	expiresAt time.Time
}

// NewDraftStore construye el almacén. ttl <= 0 = sin expiración.
func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{ttl: ttl, now: time.Now, items: make(map[string]storedDraft)}
}

// Save guarda una copia del borrador y renueva su expiración.
func (s *DraftStore) Save(_ context.Context, draft *entity.Draft) error {
	if draft == nil || draft.ID == "" {
		return fmt.Errorf("borrador sin ID")
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("serializar borrador: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item := storedDraft{data: data}
	if s.ttl > 0 {
		item.expiresAt = s.now().Add(s.ttl)
	}
	s.items[draft.ID] = item
	return nil
}

// GetByID devuelve una copia del borrador o (nil, nil) si no existe o expiró.
func (s *DraftStore) GetByID(_ context.Context, id string) (*entity.Draft, error) {
	s.mu.Lock()
	item, ok := s.items[id]
	if ok && !item.expiresAt.IsZero() && !s.now().Before(item.expiresAt) {
		delete(s.items, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	var d entity.Draft
	if err := json.Unmarshal(item.data, &d); err != nil {
		return nil, fmt.Errorf("leer borrador: %w", err)
	}
	return &d, nil
}

// Delete elimina el borrador (no falla si no existe).
func (s *DraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
	return nil
}
