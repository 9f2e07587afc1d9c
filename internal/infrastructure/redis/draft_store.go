package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftStore)(nil)

const draftKeyPrefix = "draft:"

// DraftStore borradores de factura en Redis como JSON. Cada Save renueva el TTL;
// un borrador abandonado desaparece solo.
type DraftStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewDraftStore construye el almacén sobre un cliente Redis (o pipeline/cluster: redis.Cmdable).
func NewDraftStore(client redis.Cmdable, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(id string) string { return draftKeyPrefix + id }

// Save serializa el borrador y lo guarda con expiración.
func (s *DraftStore) Save(ctx context.Context, draft *entity.Draft) error {
	if draft == nil || draft.ID == "" {
		return fmt.Errorf("borrador sin ID")
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("serializar borrador: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(draft.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("guardar borrador en Redis: %w", err)
	}
	return nil
}

// GetByID devuelve el borrador o (nil, nil) si no existe o expiró.
func (s *DraftStore) GetByID(ctx context.Context, id string) (*entity.Draft, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer borrador de Redis: %w", err)
	}
	var d entity.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("deserializar borrador: %w", err)
	}
	return &d, nil
}

// Delete elimina el borrador.
func (s *DraftStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("eliminar borrador de Redis: %w", err)
	}
	return nil
}
