package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/application/dto"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/entity"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/lineitem"
	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/internal/domain/repository"
)

// pageSize tamaño de página al recorrer el catálogo en el repositorio.
const pageSize = 100

// Item ítem de catálogo en memoria: lo que consume el cálculo más los datos de listado.
type Item struct {
	lineitem.CatalogEntry
	SKU            string
	Price          decimal.Decimal
	DefaultTaxRate decimal.Decimal // tasa exacta para listados; CatalogEntry.TaxRate es la que usa el cálculo
}

// Snapshot copia inmutable del catálogo de una empresa. Lookup es síncrono y sin I/O.
type Snapshot struct {
	CompanyID string
	LoadedAt  time.Time
	byID      map[string]Item
	items     []Item
}

// NewSnapshot construye el snapshot a partir de los productos de la empresa.
func NewSnapshot(companyID string, products []*entity.Product, loadedAt time.Time) *Snapshot {
	s := &Snapshot{
		CompanyID: companyID,
		LoadedAt:  loadedAt,
		byID:      make(map[string]Item, len(products)),
		items:     make([]Item, 0, len(products)),
	}
	for _, p := range products {
		if p == nil {
			continue
		}
		it := toItem(p)
		s.byID[it.ID] = it
		s.items = append(s.items, it)
	}
	sort.SliceStable(s.items, func(i, j int) bool { return s.items[i].Name < s.items[j].Name })
	return s
}

// Lookup devuelve el ítem de catálogo con su unidad, tasa y HSN por defecto.
func (s *Snapshot) Lookup(itemID string) (lineitem.CatalogEntry, bool) {
	it, ok := s.byID[itemID]
	if !ok {
		return lineitem.CatalogEntry{}, false
	}
	return it.CatalogEntry, true
}

// Items devuelve los ítems ordenados por nombre.
func (s *Snapshot) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len cantidad de ítems.
func (s *Snapshot) Len() int { return len(s.items) }

func toItem(p *entity.Product) Item {
	return Item{
		CatalogEntry: lineitem.CatalogEntry{
			ID:       p.ID,
			Name:     p.Name,
			Unit:     p.Unit,
			UnitKind: lineitem.KindFromDecimalPlaces(p.UnitDecimalPlaces),
			TaxRate:  p.TaxRate.InexactFloat64(),
			HSNCode:  p.HSNCode,
		},
		SKU:            p.SKU,
		Price:          p.Price,
		DefaultTaxRate: p.TaxRate,
	}
}

// Service carga y cachea snapshots de catálogo por empresa.
type Service struct {
	repo  repository.ProductRepository
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]*Snapshot
}

// NewService construye el servicio. ttl <= 0 desactiva la caché.
func NewService(repo repository.ProductRepository, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		ttl:   ttl,
		now:   time.Now,
		cache: make(map[string]*Snapshot),
	}
}

// Load devuelve el snapshot vigente de la empresa, cargándolo si no hay uno o expiró.
// Cargas concurrentes de la misma empresa se agrupan en una sola lectura, que no
// depende de la cancelación de quien la inició; cada llamador respeta su propio ctx.
func (s *Service) Load(ctx context.Context, companyID string) (*Snapshot, error) {
	if snap := s.cached(companyID); snap != nil {
		return snap, nil
	}
	loadCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(companyID, func() (interface{}, error) {
		if snap := s.cached(companyID); snap != nil {
			return snap, nil
		}
		products, err := s.fetchAll(loadCtx, companyID)
		if err != nil {
			return nil, err
		}
		snap := NewSnapshot(companyID, products, s.now())
		if s.ttl > 0 {
			s.mu.Lock()
			s.cache[companyID] = snap
			s.mu.Unlock()
		}
		return snap, nil
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// List devuelve el catálogo de la empresa ordenado por nombre.
func (s *Service) List(ctx context.Context, companyID string) (*dto.CatalogListResponse, error) {
	snap, err := s.Load(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := snap.Items()
	out := &dto.CatalogListResponse{Items: make([]dto.CatalogItemResponse, 0, len(items)), Total: len(items)}
	for _, it := range items {
		out.Items = append(out.Items, dto.CatalogItemResponse{
			ID:       it.ID,
			SKU:      it.SKU,
			Name:     it.Name,
			Unit:     it.Unit,
			UnitKind: string(it.UnitKind),
			Price:    it.Price,
			TaxRate:  it.DefaultTaxRate,
			HSNCode:  it.HSNCode,
		})
	}
	return out, nil
}

// Invalidate descarta el snapshot de la empresa (p. ej. tras editar productos).
func (s *Service) Invalidate(companyID string) {
	s.mu.Lock()
	delete(s.cache, companyID)
	s.mu.Unlock()
}

func (s *Service) cached(companyID string) *Snapshot {
	if s.ttl <= 0 {
		return nil
	}
	s.mu.RLock()
	snap := s.cache[companyID]
	s.mu.RUnlock()
	if snap == nil || s.now().Sub(snap.LoadedAt) >= s.ttl {
		return nil
	}
	return snap
}

func (s *Service) fetchAll(ctx context.Context, companyID string) ([]*entity.Product, error) {
	var all []*entity.Product
	for offset := 0; ; offset += pageSize {
		page, err := s.repo.ListByCompany(ctx, companyID, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("cargar catálogo: %w", err)
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}
