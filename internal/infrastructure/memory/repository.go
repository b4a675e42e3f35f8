// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Se usa en tests y desarrollo sin base de datos; cada operación
// es atómica bajo un mutex, igual que una escritura de documento único.
package memory

import (
	"sync"

	"github.com/jhoicas/Establo-api/internal/domain/entity"
	"github.com/jhoicas/Establo-api/internal/domain/repository"
)

var (
	_ repository.StockItemRepository = (*StockItemRepo)(nil)
	_ repository.HorseRepository    = (*HorseRepo)(nil)
)

// StockItemRepo almacén de artículos en memoria.
type StockItemRepo struct {
	mu    sync.Mutex
	items map[string]entity.StockItem
	order []string
}

// NewStockItemRepository construye el adaptador en memoria.
func NewStockItemRepository() *StockItemRepo {
	return &StockItemRepo{items: make(map[string]entity.StockItem)}
}

func (r *StockItemRepo) Create(item *entity.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.StockItem, 0, len(r.order))
	for _, id := range r.order {
		if it, ok := r.items[id]; ok {
			item := it
			list = append(list, &item)
		}
	}
	return list, nil
}

func (r *StockItemRepo) Update(item *entity.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

func (r *StockItemRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// HorseRepo almacén de caballos en memoria. Get y List devuelven copias
// con la lista de consumos clonada para que el caller no mute el almacén.
type HorseRepo struct {
	mu     sync.Mutex
	horses map[string]entity.Horse
	order  []string
}

// NewHorseRepository construye el adaptador en memoria.
func NewHorseRepository() *HorseRepo {
	return &HorseRepo{horses: make(map[string]entity.Horse)}
}

func cloneHorse(h entity.Horse) *entity.Horse {
	list := make([]entity.Consumption, len(h.ConsumptionList))
	copy(list, h.ConsumptionList)
	h.ConsumptionList = list
	return &h
}

func (r *HorseRepo) Create(horse *entity.Horse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.horses[horse.ID] = *cloneHorse(*horse)
	r.order = append(r.order, horse.ID)
	return nil
}

func (r *HorseRepo) GetByID(id string) (*entity.Horse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.horses[id]
	if !ok {
		return nil, nil
	}
	return cloneHorse(h), nil
}

func (r *HorseRepo) List() ([]*entity.Horse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Horse, 0, len(r.order))
	for _, id := range r.order {
		if h, ok := r.horses[id]; ok {
			list = append(list, cloneHorse(h))
		}
	}
	return list, nil
}

func (r *HorseRepo) Update(horse *entity.Horse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.horses[horse.ID] = *cloneHorse(*horse)
	return nil
}

func (r *HorseRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.horses[id]; !ok {
		return false, nil
	}
	delete(r.horses, id)
	return true, nil
}
