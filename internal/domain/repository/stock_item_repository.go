package repository

import "github.com/jhoicas/Establo-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
// GetByID devuelve (nil, nil) si el ID no existe. Delete devuelve si se
// eliminó alguna fila; un segundo Delete del mismo ID devuelve false.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	List() ([]*entity.StockItem, error)
	Update(item *entity.StockItem) error
	Delete(id string) (bool, error)
}
