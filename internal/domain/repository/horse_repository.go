package repository

import "github.com/jhoicas/Establo-api/internal/domain/entity"

// HorseRepository define el puerto de persistencia para Horse (DIP).
// Update reemplaza el documento completo, lista de consumos incluida;
// no existe actualización parcial por campo (last-writer-wins sobre el
// registro entero, como en el modelo de documento único).
type HorseRepository interface {
	Create(horse *entity.Horse) error
	GetByID(id string) (*entity.Horse, error)
	List() ([]*entity.Horse, error)
	Update(horse *entity.Horse) error
	Delete(id string) (bool, error)
}
