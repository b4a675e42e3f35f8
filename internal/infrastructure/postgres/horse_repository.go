package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Establo-api/internal/domain/entity"
	"github.com/jhoicas/Establo-api/internal/domain/repository"
)

var _ repository.HorseRepository = (*HorseRepo)(nil)

// HorseRepo implementación del puerto HorseRepository sobre PostgreSQL.
// La lista de consumos se guarda como columna JSONB del mismo registro:
// cada Update es un solo UPDATE de una fila, lo que conserva la atomicidad
// de documento único del modelo (no hay escritura parcial de la lista).
type HorseRepo struct {
	q Querier
}

// NewHorseRepository construye el adaptador de persistencia. Pasar pool o tx (Querier).
func NewHorseRepository(q Querier) *HorseRepo {
	return &HorseRepo{q: q}
}

// Create persiste un caballo nuevo.
func (r *HorseRepo) Create(horse *entity.Horse) error {
	doc, err := marshalConsumptions(horse.ConsumptionList)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO horses (id, name, owner, consumption_list, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.q.Exec(context.Background(), query,
		horse.ID, horse.Name, horse.Owner, doc, horse.CreatedAt, horse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert horse: %w", err)
	}
	return nil
}

// GetByID obtiene un caballo por ID. Devuelve (nil, nil) si no existe.
func (r *HorseRepo) GetByID(id string) (*entity.Horse, error) {
	query := `
		SELECT id, name, owner, consumption_list, created_at, updated_at
		FROM horses WHERE id = $1`
	h, err := scanHorse(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get horse: %w", err)
	}
	return h, nil
}

// List devuelve todos los caballos por orden de creación.
func (r *HorseRepo) List() ([]*entity.Horse, error) {
	query := `
		SELECT id, name, owner, consumption_list, created_at, updated_at
		FROM horses ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list horses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Horse
	for rows.Next() {
		h, err := scanHorse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan horse: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// Update reemplaza el documento completo del caballo, lista incluida.
func (r *HorseRepo) Update(horse *entity.Horse) error {
	doc, err := marshalConsumptions(horse.ConsumptionList)
	if err != nil {
		return err
	}
	query := `
		UPDATE horses SET name = $2, owner = $3, consumption_list = $4, updated_at = $5
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		horse.ID, horse.Name, horse.Owner, doc, horse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update horse: %w", err)
	}
	return nil
}

// Delete elimina un caballo (y con él su lista de consumos embebida).
func (r *HorseRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM horses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete horse: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func marshalConsumptions(list []entity.Consumption) ([]byte, error) {
	if list == nil {
		list = []entity.Consumption{}
	}
	doc, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("marshal consumption list: %w", err)
	}
	return doc, nil
}

func scanHorse(row pgx.Row) (*entity.Horse, error) {
	var h entity.Horse
	var doc []byte
	if err := row.Scan(&h.ID, &h.Name, &h.Owner, &doc, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc, &h.ConsumptionList); err != nil {
		return nil, fmt.Errorf("unmarshal consumption list: %w", err)
	}
	return &h, nil
}
