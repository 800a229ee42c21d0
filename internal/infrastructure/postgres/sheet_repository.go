package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

var _ repository.SheetRepository = (*SheetRepo)(nil)

// SheetRepo implementación de SheetRepository sobre PostgreSQL. Los
// componentes se guardan como JSONB en la misma fila: la ficha siempre se lee
// y escribe completa, no hay consultas por componente individual.
type SheetRepo struct {
	q Querier
}

func NewSheetRepository(q Querier) *SheetRepo {
	return &SheetRepo{q: q}
}

const sheetColumns = `id, name, description, kind, components, steps, yield, total_cost, suggested_price, is_active, created_at, updated_at`

func scanSheet(row pgx.Row) (*entity.TechnicalSheet, error) {
	var (
		s          entity.TechnicalSheet
		components []byte
	)
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.Kind, &components, &s.Steps,
		&s.Yield, &s.TotalCost, &s.SuggestedPrice, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(components) > 0 {
		if err := json.Unmarshal(components, &s.Components); err != nil {
			return nil, fmt.Errorf("decode sheet components: %w", err)
		}
	}
	return &s, nil
}

// Create persiste una nueva ficha técnica.
func (r *SheetRepo) Create(sheet *entity.TechnicalSheet) error {
	components, err := json.Marshal(sheet.Components)
	if err != nil {
		return fmt.Errorf("encode sheet components: %w", err)
	}
	query := `
		INSERT INTO technical_sheets (id, name, description, kind, components, steps, yield, total_cost, suggested_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		sheet.ID, sheet.Name, sheet.Description, sheet.Kind, components, sheet.Steps,
		sheet.Yield, sheet.TotalCost, sheet.SuggestedPrice, sheet.IsActive,
		sheet.CreatedAt, sheet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert technical sheet: %w", err)
	}
	return nil
}

// GetByID obtiene una ficha por ID.
func (r *SheetRepo) GetByID(id string) (*entity.TechnicalSheet, error) {
	query := `SELECT ` + sheetColumns + ` FROM technical_sheets WHERE id = $1`
	s, err := scanSheet(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get technical sheet: %w", err)
	}
	return s, nil
}

// Update actualiza la ficha completa, componentes incluidos.
func (r *SheetRepo) Update(sheet *entity.TechnicalSheet) error {
	components, err := json.Marshal(sheet.Components)
	if err != nil {
		return fmt.Errorf("encode sheet components: %w", err)
	}
	query := `
		UPDATE technical_sheets
		SET name = $2, description = $3, kind = $4, components = $5, steps = $6,
		    yield = $7, total_cost = $8, suggested_price = $9, updated_at = $10
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		sheet.ID, sheet.Name, sheet.Description, sheet.Kind, components, sheet.Steps,
		sheet.Yield, sheet.TotalCost, sheet.SuggestedPrice, sheet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update technical sheet: %w", err)
	}
	return nil
}

// SetActive activa o archiva la ficha (borrado lógico).
func (r *SheetRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE technical_sheets SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set technical sheet active: %w", err)
	}
	return nil
}

// List devuelve fichas, opcionalmente solo las activas.
func (r *SheetRepo) List(onlyActive bool) ([]*entity.TechnicalSheet, error) {
	query := `SELECT ` + sheetColumns + ` FROM technical_sheets`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list technical sheets: %w", err)
	}
	defer rows.Close()
	var list []*entity.TechnicalSheet
	for rows.Next() {
		s, err := scanSheet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technical sheet: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
