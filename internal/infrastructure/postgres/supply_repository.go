package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación de SupplyRepository sobre PostgreSQL (usable con
// pool o tx).
type SupplyRepo struct {
	q Querier
}

// NewSupplyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

const supplyColumns = `id, name, sku, unit, stock, cost_per_unit, supplier, min_stock, last_purchase_date, is_active, created_at, updated_at`

func scanSupply(row pgx.Row) (*entity.Supply, error) {
	var s entity.Supply
	err := row.Scan(
		&s.ID, &s.Name, &s.SKU, &s.Unit, &s.Stock, &s.CostPerUnit,
		&s.Supplier, &s.MinStock, &s.LastPurchaseDate, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo insumo.
func (r *SupplyRepo) Create(supply *entity.Supply) error {
	query := `
		INSERT INTO supplies (id, name, sku, unit, stock, cost_per_unit, supplier, min_stock, last_purchase_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		supply.ID, supply.Name, supply.SKU, supply.Unit, supply.Stock, supply.CostPerUnit,
		supply.Supplier, supply.MinStock, supply.LastPurchaseDate, supply.IsActive,
		supply.CreatedAt, supply.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supply: %w", err)
	}
	return nil
}

// CreateBatch inserta varios insumos en un solo round-trip (pgx.Batch).
func (r *SupplyRepo) CreateBatch(supplies []*entity.Supply) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO supplies (id, name, sku, unit, stock, cost_per_unit, supplier, min_stock, last_purchase_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, s := range supplies {
		batch.Queue(query,
			s.ID, s.Name, s.SKU, s.Unit, s.Stock, s.CostPerUnit,
			s.Supplier, s.MinStock, s.LastPurchaseDate, s.IsActive,
			s.CreatedAt, s.UpdatedAt,
		)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()
	for range supplies {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert supplies batch: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *SupplyRepo) GetByID(id string) (*entity.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies WHERE id = $1`
	s, err := scanSupply(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene el insumo y bloquea la fila (SELECT FOR UPDATE).
func (r *SupplyRepo) GetForUpdate(id string) (*entity.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies WHERE id = $1 FOR UPDATE`
	s, err := scanSupply(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply for update: %w", err)
	}
	return s, nil
}

// Update actualiza un insumo existente.
func (r *SupplyRepo) Update(supply *entity.Supply) error {
	query := `
		UPDATE supplies
		SET name = $2, sku = $3, unit = $4, stock = $5, cost_per_unit = $6,
		    supplier = $7, min_stock = $8, last_purchase_date = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supply.ID, supply.Name, supply.SKU, supply.Unit, supply.Stock, supply.CostPerUnit,
		supply.Supplier, supply.MinStock, supply.LastPurchaseDate, supply.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supply: %w", err)
	}
	return nil
}

// UpdateStock fija el stock absoluto (lo usa el motor de pedidos dentro de la tx).
func (r *SupplyRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE supplies SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update supply stock: %w", err)
	}
	return nil
}

// SetActive activa o archiva el insumo (borrado lógico).
func (r *SupplyRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE supplies SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set supply active: %w", err)
	}
	return nil
}

// List devuelve insumos, opcionalmente solo los activos.
func (r *SupplyRepo) List(onlyActive bool) ([]*entity.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	return r.list(query)
}

// ListBelowMinimum devuelve insumos activos con stock bajo el mínimo deseado.
func (r *SupplyRepo) ListBelowMinimum() ([]*entity.Supply, error) {
	query := `SELECT ` + supplyColumns + `
		FROM supplies
		WHERE is_active AND min_stock > 0 AND stock < min_stock
		ORDER BY stock / min_stock`
	return r.list(query)
}

func (r *SupplyRepo) list(query string, args ...any) ([]*entity.Supply, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supply
	for rows.Next() {
		s, err := scanSupply(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supply: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
