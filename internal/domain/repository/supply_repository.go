package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

// SupplyRepository puerto de persistencia para insumos.
type SupplyRepository interface {
	Create(supply *entity.Supply) error
	// CreateBatch inserta varios insumos; el caller decide si corre dentro
	// de una transacción (pasar repos atados a tx vía TxRunner).
	CreateBatch(supplies []*entity.Supply) error
	GetByID(id string) (*entity.Supply, error)
	// GetForUpdate obtiene el insumo bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Supply, error)
	Update(supply *entity.Supply) error
	// UpdateStock fija el stock absoluto del insumo (lo usa el motor de pedidos).
	UpdateStock(id string, stock decimal.Decimal) error
	// SetActive activa/archiva el insumo (borrado lógico).
	SetActive(id string, active bool) error
	// List devuelve insumos; onlyActive=true excluye los archivados.
	List(onlyActive bool) ([]*entity.Supply, error)
	// ListBelowMinimum devuelve insumos activos con stock < min_stock.
	ListBelowMinimum() ([]*entity.Supply, error)
}
