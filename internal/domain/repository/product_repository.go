package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStockQuantity fija el stock propio del producto (motor de pedidos).
	UpdateStockQuantity(id string, qty decimal.Decimal) error
	SetActive(id string, active bool) error
	List(onlyActive bool) ([]*entity.Product, error)
}
