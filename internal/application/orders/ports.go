package orders

import (
	"context"

	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que las bajas de inventario y la
// creación del pedido se apliquen todas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		supplyRepo repository.SupplyRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de un pedido.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data *ReceiptData) ([]byte, error)
}
