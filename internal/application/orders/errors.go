package orders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/domain"
)

// Tipos de ítem deficitario en un ShortageError.
const (
	shortageProduct = "producto"
	shortageSupply  = "insumo"
)

// ShortageError identifica el primer ítem con inventario insuficiente
// encontrado al resolver un pedido. Envuelve domain.ErrInsufficientStock para
// que los handlers puedan clasificarlo con errors.Is.
type ShortageError struct {
	Kind      string // producto | insumo
	Name      string // nombre, o id si el documento desapareció
	Requested decimal.Decimal
	Available decimal.Decimal
}

// Error construye el mensaje que la UI muestra al rechazar el pedido.
func (e *ShortageError) Error() string {
	return fmt.Sprintf("stock insuficiente para el %s %q: necesario %s, disponible %s",
		e.Kind, e.Name, e.Requested.String(), e.Available.String())
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientStock).
func (e *ShortageError) Unwrap() error { return domain.ErrInsufficientStock }
