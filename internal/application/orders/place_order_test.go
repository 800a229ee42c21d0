package orders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/application/orders"
	"github.com/jhoicas/Pasteleria-api/internal/domain"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// store simula la base: mapas por id, compartidos entre los repos fake.
type store struct {
	supplies map[string]entity.Supply
	products map[string]entity.Product
	sheets   map[string]entity.TechnicalSheet
	orders   map[string]entity.Order
}

func newStore() *store {
	return &store{
		supplies: make(map[string]entity.Supply),
		products: make(map[string]entity.Product),
		sheets:   make(map[string]entity.TechnicalSheet),
		orders:   make(map[string]entity.Order),
	}
}

func (s *store) snapshot() *store {
	cp := newStore()
	for k, v := range s.supplies {
		cp.supplies[k] = v
	}
	for k, v := range s.products {
		cp.products[k] = v
	}
	for k, v := range s.sheets {
		cp.sheets[k] = v
	}
	for k, v := range s.orders {
		cp.orders[k] = v
	}
	return cp
}

func (s *store) restore(from *store) {
	s.supplies = from.supplies
	s.products = from.products
	s.sheets = from.sheets
	s.orders = from.orders
}

type fakeSupplyRepo struct{ s *store }

func (r *fakeSupplyRepo) Create(supply *entity.Supply) error {
	r.s.supplies[supply.ID] = *supply
	return nil
}

func (r *fakeSupplyRepo) CreateBatch(supplies []*entity.Supply) error {
	for _, s := range supplies {
		r.s.supplies[s.ID] = *s
	}
	return nil
}

func (r *fakeSupplyRepo) GetByID(id string) (*entity.Supply, error) {
	if s, ok := r.s.supplies[id]; ok {
		cp := s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSupplyRepo) GetForUpdate(id string) (*entity.Supply, error) { return r.GetByID(id) }

func (r *fakeSupplyRepo) Update(supply *entity.Supply) error {
	r.s.supplies[supply.ID] = *supply
	return nil
}

func (r *fakeSupplyRepo) UpdateStock(id string, stock decimal.Decimal) error {
	s := r.s.supplies[id]
	s.Stock = stock
	r.s.supplies[id] = s
	return nil
}

func (r *fakeSupplyRepo) SetActive(id string, active bool) error {
	s := r.s.supplies[id]
	s.IsActive = active
	r.s.supplies[id] = s
	return nil
}

func (r *fakeSupplyRepo) List(onlyActive bool) ([]*entity.Supply, error) {
	var out []*entity.Supply
	for _, s := range r.s.supplies {
		if onlyActive && !s.IsActive {
			continue
		}
		cp := s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSupplyRepo) ListBelowMinimum() ([]*entity.Supply, error) {
	var out []*entity.Supply
	for _, s := range r.s.supplies {
		if s.IsActive && s.BelowMinimum() {
			cp := s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProductRepo struct{ s *store }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) UpdateStockQuantity(id string, qty decimal.Decimal) error {
	p := r.s.products[id]
	p.StockQuantity = qty
	r.s.products[id] = p
	return nil
}

func (r *fakeProductRepo) SetActive(id string, active bool) error {
	p := r.s.products[id]
	p.IsActive = active
	r.s.products[id] = p
	return nil
}

func (r *fakeProductRepo) List(onlyActive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if onlyActive && !p.IsActive {
			continue
		}
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeSheetRepo struct{ s *store }

func (r *fakeSheetRepo) Create(sheet *entity.TechnicalSheet) error {
	r.s.sheets[sheet.ID] = *sheet
	return nil
}

func (r *fakeSheetRepo) GetByID(id string) (*entity.TechnicalSheet, error) {
	if sh, ok := r.s.sheets[id]; ok {
		cp := sh
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSheetRepo) Update(sheet *entity.TechnicalSheet) error {
	r.s.sheets[sheet.ID] = *sheet
	return nil
}

func (r *fakeSheetRepo) SetActive(id string, active bool) error {
	sh := r.s.sheets[id]
	sh.IsActive = active
	r.s.sheets[id] = sh
	return nil
}

func (r *fakeSheetRepo) List(onlyActive bool) ([]*entity.TechnicalSheet, error) {
	var out []*entity.TechnicalSheet
	for _, sh := range r.s.sheets {
		if onlyActive && !sh.IsActive {
			continue
		}
		cp := sh
		out = append(out, &cp)
	}
	return out, nil
}

type fakeOrderRepo struct {
	s *store
	// failCreate fuerza el fallo del insert para probar la atomicidad
	failCreate bool
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	if r.failCreate {
		return errors.New("insert order: conexión perdida")
	}
	r.s.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	if o, ok := r.s.orders[id]; ok {
		cp := o
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		cp := o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) ReplaceItems(orderID string, items []entity.OrderItem, total decimal.Decimal) error {
	o := r.s.orders[orderID]
	o.Items = items
	o.Total = total
	r.s.orders[orderID] = o
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(orderID, status string) error {
	o := r.s.orders[orderID]
	o.Status = status
	r.s.orders[orderID] = o
	return nil
}

// fakeTxRunner simula la semántica transaccional: toma un snapshot del store
// y lo restaura si fn devuelve error, imitando el rollback.
type fakeTxRunner struct {
	s         *store
	orderRepo *fakeOrderRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	supplyRepo repository.SupplyRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	before := tx.s.snapshot()
	err := fn(&fakeSupplyRepo{s: tx.s}, &fakeProductRepo{s: tx.s}, tx.orderRepo)
	if err != nil {
		tx.s.restore(before)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: pastelería con una ficha anidada
// ──────────────────────────────────────────────────────────────────────────────

// fixture arma un catálogo: harina (1 kg), una ficha base (bizcocho: 200g de
// harina), la ficha final de la torta (1 bizcocho) y dos productos, uno
// dirigido por la ficha y otro de stock propio.
func fixture() *store {
	s := newStore()
	s.supplies["harina"] = entity.Supply{
		ID: "harina", Name: "Harina", Unit: entity.UnitKilogram,
		Stock: dec("1"), IsActive: true,
	}
	s.sheets["bizcocho"] = entity.TechnicalSheet{
		ID: "bizcocho", Name: "Bizcocho", Kind: entity.SheetKindBase,
		Components: []entity.Component{
			{ComponentID: "harina", ComponentType: entity.ComponentSupply, Quantity: dec("200"), Unit: "g"},
		},
		IsActive: true,
	}
	s.sheets["torta-final"] = entity.TechnicalSheet{
		ID: "torta-final", Name: "Torta", Kind: entity.SheetKindFinal,
		Components: []entity.Component{
			{ComponentID: "bizcocho", ComponentType: entity.ComponentSheet, Quantity: dec("1"), Unit: "un"},
		},
		IsActive: true,
	}
	s.products["torta"] = entity.Product{
		ID: "torta", Name: "Torta de vainilla", Price: dec("30"),
		TechnicalSheetID: "torta-final", IsActive: true,
	}
	s.products["cafe"] = entity.Product{
		ID: "cafe", Name: "Café americano", Price: dec("2.50"),
		StockQuantity: dec("10"), IsActive: true,
	}
	return s
}

func buildUseCase(s *store) (*orders.PlaceOrderUseCase, *fakeOrderRepo) {
	orderRepo := &fakeOrderRepo{s: s}
	uc := orders.NewPlaceOrderUseCase(
		&fakeTxRunner{s: s, orderRepo: orderRepo},
		&fakeProductRepo{s: s},
		&fakeSheetRepo{s: s},
		&fakeSupplyRepo{s: s},
	)
	return uc, orderRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CheckAvailability
// ──────────────────────────────────────────────────────────────────────────────

// 4 tortas x 200g = 800g contra 1 kg de harina: alcanza.
func TestCheckAvailability_Alcanza(t *testing.T) {
	uc, _ := buildUseCase(fixture())

	out, err := uc.CheckAvailability(context.Background(), []dto.OrderItemDTO{
		{ProductID: "torta", Quantity: dec("4")},
	})
	require.NoError(t, err)
	assert.True(t, out.Available)
	assert.Empty(t, out.Reason)
}

// 6 tortas x 200g = 1.2 kg contra 1 kg: falta harina y el motivo lo nombra.
func TestCheckAvailability_FaltaInsumo(t *testing.T) {
	uc, _ := buildUseCase(fixture())

	out, err := uc.CheckAvailability(context.Background(), []dto.OrderItemDTO{
		{ProductID: "torta", Quantity: dec("6")},
	})
	require.NoError(t, err)
	assert.False(t, out.Available)
	assert.Contains(t, out.Reason, "Harina")
	assert.Contains(t, out.Reason, "1.2")
}

// El chequeo es de solo lectura: dos llamadas seguidas dan lo mismo y el
// stock no cambia.
func TestCheckAvailability_EsIdempotente(t *testing.T) {
	s := fixture()
	uc, _ := buildUseCase(s)
	items := []dto.OrderItemDTO{{ProductID: "torta", Quantity: dec("4")}}

	first, err := uc.CheckAvailability(context.Background(), items)
	require.NoError(t, err)
	second, err := uc.CheckAvailability(context.Background(), items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, s.supplies["harina"].Stock.Equal(dec("1")), "el chequeo no debe escribir")
}

// Producto inexistente en el catálogo aborta con ErrNotFound.
func TestCheckAvailability_ProductoInexistente(t *testing.T) {
	uc, _ := buildUseCase(fixture())

	_, err := uc.CheckAvailability(context.Background(), []dto.OrderItemDTO{
		{ProductID: "fantasma", Quantity: dec("1")},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cantidad cero o negativa es entrada inválida.
func TestCheckAvailability_CantidadInvalida(t *testing.T) {
	uc, _ := buildUseCase(fixture())

	_, err := uc.CheckAvailability(context.Background(), []dto.OrderItemDTO{
		{ProductID: "torta", Quantity: dec("0")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CheckAvailability(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Place
// ──────────────────────────────────────────────────────────────────────────────

// Pedido válido: descuenta harina vía la ficha anidada, descuenta stock
// propio del café y persiste el pedido con snapshots de nombre y precio.
func TestPlace_DescuentaYPersiste(t *testing.T) {
	s := fixture()
	uc, _ := buildUseCase(s)

	out, err := uc.Place(context.Background(), dto.PlaceOrderRequest{
		CustomerName: "Ana",
		Items: []dto.OrderItemDTO{
			{ProductID: "torta", Quantity: dec("4")},
			{ProductID: "cafe", Quantity: dec("2")},
		},
		Total: dec("125"),
	})
	require.NoError(t, err)

	// 1 kg - 0.8 kg = 0.2 kg de harina
	assert.True(t, s.supplies["harina"].Stock.Equal(dec("0.2")),
		"esperaba 0.2 kg de harina, quedó %s", s.supplies["harina"].Stock)
	// 10 - 2 cafés
	assert.True(t, s.products["cafe"].StockQuantity.Equal(dec("8")))
	// La torta dirigida por ficha no toca su stock propio
	assert.True(t, s.products["torta"].StockQuantity.IsZero())

	require.Len(t, s.orders, 1)
	stored := s.orders[out.ID]
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.Equal(t, "Ana", stored.CustomerName)
	assert.Contains(t, stored.OrderNumber, "PED-")
	require.Len(t, stored.Items, 2)
	// Snapshot de catálogo cuando la línea no trae nombre ni precio
	assert.Equal(t, "Torta de vainilla", stored.Items[0].ProductName)
	assert.True(t, stored.Items[1].UnitPrice.Equal(dec("2.50")))
}

// Faltante: el pedido se rechaza con ErrInsufficientStock y nada se escribe.
func TestPlace_Faltante_NoEscribeNada(t *testing.T) {
	s := fixture()
	uc, _ := buildUseCase(s)

	_, err := uc.Place(context.Background(), dto.PlaceOrderRequest{
		CustomerName: "Ana",
		Items:        []dto.OrderItemDTO{{ProductID: "torta", Quantity: dec("6")}},
		Total:        dec("180"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortage *orders.ShortageError
	require.ErrorAs(t, err, &shortage)
	assert.Equal(t, "Harina", shortage.Name)

	assert.True(t, s.supplies["harina"].Stock.Equal(dec("1")), "el stock no debe cambiar")
	assert.Empty(t, s.orders, "no debe quedar pedido huérfano")
}

// Atomicidad: si el insert del pedido falla después de descontar stock, el
// rollback deja el inventario intacto.
func TestPlace_FalloDeInsert_RevierteDescuentos(t *testing.T) {
	s := fixture()
	uc, orderRepo := buildUseCase(s)
	orderRepo.failCreate = true

	_, err := uc.Place(context.Background(), dto.PlaceOrderRequest{
		CustomerName: "Ana",
		Items:        []dto.OrderItemDTO{{ProductID: "torta", Quantity: dec("4")}},
		Total:        dec("120"),
	})
	require.Error(t, err)

	assert.True(t, s.supplies["harina"].Stock.Equal(dec("1")),
		"el rollback debe restaurar la harina, quedó %s", s.supplies["harina"].Stock)
	assert.Empty(t, s.orders)
}

// Ciclo de fichas: el pedido se rechaza con ErrCyclicSheet.
func TestPlace_CicloDeFichas(t *testing.T) {
	s := fixture()
	a := s.sheets["torta-final"]
	a.Components = []entity.Component{
		{ComponentID: "ciclo", ComponentType: entity.ComponentSheet, Quantity: dec("1")},
	}
	s.sheets["torta-final"] = a
	s.sheets["ciclo"] = entity.TechnicalSheet{
		ID: "ciclo", Name: "Ciclo", Kind: entity.SheetKindBase,
		Components: []entity.Component{
			{ComponentID: "torta-final", ComponentType: entity.ComponentSheet, Quantity: dec("1")},
		},
		IsActive: true,
	}
	uc, _ := buildUseCase(s)

	_, err := uc.Place(context.Background(), dto.PlaceOrderRequest{
		CustomerName: "Ana",
		Items:        []dto.OrderItemDTO{{ProductID: "torta", Quantity: dec("1")}},
		Total:        dec("30"),
	})
	assert.ErrorIs(t, err, domain.ErrCyclicSheet)
	assert.Empty(t, s.orders)
}

// Ficha referenciada borrada físicamente: la línea no consume inventario
// pero el pedido se crea igual.
func TestPlace_FichaBorrada_NoConsume(t *testing.T) {
	s := fixture()
	delete(s.sheets, "torta-final")
	uc, _ := buildUseCase(s)

	out, err := uc.Place(context.Background(), dto.PlaceOrderRequest{
		CustomerName: "Ana",
		Items:        []dto.OrderItemDTO{{ProductID: "torta", Quantity: dec("2")}},
		Total:        dec("60"),
	})
	require.NoError(t, err)

	assert.True(t, s.supplies["harina"].Stock.Equal(dec("1")))
	assert.Len(t, s.orders, 1)
	assert.Equal(t, entity.StatusPending, out.Status)
}

// Total negativo es entrada inválida.
func TestPlace_TotalNegativo(t *testing.T) {
	uc, _ := buildUseCase(fixture())

	_, err := uc.Place(context.Background(), dto.PlaceOrderRequest{
		CustomerName: "Ana",
		Items:        []dto.OrderItemDTO{{ProductID: "cafe", Quantity: dec("1")}},
		Total:        dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStatus (ciclo de estados)
// ──────────────────────────────────────────────────────────────────────────────

func seedOrder(s *store, status string) {
	s.orders["o1"] = entity.Order{
		ID: "o1", OrderNumber: "PED-1", CustomerName: "Ana",
		Total: dec("30"), Status: status,
	}
}

func TestUpdateStatus_TransicionValida(t *testing.T) {
	s := fixture()
	seedOrder(s, entity.StatusPending)
	uc := orders.NewOrderUseCase(&fakeOrderRepo{s: s})

	out, err := uc.UpdateStatus("o1", entity.StatusInPreparation)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInPreparation, out.Status)
	assert.Equal(t, entity.StatusInPreparation, s.orders["o1"].Status)
}

func TestUpdateStatus_TransicionInvalida(t *testing.T) {
	s := fixture()
	seedOrder(s, entity.StatusPending)
	uc := orders.NewOrderUseCase(&fakeOrderRepo{s: s})

	_, err := uc.UpdateStatus("o1", entity.StatusDelivered)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.StatusPending, s.orders["o1"].Status, "el estado no debe cambiar")
}

func TestUpdateStatus_EstadoTerminal(t *testing.T) {
	s := fixture()
	seedOrder(s, entity.StatusDelivered)
	uc := orders.NewOrderUseCase(&fakeOrderRepo{s: s})

	_, err := uc.UpdateStatus("o1", entity.StatusCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Cancelar NO repone el inventario consumido al crear el pedido.
func TestUpdateStatus_CancelarNoReponeStock(t *testing.T) {
	s := fixture()
	placeUC, _ := buildUseCase(s)

	out, err := placeUC.Place(context.Background(), dto.PlaceOrderRequest{
		CustomerName: "Ana",
		Items:        []dto.OrderItemDTO{{ProductID: "torta", Quantity: dec("4")}},
		Total:        dec("120"),
	})
	require.NoError(t, err)
	require.True(t, s.supplies["harina"].Stock.Equal(dec("0.2")))

	uc := orders.NewOrderUseCase(&fakeOrderRepo{s: s})
	_, err = uc.UpdateStatus(out.ID, entity.StatusCancelled)
	require.NoError(t, err)

	assert.True(t, s.supplies["harina"].Stock.Equal(dec("0.2")),
		"cancelar no repone insumos")
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	s := fixture()
	seedOrder(s, entity.StatusPending)
	uc := orders.NewOrderUseCase(&fakeOrderRepo{s: s})

	_, err := uc.UpdateStatus("o1", "enviado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
