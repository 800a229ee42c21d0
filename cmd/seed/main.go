// seed puebla la base con datos de ejemplo para desarrollo: insumos,
// fichas técnicas (una base y una final anidada), productos, un usuario
// admin y un pedido de muestra.
//
// Uso: go run ./cmd/seed
// Requiere la misma configuración de BD que cmd/api (.env o variables).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/application/auth"
	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/application/orders"
	"github.com/jhoicas/Pasteleria-api/internal/application/usecase"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Pasteleria-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	supplyRepo := postgres.NewSupplyRepository(pool)
	sheetRepo := postgres.NewSheetRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	supplyUC := usecase.NewSupplyUseCase(supplyRepo)
	sheetUC := usecase.NewSheetUseCase(sheetRepo, supplyRepo)
	productUC := usecase.NewProductUseCase(productRepo, sheetRepo)
	placeOrderUC := orders.NewPlaceOrderUseCase(txRunner, productRepo, sheetRepo, supplyRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Insumos en lote, como lo haría la pantalla de importación
	supplies, err := supplyUC.CreateBatch(dto.CreateSuppliesBatchRequest{
		Supplies: []dto.CreateSupplyRequest{
			{Name: "Harina de trigo", SKU: "HAR-001", Unit: entity.UnitKilogram, Stock: dec("25"), CostPerUnit: dec("1.80"), Supplier: "Molinos del Sur", MinStock: dec("5")},
			{Name: "Azúcar refinada", SKU: "AZU-001", Unit: entity.UnitKilogram, Stock: dec("18"), CostPerUnit: dec("1.20"), Supplier: "Dulcera Central", MinStock: dec("4")},
			{Name: "Mantequilla", SKU: "MAN-001", Unit: entity.UnitKilogram, Stock: dec("6"), CostPerUnit: dec("7.50"), Supplier: "Lácteos La Pradera", MinStock: dec("2")},
			{Name: "Cacao en polvo", SKU: "CAC-001", Unit: entity.UnitKilogram, Stock: dec("3"), CostPerUnit: dec("12.00"), Supplier: "Cacaotera Andina", MinStock: dec("1")},
			{Name: "Leche entera", SKU: "LEC-001", Unit: entity.UnitLiter, Stock: dec("12"), CostPerUnit: dec("0.95"), Supplier: "Lácteos La Pradera", MinStock: dec("3")},
			{Name: "Huevos", SKU: "HUE-001", Unit: entity.UnitPiece, Stock: dec("120"), CostPerUnit: dec("0.18"), Supplier: "Granja El Amanecer", MinStock: dec("30")},
		},
	})
	if err != nil {
		fail("crear insumos", err)
	}
	byName := make(map[string]string, len(supplies))
	for _, s := range supplies {
		byName[s.Name] = s.ID
	}

	// Ficha base: bizcocho de chocolate (sub-receta)
	base, err := sheetUC.Create(dto.CreateSheetRequest{
		Name:  "Bizcocho de chocolate",
		Kind:  entity.SheetKindBase,
		Yield: "1000g",
		Steps: "Batir mantequilla y azúcar, incorporar huevos, tamizar secos, hornear 40 min a 170°C.",
		Components: []dto.ComponentDTO{
			{ComponentID: byName["Harina de trigo"], ComponentName: "Harina de trigo", ComponentType: entity.ComponentSupply, Quantity: dec("350"), Unit: "g"},
			{ComponentID: byName["Azúcar refinada"], ComponentName: "Azúcar refinada", ComponentType: entity.ComponentSupply, Quantity: dec("300"), Unit: "g"},
			{ComponentID: byName["Cacao en polvo"], ComponentName: "Cacao en polvo", ComponentType: entity.ComponentSupply, Quantity: dec("80"), Unit: "g"},
			{ComponentID: byName["Mantequilla"], ComponentName: "Mantequilla", ComponentType: entity.ComponentSupply, Quantity: dec("200"), Unit: "g"},
			{ComponentID: byName["Huevos"], ComponentName: "Huevos", ComponentType: entity.ComponentSupply, Quantity: dec("5"), Unit: "un"},
		},
		MarkupPct: dec("100"),
	})
	if err != nil {
		fail("crear ficha base", err)
	}

	// Ficha final: torta completa (referencia a la base + insumos propios)
	final, err := sheetUC.Create(dto.CreateSheetRequest{
		Name:  "Torta de chocolate",
		Kind:  entity.SheetKindFinal,
		Yield: "1 torta",
		Steps: "Armar con dos capas de bizcocho, bañar con ganache de cacao y leche.",
		Components: []dto.ComponentDTO{
			{ComponentID: base.ID, ComponentName: base.Name, ComponentType: entity.ComponentSheet, Quantity: dec("1"), Unit: "un"},
			{ComponentID: byName["Cacao en polvo"], ComponentName: "Cacao en polvo", ComponentType: entity.ComponentSupply, Quantity: dec("50"), Unit: "g"},
			{ComponentID: byName["Leche entera"], ComponentName: "Leche entera", ComponentType: entity.ComponentSupply, Quantity: dec("200"), Unit: "ml"},
		},
		MarkupPct: dec("120"),
	})
	if err != nil {
		fail("crear ficha final", err)
	}

	// Producto dirigido por ficha + producto de stock propio
	torta, err := productUC.Create(dto.CreateProductRequest{
		Name:             "Torta de chocolate",
		Description:      "Torta húmeda de chocolate, 12 porciones",
		Price:            dec("32.00"),
		Category:         "Tortas",
		TechnicalSheetID: final.ID,
	})
	if err != nil {
		fail("crear producto con ficha", err)
	}
	_, err = productUC.Create(dto.CreateProductRequest{
		Name:          "Café americano",
		Description:   "Taza 240ml",
		Price:         dec("2.50"),
		Category:      "Bebidas",
		StockQuantity: dec("100"),
	})
	if err != nil {
		fail("crear producto de stock propio", err)
	}

	// Usuario admin de desarrollo
	_, err = authUC.RegisterUser(dto.RegisterRequest{
		Email:    "admin@pasteleria.local",
		Password: "admin123456",
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		fail("crear usuario admin", err)
	}

	// Pedido de muestra: descuenta insumos vía la ficha final
	order, err := placeOrderUC.Place(ctx, dto.PlaceOrderRequest{
		CustomerName: "María Fernández",
		Items: []dto.OrderItemDTO{
			{ProductID: torta.ID, Quantity: dec("1")},
		},
		Total: dec("32.00"),
	})
	if err != nil {
		fail("crear pedido de muestra", err)
	}

	fmt.Printf("Seed completo: %d insumos, 2 fichas, 2 productos, pedido %s\n",
		len(supplies), order.OrderNumber)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
