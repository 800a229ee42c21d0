package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/application/usecase"
	"github.com/jhoicas/Pasteleria-api/internal/domain"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
)

func newSupplyUC() (*usecase.SupplyUseCase, *memSupplyRepo) {
	repo := &memSupplyRepo{supplies: make(map[string]entity.Supply)}
	return usecase.NewSupplyUseCase(repo), repo
}

func TestSupplyCreate_Valida(t *testing.T) {
	uc, repo := newSupplyUC()

	out, err := uc.Create(dto.CreateSupplyRequest{
		Name: "Harina de trigo", SKU: "HAR-001", Unit: entity.UnitKilogram,
		Stock: dec("25"), CostPerUnit: dec("1.80"), MinStock: dec("5"),
	})
	require.NoError(t, err)
	assert.True(t, out.IsActive)
	assert.False(t, out.BelowMinimum)
	assert.Len(t, repo.supplies, 1)

	// Unidad desconocida
	_, err = uc.Create(dto.CreateSupplyRequest{Name: "X", Unit: "lb"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Stock negativo
	_, err = uc.Create(dto.CreateSupplyRequest{Name: "X", Unit: entity.UnitKilogram, Stock: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una fila inválida rechaza el lote completo.
func TestSupplyCreateBatch_TodoONada(t *testing.T) {
	uc, repo := newSupplyUC()

	_, err := uc.CreateBatch(dto.CreateSuppliesBatchRequest{
		Supplies: []dto.CreateSupplyRequest{
			{Name: "Harina", Unit: entity.UnitKilogram, Stock: dec("5")},
			{Name: "", Unit: entity.UnitKilogram},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.supplies, "el lote inválido no debe persistir filas")

	out, err := uc.CreateBatch(dto.CreateSuppliesBatchRequest{
		Supplies: []dto.CreateSupplyRequest{
			{Name: "Harina", Unit: entity.UnitKilogram, Stock: dec("5")},
			{Name: "Azúcar", Unit: entity.UnitKilogram, Stock: dec("3")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Len(t, repo.supplies, 2)
}

// La búsqueda ignora mayúsculas y acentos.
func TestSupplyList_BusquedaSinAcentos(t *testing.T) {
	uc, _ := newSupplyUC()
	_, err := uc.Create(dto.CreateSupplyRequest{Name: "Azúcar refinada", Unit: entity.UnitKilogram})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateSupplyRequest{Name: "Harina", Unit: entity.UnitKilogram})
	require.NoError(t, err)

	out, err := uc.List(true, "azucar")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Azúcar refinada", out.Supplies[0].Name)
}

// Archivados quedan fuera del listado activo pero siguen recuperables.
func TestSupplyArchive_BorradoLogico(t *testing.T) {
	uc, _ := newSupplyUC()
	created, err := uc.Create(dto.CreateSupplyRequest{Name: "Cacao", Unit: entity.UnitKilogram})
	require.NoError(t, err)

	require.NoError(t, uc.Archive(created.ID))

	active, err := uc.List(true, "")
	require.NoError(t, err)
	assert.Equal(t, 0, active.Total)

	all, err := uc.List(false, "")
	require.NoError(t, err)
	require.Equal(t, 1, all.Total)
	assert.False(t, all.Supplies[0].IsActive)

	require.NoError(t, uc.Reactivate(created.ID))
	active, err = uc.List(true, "")
	require.NoError(t, err)
	assert.Equal(t, 1, active.Total)
}

func TestSupplyLowStockReport(t *testing.T) {
	uc, _ := newSupplyUC()
	_, err := uc.Create(dto.CreateSupplyRequest{
		Name: "Cacao", Unit: entity.UnitKilogram, Stock: dec("0.5"), MinStock: dec("1"),
	})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateSupplyRequest{
		Name: "Harina", Unit: entity.UnitKilogram, Stock: dec("20"), MinStock: dec("5"),
	})
	require.NoError(t, err)
	// Sin mínimo configurado nunca aparece en el reporte
	_, err = uc.Create(dto.CreateSupplyRequest{
		Name: "Sal", Unit: entity.UnitKilogram, Stock: dec("0"),
	})
	require.NoError(t, err)

	out, err := uc.LowStockReport()
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Cacao", out.Supplies[0].Name)
	assert.True(t, out.Supplies[0].BelowMinimum)
}
