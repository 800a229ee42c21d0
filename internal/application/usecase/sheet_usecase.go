package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/domain"
	"github.com/jhoicas/Pasteleria-api/internal/domain/bom"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
	"github.com/jhoicas/Pasteleria-api/pkg/strutil"
)

// SheetUseCase gestión de fichas técnicas. En cada alta/edición el servidor
// recalcula total_cost y suggested_price desde los componentes, con la misma
// conversión de unidades que usa el motor de pedidos al descontar stock.
type SheetUseCase struct {
	sheetRepo  repository.SheetRepository
	supplyRepo repository.SupplyRepository
}

// NewSheetUseCase construye el caso de uso.
func NewSheetUseCase(sheetRepo repository.SheetRepository, supplyRepo repository.SupplyRepository) *SheetUseCase {
	return &SheetUseCase{sheetRepo: sheetRepo, supplyRepo: supplyRepo}
}

// buildArena carga todas las fichas e insumos (incluidos archivados: las
// referencias históricas siguen costeando) para el cálculo de costos.
func (uc *SheetUseCase) buildArena() (*bom.Arena, error) {
	arena := bom.NewArena()
	sheets, err := uc.sheetRepo.List(false)
	if err != nil {
		return nil, err
	}
	for _, s := range sheets {
		arena.Sheets[s.ID] = s
	}
	supplies, err := uc.supplyRepo.List(false)
	if err != nil {
		return nil, err
	}
	for _, s := range supplies {
		arena.Supplies[s.ID] = s
	}
	return arena, nil
}

func componentsFromDTO(in []dto.ComponentDTO) ([]entity.Component, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	components := make([]entity.Component, 0, len(in))
	for _, c := range in {
		if c.ComponentID == "" || c.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if c.ComponentType != entity.ComponentSupply && c.ComponentType != entity.ComponentSheet {
			return nil, domain.ErrInvalidInput
		}
		components = append(components, entity.Component{
			ComponentID:   c.ComponentID,
			ComponentName: c.ComponentName,
			ComponentType: c.ComponentType,
			Quantity:      c.Quantity,
			Unit:          c.Unit,
		})
	}
	return components, nil
}

// Create da de alta una ficha técnica activa con costos recalculados.
func (uc *SheetUseCase) Create(in dto.CreateSheetRequest) (*dto.SheetResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.SheetKindBase && in.Kind != entity.SheetKindFinal {
		return nil, domain.ErrInvalidInput
	}
	components, err := componentsFromDTO(in.Components)
	if err != nil {
		return nil, err
	}
	arena, err := uc.buildArena()
	if err != nil {
		return nil, err
	}
	totalCost := bom.SheetCost(arena, components)
	now := time.Now()
	sheet := &entity.TechnicalSheet{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		Kind:           in.Kind,
		Components:     components,
		Steps:          in.Steps,
		Yield:          in.Yield,
		TotalCost:      totalCost,
		SuggestedPrice: bom.SuggestedPrice(totalCost, in.MarkupPct),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.sheetRepo.Create(sheet); err != nil {
		return nil, err
	}
	return toSheetResponse(sheet), nil
}

// Update edita una ficha y recalcula sus costos.
func (uc *SheetUseCase) Update(id string, in dto.UpdateSheetRequest) (*dto.SheetResponse, error) {
	sheet, err := uc.sheetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, nil
	}
	if in.Name != nil {
		sheet.Name = *in.Name
	}
	if in.Description != nil {
		sheet.Description = *in.Description
	}
	if in.Kind != nil {
		if *in.Kind != entity.SheetKindBase && *in.Kind != entity.SheetKindFinal {
			return nil, domain.ErrInvalidInput
		}
		sheet.Kind = *in.Kind
	}
	if in.Components != nil {
		components, err := componentsFromDTO(in.Components)
		if err != nil {
			return nil, err
		}
		sheet.Components = components
	}
	if in.Steps != nil {
		sheet.Steps = *in.Steps
	}
	if in.Yield != nil {
		sheet.Yield = *in.Yield
	}
	arena, err := uc.buildArena()
	if err != nil {
		return nil, err
	}
	sheet.TotalCost = bom.SheetCost(arena, sheet.Components)
	markup := decimal.NewFromInt(100)
	if in.MarkupPct != nil {
		markup = *in.MarkupPct
	}
	sheet.SuggestedPrice = bom.SuggestedPrice(sheet.TotalCost, markup)
	sheet.UpdatedAt = time.Now()
	if err := uc.sheetRepo.Update(sheet); err != nil {
		return nil, err
	}
	return toSheetResponse(sheet), nil
}

// CostPreview calcula costo y precio sugerido de una lista de componentes sin
// persistir nada (calculadora de precios).
func (uc *SheetUseCase) CostPreview(in dto.SheetCostPreviewRequest) (*dto.SheetCostPreviewResponse, error) {
	components, err := componentsFromDTO(in.Components)
	if err != nil {
		return nil, err
	}
	arena, err := uc.buildArena()
	if err != nil {
		return nil, err
	}
	totalCost := bom.SheetCost(arena, components)
	price := bom.SuggestedPrice(totalCost, in.MarkupPct)
	return &dto.SheetCostPreviewResponse{
		TotalCost:      totalCost,
		SuggestedPrice: price,
		Profit:         price.Sub(totalCost),
	}, nil
}

// Archive marca la ficha como inactiva; las referencias históricas (pedidos,
// fichas anidadas) siguen resolviendo.
func (uc *SheetUseCase) Archive(id string) error {
	return uc.sheetRepo.SetActive(id, false)
}

// Reactivate vuelve a activar una ficha archivada.
func (uc *SheetUseCase) Reactivate(id string) error {
	return uc.sheetRepo.SetActive(id, true)
}

// GetByID devuelve una ficha por id.
func (uc *SheetUseCase) GetByID(id string) (*dto.SheetResponse, error) {
	sheet, err := uc.sheetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, nil
	}
	return toSheetResponse(sheet), nil
}

// List devuelve fichas con búsqueda por nombre insensible a acentos.
func (uc *SheetUseCase) List(onlyActive bool, search string) (*dto.SheetListResponse, error) {
	list, err := uc.sheetRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := &dto.SheetListResponse{Sheets: make([]dto.SheetResponse, 0, len(list))}
	for _, s := range list {
		if search != "" && !strutil.ContainsFold(s.Name, search) {
			continue
		}
		out.Sheets = append(out.Sheets, *toSheetResponse(s))
	}
	out.Total = len(out.Sheets)
	return out, nil
}

func toSheetResponse(s *entity.TechnicalSheet) *dto.SheetResponse {
	components := make([]dto.ComponentDTO, 0, len(s.Components))
	for _, c := range s.Components {
		components = append(components, dto.ComponentDTO{
			ComponentID:   c.ComponentID,
			ComponentName: c.ComponentName,
			ComponentType: c.ComponentType,
			Quantity:      c.Quantity,
			Unit:          c.Unit,
		})
	}
	return &dto.SheetResponse{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		Kind:           s.Kind,
		Components:     components,
		Steps:          s.Steps,
		Yield:          s.Yield,
		TotalCost:      s.TotalCost,
		SuggestedPrice: s.SuggestedPrice,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
