package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/domain"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
	"github.com/jhoicas/Pasteleria-api/pkg/strutil"
)

// SupplyUseCase CRUD de insumos: alta individual y por lote, edición,
// archivado lógico y reporte de stock bajo mínimo.
type SupplyUseCase struct {
	supplyRepo repository.SupplyRepository
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(supplyRepo repository.SupplyRepository) *SupplyUseCase {
	return &SupplyUseCase{supplyRepo: supplyRepo}
}

func buildSupply(in dto.CreateSupplyRequest, now time.Time) (*entity.Supply, error) {
	if in.Name == "" || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock.IsNegative() || in.CostPerUnit.IsNegative() || in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Supply{
		ID:               uuid.New().String(),
		Name:             in.Name,
		SKU:              in.SKU,
		Unit:             in.Unit,
		Stock:            in.Stock,
		CostPerUnit:      in.CostPerUnit,
		Supplier:         in.Supplier,
		MinStock:         in.MinStock,
		LastPurchaseDate: in.LastPurchaseDate,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Create da de alta un insumo activo.
func (uc *SupplyUseCase) Create(in dto.CreateSupplyRequest) (*dto.SupplyResponse, error) {
	supply, err := buildSupply(in, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.supplyRepo.Create(supply); err != nil {
		return nil, err
	}
	return toSupplyResponse(supply), nil
}

// CreateBatch da de alta varios insumos en una sola operación (pantalla de
// importación: el cliente parsea el CSV y envía las filas).
func (uc *SupplyUseCase) CreateBatch(in dto.CreateSuppliesBatchRequest) ([]dto.SupplyResponse, error) {
	if len(in.Supplies) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplies := make([]*entity.Supply, 0, len(in.Supplies))
	for _, row := range in.Supplies {
		supply, err := buildSupply(row, now)
		if err != nil {
			return nil, err
		}
		supplies = append(supplies, supply)
	}
	if err := uc.supplyRepo.CreateBatch(supplies); err != nil {
		return nil, err
	}
	out := make([]dto.SupplyResponse, 0, len(supplies))
	for _, s := range supplies {
		out = append(out, *toSupplyResponse(s))
	}
	return out, nil
}

// Update edita campos del insumo. Solo los campos presentes se modifican.
func (uc *SupplyUseCase) Update(id string, in dto.UpdateSupplyRequest) (*dto.SupplyResponse, error) {
	supply, err := uc.supplyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, nil
	}
	if in.Name != nil {
		supply.Name = *in.Name
	}
	if in.SKU != nil {
		supply.SKU = *in.SKU
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		supply.Unit = *in.Unit
	}
	if in.Stock != nil {
		if in.Stock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		supply.Stock = *in.Stock
	}
	if in.CostPerUnit != nil {
		supply.CostPerUnit = *in.CostPerUnit
	}
	if in.Supplier != nil {
		supply.Supplier = *in.Supplier
	}
	if in.MinStock != nil {
		supply.MinStock = *in.MinStock
	}
	if in.LastPurchaseDate != nil {
		supply.LastPurchaseDate = in.LastPurchaseDate
	}
	supply.UpdatedAt = time.Now()
	if err := uc.supplyRepo.Update(supply); err != nil {
		return nil, err
	}
	return toSupplyResponse(supply), nil
}

// Archive marca el insumo como inactivo (borrado lógico: las fichas que lo
// referencian siguen resolviendo).
func (uc *SupplyUseCase) Archive(id string) error {
	return uc.supplyRepo.SetActive(id, false)
}

// Reactivate vuelve a activar un insumo archivado.
func (uc *SupplyUseCase) Reactivate(id string) error {
	return uc.supplyRepo.SetActive(id, true)
}

// GetByID devuelve un insumo por id.
func (uc *SupplyUseCase) GetByID(id string) (*dto.SupplyResponse, error) {
	supply, err := uc.supplyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, nil
	}
	return toSupplyResponse(supply), nil
}

// List devuelve insumos, con filtro de búsqueda por nombre/SKU insensible a
// mayúsculas y acentos. onlyActive=true excluye los archivados.
func (uc *SupplyUseCase) List(onlyActive bool, search string) (*dto.SupplyListResponse, error) {
	list, err := uc.supplyRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := &dto.SupplyListResponse{Supplies: make([]dto.SupplyResponse, 0, len(list))}
	for _, s := range list {
		if search != "" && !strutil.ContainsFold(s.Name, search) && !strutil.ContainsFold(s.SKU, search) {
			continue
		}
		out.Supplies = append(out.Supplies, *toSupplyResponse(s))
	}
	out.Total = len(out.Supplies)
	return out, nil
}

// LowStockReport devuelve los insumos activos con stock por debajo del mínimo.
func (uc *SupplyUseCase) LowStockReport() (*dto.SupplyListResponse, error) {
	list, err := uc.supplyRepo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	out := &dto.SupplyListResponse{Supplies: make([]dto.SupplyResponse, 0, len(list)), Total: len(list)}
	for _, s := range list {
		out.Supplies = append(out.Supplies, *toSupplyResponse(s))
	}
	return out, nil
}

func toSupplyResponse(s *entity.Supply) *dto.SupplyResponse {
	return &dto.SupplyResponse{
		ID:               s.ID,
		Name:             s.Name,
		SKU:              s.SKU,
		Unit:             s.Unit,
		Stock:            s.Stock,
		CostPerUnit:      s.CostPerUnit,
		Supplier:         s.Supplier,
		MinStock:         s.MinStock,
		LastPurchaseDate: s.LastPurchaseDate,
		IsActive:         s.IsActive,
		BelowMinimum:     s.BelowMinimum(),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
