// Package usecase contiene los casos de uso CRUD del catálogo: insumos,
// fichas técnicas y productos.
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

// ProductUseCase CRUD de productos del catálogo. Si el producto se vincula a
// una ficha técnica, esta debe existir y ser de tipo "final"; el costo de
// producción se deriva del costo total de la ficha.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	sheetRepo   repository.SheetRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, sheetRepo repository.SheetRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, sheetRepo: sheetRepo}
}

// resolveSheet valida la ficha vinculada y devuelve su costo (nil = sin ficha).
func (uc *ProductUseCase) resolveSheet(sheetID string) (*entity.TechnicalSheet, error) {
	if sheetID == "" {
		return nil, nil
	}
	sheet, err := uc.sheetRepo.GetByID(sheetID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	if sheet.Kind != entity.SheetKindFinal {
		return nil, domain.ErrInvalidInput
	}
	return sheet, nil
}

// Create da de alta un producto activo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.StockQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	sheet, err := uc.resolveSheet(in.TechnicalSheetID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Description:      in.Description,
		Price:            in.Price,
		Category:         in.Category,
		StockQuantity:    in.StockQuantity,
		TechnicalSheetID: in.TechnicalSheetID,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if sheet != nil {
		cost := sheet.TotalCost
		product.CostPrice = &cost
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edita un producto. TechnicalSheetID con string vacío desvincula la
// ficha y el producto vuelve a control de stock propio.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.StockQuantity != nil {
		if in.StockQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.StockQuantity = *in.StockQuantity
	}
	if in.TechnicalSheetID != nil {
		sheet, err := uc.resolveSheet(*in.TechnicalSheetID)
		if err != nil {
			return nil, err
		}
		product.TechnicalSheetID = *in.TechnicalSheetID
		if sheet != nil {
			cost := sheet.TotalCost
			product.CostPrice = &cost
		} else {
			product.CostPrice = nil
		}
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Archive marca el producto como inactivo (los pedidos históricos conservan
// su snapshot de nombre y precio).
func (uc *ProductUseCase) Archive(id string) error {
	return uc.productRepo.SetActive(id, false)
}

// Reactivate vuelve a activar un producto archivado.
func (uc *ProductUseCase) Reactivate(id string) error {
	return uc.productRepo.SetActive(id, true)
}

// GetByID devuelve un producto por id.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve productos con búsqueda por nombre/categoría insensible a
// acentos.
func (uc *ProductUseCase) List(onlyActive bool, search string) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Products: make([]dto.ProductResponse, 0, len(list))}
	for _, p := range list {
		if search != "" && !strutil.ContainsFold(p.Name, search) && !strutil.ContainsFold(p.Category, search) {
			continue
		}
		out.Products = append(out.Products, *toProductResponse(p))
	}
	out.Total = len(out.Products)
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		CostPrice:        p.CostPrice,
		Category:         p.Category,
		StockQuantity:    p.StockQuantity,
		TechnicalSheetID: p.TechnicalSheetID,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
