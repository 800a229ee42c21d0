package orders

import (
	"context"

	"github.com/jhoicas/Pasteleria-api/internal/application/dto"
	"github.com/jhoicas/Pasteleria-api/internal/domain"
	"github.com/jhoicas/Pasteleria-api/internal/domain/entity"
	"github.com/jhoicas/Pasteleria-api/internal/domain/repository"
)

// ReceiptData datos que el generador PDF necesita para el comprobante.
type ReceiptData struct {
	Order        *entity.Order
	BusinessName string
}

// ReceiptUseCase genera el comprobante PDF de un pedido existente.
type ReceiptUseCase struct {
	orderRepo    repository.OrderRepository
	generator    ReceiptGenerator
	businessName string
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptGenerator, businessName string) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator, businessName: businessName}
}

// GetReceiptPDF devuelve los bytes del PDF del comprobante.
func (uc *ReceiptUseCase) GetReceiptPDF(ctx context.Context, orderID string) ([]byte, *dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, &ReceiptData{Order: order, BusinessName: uc.businessName})
	if err != nil {
		return nil, nil, err
	}
	return pdf, toOrderResponse(order), nil
}
