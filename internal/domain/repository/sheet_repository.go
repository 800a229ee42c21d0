package repository

import "github.com/jhoicas/Pasteleria-api/internal/domain/entity"

// SheetRepository puerto de persistencia para fichas técnicas.
type SheetRepository interface {
	Create(sheet *entity.TechnicalSheet) error
	GetByID(id string) (*entity.TechnicalSheet, error)
	Update(sheet *entity.TechnicalSheet) error
	SetActive(id string, active bool) error
	List(onlyActive bool) ([]*entity.TechnicalSheet, error)
}
