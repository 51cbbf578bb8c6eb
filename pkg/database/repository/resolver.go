package repository

import (
	"errors"

	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// EquipmentResolver resolves equipment specs embedded in a car-creation
// request against the shared equipment tables. Lookup key is exact name
// match, first row wins; a miss materializes a new, not-yet-persisted record
// that is saved together with the car. Each spec entry is resolved
// independently, so two novel entries sharing a name inside one request
// produce two rows.
type EquipmentResolver struct {
	db *gorm.DB
}

func NewEquipmentResolver(db *gorm.DB) *EquipmentResolver {
	return &EquipmentResolver{db: db}
}

func (res *EquipmentResolver) ResolveEngine(spec EngineSpec) (*models.Engine, error) {
	var engine models.Engine
	err := res.db.Order("id").Where("name = ?", spec.Name).First(&engine).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return engineFromSpec(spec), nil
	}
	if err != nil {
		return nil, err
	}
	return &engine, nil
}

func (res *EquipmentResolver) ResolveTransmission(spec TransmissionSpec) (*models.Transmission, error) {
	var transmission models.Transmission
	err := res.db.Order("id").Where("name = ?", spec.Name).First(&transmission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Transmission{Name: spec.Name, Type: spec.Type}, nil
	}
	if err != nil {
		return nil, err
	}
	return &transmission, nil
}

func (res *EquipmentResolver) ResolveBodyStyle(spec BodyStyleSpec) (*models.BodyStyle, error) {
	var style models.BodyStyle
	err := res.db.Order("id").Where("name = ?", spec.Name).First(&style).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.BodyStyle{Name: spec.Name}, nil
	}
	if err != nil {
		return nil, err
	}
	return &style, nil
}
