package repository

import (
	"errors"

	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// CarSpec is the body of a car-creation request. Equipment entries are
// resolved against existing rows by name before anything is inserted.
type CarSpec struct {
	Year          int                `json:"year"`
	Weight        int                `json:"weight"`
	Length        float64            `json:"length"`
	Width         float64            `json:"width"`
	Engines       []EngineSpec       `json:"engines"`
	Transmissions []TransmissionSpec `json:"transmissions"`
	BodyStyles    []BodyStyleSpec    `json:"bodystyles"`
}

// CarRepository handles database operations for the Car entity
type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

// GetCarsByTrim resolves the trim by name and returns its cars with
// equipment preloaded.
func (r *CarRepository) GetCarsByTrim(trimName string) ([]models.Car, error) {
	var trim models.Trim
	if err := r.db.Order("id").Where("name = ?", trimName).First(&trim).Error; err != nil {
		return nil, notFound(err)
	}
	cars := make([]models.Car, 0)
	err := r.db.Preload("Engines").Preload("Transmissions").Preload("BodyStyles").
		Where("trim_id = ?", trim.ID).Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

// CreateCar builds a car from the spec, wiring the optional trim and chassis
// code links and deduplicating equipment by name. Trim and chassis code names
// that resolve to nothing leave the corresponding link null rather than
// failing; the links are optional. The car, any novel equipment rows, and all
// join rows are persisted in one transaction.
func (r *CarRepository) CreateCar(trimName, chassisCodeName string, spec CarSpec) (*models.Car, error) {
	car := models.Car{
		Year:   spec.Year,
		Weight: spec.Weight,
		Length: spec.Length,
		Width:  spec.Width,
	}

	var trim models.Trim
	err := r.db.Order("id").Where("name = ?", trimName).First(&trim).Error
	if err == nil {
		car.TrimID = &trim.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var code models.ChassisCode
	err = r.db.Order("id").Where("name = ?", chassisCodeName).First(&code).Error
	if err == nil {
		car.ChassisCodeID = &code.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	resolver := NewEquipmentResolver(r.db)
	for _, engineSpec := range spec.Engines {
		engine, err := resolver.ResolveEngine(engineSpec)
		if err != nil {
			return nil, err
		}
		car.Engines = append(car.Engines, *engine)
	}
	for _, transmissionSpec := range spec.Transmissions {
		transmission, err := resolver.ResolveTransmission(transmissionSpec)
		if err != nil {
			return nil, err
		}
		car.Transmissions = append(car.Transmissions, *transmission)
	}
	for _, styleSpec := range spec.BodyStyles {
		style, err := resolver.ResolveBodyStyle(styleSpec)
		if err != nil {
			return nil, err
		}
		car.BodyStyles = append(car.BodyStyles, *style)
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&car).Error
	})
	if err != nil {
		return nil, err
	}
	return &car, nil
}
