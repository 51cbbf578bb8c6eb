package repository

import (
	"errors"

	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// TransmissionSpec carries the attributes of a new or referenced transmission.
type TransmissionSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TransmissionRepository handles database operations for the Transmission entity
type TransmissionRepository struct {
	db *gorm.DB
}

func NewTransmissionRepository(db *gorm.DB) *TransmissionRepository {
	return &TransmissionRepository{db: db}
}

func (r *TransmissionRepository) GetAllTransmissions() ([]models.Transmission, error) {
	transmissions := make([]models.Transmission, 0)
	if err := r.db.Find(&transmissions).Error; err != nil {
		return nil, err
	}
	return transmissions, nil
}

func (r *TransmissionRepository) CreateTransmission(spec TransmissionSpec) (*models.Transmission, error) {
	transmission := models.Transmission{Name: spec.Name, Type: spec.Type}
	if err := r.db.Create(&transmission).Error; err != nil {
		return nil, err
	}
	return &transmission, nil
}

// UpdateTransmission replaces name and type of the transmission found by its
// old name. Unlike delete, update is strict: a missing row is ErrNotFound.
func (r *TransmissionRepository) UpdateTransmission(oldName string, spec TransmissionSpec) (*models.Transmission, error) {
	var transmission models.Transmission
	if err := r.db.Order("id").Where("name = ?", oldName).First(&transmission).Error; err != nil {
		return nil, notFound(err)
	}
	transmission.Name = spec.Name
	transmission.Type = spec.Type
	if err := r.db.Save(&transmission).Error; err != nil {
		return nil, err
	}
	return &transmission, nil
}

// DeleteTransmission removes the transmission by name. Deleting a name that
// does not exist is a silent no-op; the delete contract is idempotent.
func (r *TransmissionRepository) DeleteTransmission(name string) error {
	var transmission models.Transmission
	err := r.db.Order("id").Where("name = ?", name).First(&transmission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.db.Delete(&transmission).Error
}
