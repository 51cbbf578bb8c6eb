package repository

import (
	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// TrimRepository handles database operations for the Trim entity
type TrimRepository struct {
	db *gorm.DB
}

func NewTrimRepository(db *gorm.DB) *TrimRepository {
	return &TrimRepository{db: db}
}

// GetTrimsByModel resolves the model by name and returns its trims.
func (r *TrimRepository) GetTrimsByModel(modelName string) ([]models.Trim, error) {
	var model models.Model
	if err := r.db.Order("id").Where("name = ?", modelName).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	trims := make([]models.Trim, 0)
	if err := r.db.Where("model_id = ?", model.ID).Find(&trims).Error; err != nil {
		return nil, err
	}
	return trims, nil
}

// CreateTrim inserts a trim under the named model. The model must exist.
func (r *TrimRepository) CreateTrim(modelName, trimName string) (*models.Trim, error) {
	var model models.Model
	if err := r.db.Order("id").Where("name = ?", modelName).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	trim := models.Trim{Name: trimName, ModelID: model.ID}
	if err := r.db.Create(&trim).Error; err != nil {
		return nil, err
	}
	return &trim, nil
}
