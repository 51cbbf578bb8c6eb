package repository

import (
	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// ChassisCodeRepository handles database operations for the ChassisCode entity
type ChassisCodeRepository struct {
	db *gorm.DB
}

func NewChassisCodeRepository(db *gorm.DB) *ChassisCodeRepository {
	return &ChassisCodeRepository{db: db}
}

// GetChassisCodesByGeneration resolves the generation by name and returns its
// chassis codes.
func (r *ChassisCodeRepository) GetChassisCodesByGeneration(generationName string) ([]models.ChassisCode, error) {
	var generation models.Generation
	if err := r.db.Order("id").Where("name = ?", generationName).First(&generation).Error; err != nil {
		return nil, notFound(err)
	}
	codes := make([]models.ChassisCode, 0)
	if err := r.db.Where("generation_id = ?", generation.ID).Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// CreateChassisCode inserts a chassis code under the generation resolved
// within the named model. Both the model and the generation must exist.
func (r *ChassisCodeRepository) CreateChassisCode(modelName, generationName, chassisCodeName string) (*models.ChassisCode, error) {
	var model models.Model
	if err := r.db.Order("id").Where("name = ?", modelName).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	var generation models.Generation
	if err := r.db.Order("id").Where("model_id = ? AND name = ?", model.ID, generationName).First(&generation).Error; err != nil {
		return nil, notFound(err)
	}
	code := models.ChassisCode{Name: chassisCodeName, GenerationID: generation.ID}
	if err := r.db.Create(&code).Error; err != nil {
		return nil, err
	}
	return &code, nil
}
