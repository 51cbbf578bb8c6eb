package repository

import (
	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// GenerationRepository handles database operations for the Generation entity
type GenerationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// GetGenerationsByModel resolves the model by name and returns its generations.
func (r *GenerationRepository) GetGenerationsByModel(modelName string) ([]models.Generation, error) {
	var model models.Model
	if err := r.db.Order("id").Where("name = ?", modelName).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	generations := make([]models.Generation, 0)
	if err := r.db.Where("model_id = ?", model.ID).Find(&generations).Error; err != nil {
		return nil, err
	}
	return generations, nil
}

// CreateGeneration inserts a generation under the named model. The model must exist.
func (r *GenerationRepository) CreateGeneration(modelName, generationName string) (*models.Generation, error) {
	var model models.Model
	if err := r.db.Order("id").Where("name = ?", modelName).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	generation := models.Generation{Name: generationName, ModelID: model.ID}
	if err := r.db.Create(&generation).Error; err != nil {
		return nil, err
	}
	return &generation, nil
}
