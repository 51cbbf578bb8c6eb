package repository

import (
	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// ModelRepository handles database operations for the Model entity
type ModelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

// GetModelByMakeAndName scopes the lookup to a single make.
func (r *ModelRepository) GetModelByMakeAndName(makeName, modelName string) (*models.Model, error) {
	var mk models.Make
	if err := r.db.Order("id").Where("name = ?", makeName).First(&mk).Error; err != nil {
		return nil, notFound(err)
	}
	var model models.Model
	if err := r.db.Order("id").Where("make_id = ? AND name = ?", mk.ID, modelName).First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	return &model, nil
}

// GetModelsByMake resolves the make by name and returns its models.
func (r *ModelRepository) GetModelsByMake(makeName string) ([]models.Model, error) {
	var mk models.Make
	if err := r.db.Order("id").Where("name = ?", makeName).First(&mk).Error; err != nil {
		return nil, notFound(err)
	}
	mods := make([]models.Model, 0)
	if err := r.db.Where("make_id = ?", mk.ID).Find(&mods).Error; err != nil {
		return nil, err
	}
	return mods, nil
}

// CreateModel inserts a model under the named make. The make must exist.
func (r *ModelRepository) CreateModel(makeName, modelName string) (*models.Model, error) {
	var mk models.Make
	if err := r.db.Order("id").Where("name = ?", makeName).First(&mk).Error; err != nil {
		return nil, notFound(err)
	}
	model := models.Model{Name: modelName, MakeID: mk.ID}
	if err := r.db.Create(&model).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

// DeleteModel removes the model and every trim attached to it. The cascade
// runs inside a single transaction so a failure cannot leave the model
// half-deleted. Cars referencing deleted trims keep their trim_id; the
// cascade stops one level down.
func (r *ModelRepository) DeleteModel(makeName, modelName string) error {
	model, err := r.GetModelByMakeAndName(makeName, modelName)
	if err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("model_id = ?", model.ID).Delete(&models.Trim{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Model{}, model.ID).Error
	})
}
