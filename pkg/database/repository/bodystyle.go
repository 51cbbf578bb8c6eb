package repository

import (
	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// BodyStyleSpec carries the attributes of a new or referenced body style.
type BodyStyleSpec struct {
	Name string `json:"name"`
}

// BodyStyleRepository handles database operations for the BodyStyle entity
type BodyStyleRepository struct {
	db *gorm.DB
}

func NewBodyStyleRepository(db *gorm.DB) *BodyStyleRepository {
	return &BodyStyleRepository{db: db}
}

func (r *BodyStyleRepository) GetAllBodyStyles() ([]models.BodyStyle, error) {
	styles := make([]models.BodyStyle, 0)
	if err := r.db.Find(&styles).Error; err != nil {
		return nil, err
	}
	return styles, nil
}

func (r *BodyStyleRepository) CreateBodyStyle(spec BodyStyleSpec) (*models.BodyStyle, error) {
	style := models.BodyStyle{Name: spec.Name}
	if err := r.db.Create(&style).Error; err != nil {
		return nil, err
	}
	return &style, nil
}
