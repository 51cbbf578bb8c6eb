package repository

import (
	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// MakeRepository handles database operations for the Make model
type MakeRepository struct {
	db *gorm.DB
}

func NewMakeRepository(db *gorm.DB) *MakeRepository {
	return &MakeRepository{db: db}
}

func (r *MakeRepository) GetAllMakes() ([]models.Make, error) {
	makes := make([]models.Make, 0)
	if err := r.db.Find(&makes).Error; err != nil {
		return nil, err
	}
	return makes, nil
}

// GetMakeByName returns the first make matching name exactly. Names are not
// unique; lowest id wins when duplicates exist.
func (r *MakeRepository) GetMakeByName(name string) (*models.Make, error) {
	var mk models.Make
	if err := r.db.Order("id").Where("name = ?", name).First(&mk).Error; err != nil {
		return nil, notFound(err)
	}
	return &mk, nil
}

func (r *MakeRepository) CreateMake(name string) (*models.Make, error) {
	mk := models.Make{Name: name}
	if err := r.db.Create(&mk).Error; err != nil {
		return nil, err
	}
	return &mk, nil
}
