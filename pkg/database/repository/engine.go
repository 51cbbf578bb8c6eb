package repository

import (
	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// EngineSpec carries the attributes of a new or referenced engine.
type EngineSpec struct {
	Name          string  `json:"name"`
	HP            int     `json:"hp"`
	TQ            int     `json:"tq"`
	Aspiration    string  `json:"aspiration"`
	Displacement  float64 `json:"displacement"`
	Cylinders     int     `json:"cylinders"`
	Configuration string  `json:"configuration"`
	Redline       int     `json:"redline"`
	DryWeight     int     `json:"dry_weight"`
}

// EngineRepository handles database operations for the Engine entity
type EngineRepository struct {
	db *gorm.DB
}

func NewEngineRepository(db *gorm.DB) *EngineRepository {
	return &EngineRepository{db: db}
}

func (r *EngineRepository) GetAllEngines() ([]models.Engine, error) {
	engines := make([]models.Engine, 0)
	if err := r.db.Find(&engines).Error; err != nil {
		return nil, err
	}
	return engines, nil
}

func (r *EngineRepository) CreateEngine(spec EngineSpec) (*models.Engine, error) {
	engine := engineFromSpec(spec)
	if err := r.db.Create(engine).Error; err != nil {
		return nil, err
	}
	return engine, nil
}

func engineFromSpec(spec EngineSpec) *models.Engine {
	return &models.Engine{
		Name:          spec.Name,
		HP:            spec.HP,
		TQ:            spec.TQ,
		Aspiration:    spec.Aspiration,
		Displacement:  spec.Displacement,
		Cylinders:     spec.Cylinders,
		Configuration: spec.Configuration,
		Redline:       spec.Redline,
		DryWeight:     spec.DryWeight,
	}
}
