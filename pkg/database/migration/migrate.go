package migration

import (
	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// RunMigration creates or updates the catalog schema. GORM also creates the
// car_engines, car_transmissions and car_body_styles join tables from the
// many2many tags on Car.
func RunMigration(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Make{},
		&models.Model{},
		&models.Generation{},
		&models.ChassisCode{},
		&models.Trim{},
		&models.Engine{},
		&models.Transmission{},
		&models.BodyStyle{},
		&models.Car{},
	)
}
