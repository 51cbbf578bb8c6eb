package models

// Engine is a shared equipment record, deduplicated by name across cars
type Engine struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"index;not null" json:"name"`
	HP            int     `json:"hp"`
	TQ            int     `json:"tq"`
	Aspiration    string  `json:"aspiration"` // NA | T | TT | SC-B | SC-C
	Displacement  float64 `json:"displacement"`
	Cylinders     int     `json:"cylinders"`
	Configuration string  `json:"configuration"`
	Redline       int     `json:"redline"`
	DryWeight     int     `json:"dry_weight"`

	// Relationships
	Cars []Car `gorm:"many2many:car_engines" json:"-"`
}

// Transmission is a shared equipment record, deduplicated by name across cars
type Transmission struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"index;not null" json:"name"`
	Type string `gorm:"not null" json:"type"`

	// Relationships
	Cars []Car `gorm:"many2many:car_transmissions" json:"-"`
}

// BodyStyle is a shared equipment record, deduplicated by name across cars
type BodyStyle struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"index;not null" json:"name"`

	// Relationships
	Cars []Car `gorm:"many2many:car_body_styles" json:"-"`
}
