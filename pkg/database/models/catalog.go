package models

// Make represents a vehicle manufacturer
type Make struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"index;not null" json:"name"`

	// Relationships
	Models []Model `gorm:"foreignKey:MakeID" json:"-"`
}

// Model represents a named vehicle line within a Make
type Model struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"index;not null" json:"name"`
	MakeID uint   `gorm:"index;not null" json:"make_id"`

	// Relationships
	Trims       []Trim       `gorm:"foreignKey:ModelID" json:"-"`
	Generations []Generation `gorm:"foreignKey:ModelID" json:"-"`
}

// Generation represents a named production era of a Model
type Generation struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"index;not null" json:"name"`
	ModelID uint   `gorm:"index;not null" json:"model_id"`

	// Relationships
	ChassisCodes []ChassisCode `gorm:"foreignKey:GenerationID" json:"-"`
}

// ChassisCode represents a manufacturer-assigned identifier for a Generation
type ChassisCode struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"index;not null" json:"name"`
	GenerationID uint   `gorm:"index;not null" json:"generation_id"`

	// Relationships
	Cars []Car `gorm:"foreignKey:ChassisCodeID" json:"-"`
}

// Trim represents a named configuration level of a Model
type Trim struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"index;not null" json:"name"`
	ModelID uint   `gorm:"index;not null" json:"model_id"`

	// Relationships
	Cars []Car `gorm:"foreignKey:TrimID" json:"-"`
}

// Car represents a concrete year/trim/chassis-code configuration.
// Trim and ChassisCode links are optional; equipment links are
// many-to-many through plain two-column join tables.
type Car struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Year          int     `gorm:"not null" json:"year"`
	Weight        int     `gorm:"not null" json:"weight"`
	Length        float64 `gorm:"not null" json:"length"`
	Width         float64 `gorm:"not null" json:"width"`
	TrimID        *uint   `gorm:"index" json:"trim_id"`
	ChassisCodeID *uint   `gorm:"index" json:"chassis_code_id"`

	// Relationships
	Engines       []Engine       `gorm:"many2many:car_engines" json:"engines,omitempty"`
	Transmissions []Transmission `gorm:"many2many:car_transmissions" json:"transmissions,omitempty"`
	BodyStyles    []BodyStyle    `gorm:"many2many:car_body_styles" json:"bodystyles,omitempty"`
}
