package models

// Medicine represents a catalog entry for a branded medication.
type Medicine struct {
	BaseModel
	Name                string   `gorm:"size:100;not null" json:"name"`
	Description         string   `gorm:"type:text;not null" json:"description"`
	Usage               string   `gorm:"type:text" json:"usage"`
	Mechanism           string   `gorm:"type:text" json:"mechanism"`
	SideEffects         string   `gorm:"type:text" json:"-"` // comma-delimited, exposed as a parsed list
	Price               float64  `gorm:"not null" json:"price"`
	Rating              *float64 `json:"rating"` // derived mean of review ratings, nil until reviewed
	Manufacturer        string   `gorm:"size:100" json:"manufacturer"`
	ChemicalComposition string   `gorm:"size:200" json:"chemical_composition"`
	ImageURL            string   `gorm:"size:255" json:"image_url"`

	// Relations (not always preloaded)
	Alternatives []GenericAlternative `gorm:"foreignKey:MedicineID" json:"-"`
	Reviews      []Review             `gorm:"foreignKey:MedicineID" json:"-"`
	FAQs         []FAQ                `gorm:"foreignKey:MedicineID" json:"-"`
}

// GenericAlternative is a substitute medication linked to a branded Medicine.
type GenericAlternative struct {
	BaseModel
	MedicineID   string   `gorm:"type:varchar(36);not null;index" json:"medicine_id"`
	Name         string   `gorm:"size:100;not null" json:"name"`
	Price        float64  `gorm:"not null" json:"price"`
	Discount     *int     `json:"discount"` // percentage
	Rating       *float64 `json:"rating"`
	Manufacturer string   `gorm:"size:100" json:"manufacturer"`
	ImageURL     string   `gorm:"size:255" json:"image_url"`
	Availability string   `gorm:"size:20" json:"availability"` // "In Stock", "Available"
}
