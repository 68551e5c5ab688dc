package models

// FAQ is a question/answer entry. MedicineID is nullable: a nil value marks
// a general FAQ that is not scoped to any particular medicine and can be
// filtered by Category instead.
type FAQ struct {
	BaseModel
	MedicineID *string `gorm:"type:varchar(36);index" json:"medicine_id"`
	Category   string  `gorm:"size:50" json:"category"`
	Question   string  `gorm:"type:text;not null" json:"question"`
	Answer     string  `gorm:"type:text;not null" json:"answer"`
}
