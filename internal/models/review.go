package models

// Review is a user rating for a medicine. UserID is nullable so that
// imported or anonymous reviews can exist without an account.
type Review struct {
	BaseModel
	MedicineID string  `gorm:"type:varchar(36);not null;index" json:"medicine_id"`
	UserID     *string `gorm:"type:varchar(36)" json:"user_id"`
	Rating     int     `gorm:"not null" json:"rating"` // 1..5
	Comment    string  `gorm:"type:text" json:"comment"`
}
