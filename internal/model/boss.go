package model

// Boss is a supplier contact owned by one user. Clothing items hang off a
// boss, so clothing ownership is resolved through this table.
type Boss struct {
	Model
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	PhoneNumber string  `gorm:"type:varchar(20);not null" json:"phone_number" validate:"required"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	UserID      uint    `gorm:"index;not null" json:"user_id"`

	Clothing []Clothing `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
