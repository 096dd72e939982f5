package model

// Staff is a worker owned by one user. Production batches hang off a staff
// member.
type Staff struct {
	Model
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	PhoneNumber string  `gorm:"type:varchar(20);not null" json:"phone_number" validate:"required"`
	Description *string `json:"description"`
	UserID      uint    `gorm:"index;not null" json:"user_id"`

	Productions []Production `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Staff) TableName() string {
	return "staff"
}
