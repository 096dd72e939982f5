package model

// Clothing is a SKU supplied by a boss. Price is fixed at creation; the
// update path only touches name, description and image.
type Clothing struct {
	Model
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price       float64 `gorm:"not null" json:"price" validate:"gte=0"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	BossID      uint    `gorm:"index;not null" json:"boss_id" validate:"required"`
}

func (Clothing) TableName() string {
	return "clothing"
}
