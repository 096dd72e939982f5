package model

// Shipment records outgoing stock. Same shape as Procurement.
type Shipment struct {
	Model
	Description *string        `json:"description"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	Items       []ShipmentItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

type ShipmentItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Amount     int       `gorm:"not null" json:"amount" validate:"gte=0"`
	ClothingID uint      `gorm:"index;not null" json:"clothing_id" validate:"required"`
	ShipmentID uint      `gorm:"index;not null" json:"shipment_id"`
	Clothing   *Clothing `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
