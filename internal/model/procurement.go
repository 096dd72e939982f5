package model

// Procurement records incoming stock for one user. Its items are written
// atomically with the parent and are immutable afterwards; deleting the
// parent cascades to them.
type Procurement struct {
	Model
	Description *string           `json:"description"`
	UserID      uint              `gorm:"index;not null" json:"user_id"`
	Items       []ProcurementItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// ProcurementItem is one line of a procurement. Item rows carry no timestamp
// of their own.
type ProcurementItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Amount        int       `gorm:"not null" json:"amount" validate:"gte=0"`
	ClothingID    uint      `gorm:"index;not null" json:"clothing_id" validate:"required"`
	ProcurementID uint      `gorm:"index;not null" json:"procurement_id"`
	Clothing      *Clothing `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
