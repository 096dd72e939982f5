package model

// Production is a batch of work done by one staff member. TotalSalary is
// derived from the items at creation and never updated independently.
// Settled flips false to true once and is never reversed.
type Production struct {
	Model
	Description *string          `json:"description"`
	StaffID     uint             `gorm:"index;not null" json:"staff_id"`
	TotalSalary float64          `gorm:"not null" json:"total_salary"`
	Settled     bool             `gorm:"not null;default:false" json:"settled"`
	Items       []ProductionItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// ProductionItem is one line of a batch. Salary is the stored subtotal
// unit_price * count.
type ProductionItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UnitPrice    float64   `gorm:"not null" json:"unit_price" validate:"gte=0"`
	Count        int       `gorm:"not null" json:"count" validate:"gte=0"`
	Salary       float64   `gorm:"not null" json:"salary"`
	ClothingID   uint      `gorm:"index;not null" json:"clothing_id" validate:"required"`
	ProductionID uint      `gorm:"index;not null" json:"production_id"`
	Clothing     *Clothing `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
