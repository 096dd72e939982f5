package model

import "golang.org/x/crypto/bcrypt"

// User is the owning tenant of everything else. Ownership chains back to a
// user either directly (boss, staff, procurement, shipment) or through a
// linking entity (clothing via boss, production via staff).
type User struct {
	Model
	Username    string `gorm:"type:varchar(255);not null" json:"username" validate:"required"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, hidden from JSON
	PhoneNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone_number" validate:"required"`

	Bosses       []Boss        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Staff        []Staff       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Procurements []Procurement `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Shipments    []Shipment    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// SetPassword hashes and sets the user's password. The raw password is never
// stored.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifies the provided password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
