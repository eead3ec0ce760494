package model

import "time"

// SenderProfile is the shipper-side role of an identity. At most one per
// identity, enforced by the unique index on identity_ref.
type SenderProfile struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	IdentityRef string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"-"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
