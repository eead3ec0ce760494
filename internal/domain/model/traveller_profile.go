package model

import "time"

// TravellerProfile is the transporter-side role of an identity. At most one
// per identity. SourceCity/DestCity describe the traveller's declared route;
// they are display and filter metadata only and are never matched against the
// routes of orders the traveller accepts.
type TravellerProfile struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	IdentityRef string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"-"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone"`
	SourceCity  string    `gorm:"type:varchar(100);not null" json:"source_city"`
	DestCity    string    `gorm:"type:varchar(100);not null" json:"dest_city"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
