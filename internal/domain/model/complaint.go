package model

import "time"

// Complaint is an append-only issue report against an order. No status field;
// rows are never mutated or deleted.
type Complaint struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	Issue     string    `gorm:"type:text;not null" json:"issue"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
