package model

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusAccepted OrderStatus = "accepted"
)

// Order is one shipment request. TravellerID is nil while pending and set
// exactly once at acceptance; DistanceKm and Price are computed at creation
// and never recomputed.
type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID    int64       `gorm:"not null;index" json:"sender_id"`
	TravellerID *int64      `gorm:"index" json:"traveller_id"`
	SourceCity  string      `gorm:"type:varchar(100);not null" json:"source_city"`
	DestCity    string      `gorm:"type:varchar(100);not null" json:"dest_city"`
	DistanceKm  float64     `gorm:"not null" json:"distance_km"`
	WeightKg    float64     `gorm:"not null" json:"weight_kg"`
	ItemType    string      `gorm:"type:varchar(50);not null" json:"item_type"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Price       int64       `gorm:"not null" json:"price"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
