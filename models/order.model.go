package models

import (
	"time"
)

// Order statuses. Orders are only ever created in escrow; completed and
// cancelled are the terminal states. Pending and disputed are part of the
// taxonomy but no operation currently produces them.
const (
	OrderStatusPending   = "pending"
	OrderStatusEscrow    = "escrow"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
	OrderStatusDisputed  = "disputed"
)

type Order struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	ProductID string `gorm:"index;size:64;not null" json:"productId"`
	BuyerID   string `gorm:"index;size:64;not null" json:"buyerId"`
	SellerID  string `gorm:"index;size:64;not null" json:"sellerId"`

	Status   string  `gorm:"size:20;not null" json:"status"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Currency string  `gorm:"size:10" json:"currency"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Product Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}
