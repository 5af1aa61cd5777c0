package models

import (
	"time"
)

// Product status lifecycle: active -> pending (purchase opens an escrow
// order), pending -> sold (order completed), pending -> active (order
// cancelled). There is no way back out of sold.
const (
	ProductStatusActive  = "active"
	ProductStatusPending = "pending"
	ProductStatusSold    = "sold"
)

// Product conditions as offered on the listing form.
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like-new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
	ConditionPoor    = "poor"
)

type Product struct {
	ID          string  `gorm:"primaryKey;size:64" json:"id"`
	SellerID    string  `gorm:"index;size:64;not null" json:"sellerId"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Currency    string  `gorm:"size:10;default:'ICP'" json:"currency"`

	// External image URLs, at least one expected.
	Images []string `gorm:"serializer:json" json:"images"`

	Category  string `gorm:"size:50;index" json:"category"`
	Condition string `gorm:"size:20" json:"condition"` // new, like-new, good, fair, poor
	Location  string `gorm:"size:100" json:"location"`
	Status    string `gorm:"size:20;default:'active';index" json:"status"` // active, pending, sold

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Seller User `gorm:"foreignKey:SellerID;references:ID" json:"seller,omitempty"`
}

// ValidCondition reports whether c is one of the listing form's condition
// choices.
func ValidCondition(c string) bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}
