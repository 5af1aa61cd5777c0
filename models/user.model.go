package models

import (
	"time"
)

type User struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	Username      string `gorm:"unique;not null;size:50" json:"username"`
	WalletAddress string `gorm:"size:100" json:"walletAddress"`
	Avatar        string `json:"avatar"`

	Reputation float64   `gorm:"default:0" json:"reputation"`
	JoinedDate time.Time `json:"joinedDate"`

	// System Timestamps
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Derived view of the user's listings, loaded via Preload("Listings").
	// The products table is the only authority on who sells what; nothing
	// ever writes this association directly.
	Listings []Product `gorm:"foreignKey:SellerID;references:ID" json:"listings,omitempty"`
}
