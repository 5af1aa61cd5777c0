package models

import (
	"time"
)

type Review struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	OrderID    string `gorm:"index;size:64;not null" json:"orderId"`
	ReviewerID string `gorm:"index;size:64;not null" json:"reviewerId"`
	ReceiverID string `gorm:"index;size:64;not null" json:"receiverId"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
}
