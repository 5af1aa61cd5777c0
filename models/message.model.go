package models

import (
	"time"
)

type Message struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	SenderID   string `gorm:"index;size:64;not null" json:"senderId"`
	ReceiverID string `gorm:"index;size:64;not null" json:"receiverId"`

	Content string `gorm:"type:text;not null" json:"content"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"timestamp"`

	// Relations
	Sender User `gorm:"foreignKey:SenderID;references:ID" json:"sender,omitempty"`
}
