package models

import (
	"time"
)

type Message struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Timestamp renders the creation time for display on the board.
func (m *Message) Timestamp() string {
	return m.CreatedAt.Format("January 2, 2006 at 3:04 PM MST")
}
