package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	FirstName string    `json:"first_name" gorm:"size:100;not null"`
	LastName  string    `json:"last_name" gorm:"size:100;not null"`
	Username  string    `json:"username" gorm:"size:100;not null"`
	Password  string    `json:"-" gorm:"not null"`
	IsMember  bool      `json:"is_member" gorm:"not null"`
	IsAdmin   bool      `json:"is_admin" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName is computed, never stored.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
