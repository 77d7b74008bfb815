// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:80"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:120"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Motorcycles []Motorcycle `json:"-" gorm:"foreignKey:UserID"`
	Bookmarks   []Bookmark   `json:"-" gorm:"foreignKey:UserID"`
}
