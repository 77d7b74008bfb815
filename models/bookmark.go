// File: /models/bookmark.go
package models

import (
	"time"
)

// Bookmark is a private short link owned by a single user. Unlike catalog
// entries it has no payload beyond a free-text body, but it shares the
// short-code namespace so GET /{code} stays unambiguous.
type Bookmark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"type:text"`
	URL       string    `json:"url" gorm:"uniqueIndex;not null;size:500"`
	ShortURL  string    `json:"short_url" gorm:"uniqueIndex;not null;size:3"`
	Visits    int       `json:"visit_count" gorm:"not null;default:0"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
