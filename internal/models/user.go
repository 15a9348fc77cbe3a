// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account in the Murmur forum.
// Email is a pointer so accounts without one do not collide on the unique index.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	Password  string    `gorm:"not null" json:"-"`
	Bio       string    `gorm:"default:''" json:"bio"`
	Avatar    string    `gorm:"default:''" json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	Likes     []Like    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// PublicProfile strips everything that is not part of the public contract.
func (u *User) PublicProfile() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"username": u.Username,
		"bio":      u.Bio,
		"avatar":   u.Avatar,
	}
}
