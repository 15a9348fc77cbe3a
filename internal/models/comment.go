// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment belongs to exactly one post and one author. Comments are immutable
// once created; there is no edit or delete endpoint.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Likes     []Like    `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}
