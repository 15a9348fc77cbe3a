package models

import "time"

// Like associates a user with either a post or a comment. The schema supports
// both targets but only post likes are exercised by the handlers. The unique
// indexes are the safety net for the toggle's check-then-act sequence: a losing
// concurrent insert conflicts and is treated as an idempotent no-op.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post;uniqueIndex:idx_like_user_comment" json:"user_id"`
	PostID    *uint     `gorm:"uniqueIndex:idx_like_user_post" json:"post_id,omitempty"`
	CommentID *uint     `gorm:"uniqueIndex:idx_like_user_comment" json:"comment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
