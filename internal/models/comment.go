package models

import "time"

// Comment can only be created against an approved article, but it survives
// if the article is later rejected or resubmitted.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	ArticleID uint      `gorm:"index" json:"article_id" example:"3"`
	UserID    uint      `json:"user_id" example:"7"`
	User      User      `json:"user,omitempty"`
	Text      string    `json:"text" example:"Very helpful, thanks."`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}
