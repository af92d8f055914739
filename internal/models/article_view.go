package models

import "time"

// ArticleView is an append-only audit record behind Article.ViewCount.
// UserID is nullable so anonymous views can be recorded later without a
// schema change.
type ArticleView struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"index" json:"article_id"`
	UserID    *uint     `json:"user_id,omitempty"`
	ViewedAt  time.Time `gorm:"autoCreateTime" json:"viewed_at"`
}
