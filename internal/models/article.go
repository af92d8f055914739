package models

import "time"

type ArticleStatus string

const (
	StatusPending  ArticleStatus = "pending"
	StatusApproved ArticleStatus = "approved"
	StatusRejected ArticleStatus = "rejected"
)

// Article is contributed content that must pass moderation before it is
// visible to readers. RejectReason is set only while Status is rejected and
// ApprovedAt only while Status is approved; the lifecycle package keeps the
// three fields in step.
type Article struct {
	ID           uint          `gorm:"primaryKey" json:"id" example:"1"`
	Title        string        `json:"title" example:"Onboarding checklist"`
	Description  string        `json:"description" example:"Everything a new hire needs in week one."`
	Content      string        `json:"content,omitempty"`
	DriveLink    string        `json:"drive_link,omitempty"`
	CategoryID   uint          `json:"category_id" example:"2"`
	Category     Category      `json:"category,omitempty"`
	AuthorID     uint          `json:"author_id" example:"7"`
	Author       User          `json:"author,omitempty"`
	Status       ArticleStatus `gorm:"type:varchar(20);default:pending;index" json:"status" example:"pending"`
	RejectReason *string       `json:"reject_reason,omitempty"`
	ApprovedAt   *time.Time    `json:"approved_at,omitempty"`
	ViewCount    int64         `gorm:"default:0" json:"view_count"`
	CreatedAt    time.Time     `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    *time.Time    `json:"updated_at,omitempty"`
}
