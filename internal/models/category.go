package models

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name        string `json:"name" example:"IT"`
	Slug        string `gorm:"unique" json:"slug" example:"it"`
	Description string `json:"description,omitempty" example:"Information Technology"`
}
