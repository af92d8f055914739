package models

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleContributor Role = "contributor"
	RoleUser        Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleContributor, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id" example:"1"`
	EmployeeID   string     `json:"employee_id" example:"EMP-0042"`
	Name         string     `json:"name" example:"Jane Doe"`
	Email        string     `gorm:"unique" json:"email" example:"jane@example.com"`
	PasswordHash string     `json:"-"`
	Role         Role       `gorm:"type:varchar(20)" json:"role" example:"contributor"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
