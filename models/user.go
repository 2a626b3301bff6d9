package models

import (
	"time"

	"gorm.io/gorm"
)

// User accounts are never hard-deleted; DeletedAt keeps dropped accounts
// out of queries while preserving review and booking history.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	FullName  string         `json:"full_name"`
	Email     string         `json:"email" gorm:"unique"`
	Phone     string         `json:"phone"`
	Password  string         `json:"password,omitempty"`
	RoleID    uint           `json:"role_id"`
	Role      Role           `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
