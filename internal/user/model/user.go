// Package model provides domain models for the user module.
package model

import "time"

// Roles recognized by the service. Actor identity is resolved externally;
// the service only checks role and ownership relationships.
const (
	RoleAuthor   = "author"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

// User represents an identity record in the system.
// Matches the users table schema.
type User struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(64)"                      json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"        json:"email"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"                     json:"name"`
	Role      string    `gorm:"column:role;type:varchar(32);not null;index:idx_users_role" json:"role"`
	IsActive  bool      `gorm:"column:is_active;type:boolean;not null;default:true"        json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                 json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"                                 json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
