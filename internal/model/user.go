package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is owned by the auth collaborator; the scoring engine only reads
// id, nickname, avatar and role.
type User struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Nickname    string         `json:"nickname"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Role        string         `json:"role" gorm:"not null;default:'user'"` // "admin" or "user"
	NISN        *string        `json:"nisn,omitempty"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`
	Gender      *string        `json:"gender,omitempty"`
	AvatarPath  *string        `json:"avatar_path,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
