package entities

import (
	"time"

	"gorm.io/gorm"
)

// User is an administrator account. Password and ResetToken hold bcrypt hashes,
// never raw secrets. Password is empty for accounts provisioned through OAuth.
type User struct {
	gorm.Model
	Email          string     `json:"email" gorm:"unique;not null"`
	Name           string     `json:"name" gorm:"type:varchar(255);not null"`
	Password       string     `json:"-"`
	Image          string     `json:"image" gorm:"type:varchar(512)"`
	ResetToken     string     `json:"-" gorm:"type:varchar(255)"`
	ResetExpiresAt *time.Time `json:"-"`
}
