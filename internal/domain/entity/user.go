package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a portal account. Passwords are stored as bcrypt hashes.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Role           string    `gorm:"type:varchar(20);not null;index" json:"role"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"type:text;not null" json:"-"`
	FirstName      string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName       string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Phone          string    `gorm:"type:varchar(32)" json:"phone"`
	DateOfBirth    time.Time `gorm:"type:date" json:"dateOfBirth"`
	Specialization string    `gorm:"type:varchar(255)" json:"specialization,omitempty"`
	LicenseNumber  string    `gorm:"type:varchar(100)" json:"licenseNumber,omitempty"`
	Organization   string    `gorm:"type:varchar(255)" json:"organization,omitempty"`
	IsActive       *bool     `gorm:"not null;default:true;index" json:"isActive"`
	EmailVerified  bool      `gorm:"not null;default:false" json:"emailVerified"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
