package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = 0
	RoleAdmin = 1
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PhoneNumber string    `gorm:"uniqueIndex;not null;column:phone_number" json:"phone_number"`
	Password    string    `gorm:"not null;column:password" json:"-"`
	Branch      string    `gorm:"column:branch" json:"branch"`
	OfficeType  string    `gorm:"column:office_type" json:"office_type"`
	Role        int       `gorm:"not null;default:0;column:role" json:"role"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// Authority is the role list handed to clients after sign-in.
func (u *User) Authority() []string {
	if u.IsAdmin() {
		return []string{"admin"}
	}
	return []string{"user"}
}
