package fleet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Owner struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID                   `gorm:"type:uuid;index;not null" json:"user_id"`
	OwnerName   string                      `gorm:"not null;column:owner_name" json:"ownerName"`
	FatherName  string                      `gorm:"column:father_name" json:"fatherName"`
	Email       string                      `gorm:"column:email" json:"email"`
	PhoneNumber int64                       `gorm:"not null;column:phone_number" json:"phoneNumber"`
	PanNumber   string                      `gorm:"column:pan_number" json:"panNumber"`
	Country     string                      `gorm:"column:country" json:"country"`
	Address     string                      `gorm:"column:address" json:"address"`
	City        string                      `gorm:"column:city" json:"city"`
	PostalCode  *int                        `gorm:"column:postal_code" json:"postalCode"`
	Tags        datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Owner) TableName() string { return "owner" }
