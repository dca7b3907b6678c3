package fleet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Driver struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	UserID        uuid.UUID                   `gorm:"type:uuid;index;not null" json:"user_id"`
	DriverName    string                      `gorm:"not null;column:driver_name" json:"driverName"`
	FathersName   string                      `gorm:"column:fathers_name" json:"fathersName"`
	Email         string                      `gorm:"column:email" json:"email"`
	MobileNumber  int64                       `gorm:"not null;column:mobile_number" json:"mobileNumber"`
	Country       string                      `gorm:"column:country" json:"country"`
	Address       string                      `gorm:"column:address" json:"address"`
	City          string                      `gorm:"column:city" json:"city"`
	PostalCode    *int                        `gorm:"column:postal_code" json:"postalCode"`
	LicenseNumber string                      `gorm:"column:license_number" json:"licenseNumber"`
	IssuedBy      string                      `gorm:"column:issued_by" json:"issuedBy"`
	LicenseDate   *time.Time                  `gorm:"column:license_date" json:"licenseDate"`
	Tags          datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Driver) TableName() string { return "driver" }
