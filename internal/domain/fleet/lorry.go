package fleet

import (
	"time"

	"github.com/google/uuid"
)

const (
	LorryStatusActive      = "active"
	LorryStatusInactive    = "inactive"
	LorryStatusMaintenance = "maintenance"
)

func ValidLorryStatus(s string) bool {
	switch s {
	case LorryStatusActive, LorryStatusInactive, LorryStatusMaintenance:
		return true
	}
	return false
}

type Lorry struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_lorry_user_registration,priority:1" json:"user_id"`
	RegistrationNumber string     `gorm:"not null;column:registration_number;uniqueIndex:idx_lorry_user_registration,priority:2" json:"registrationNumber"`
	Name               string     `gorm:"column:name" json:"name"`
	Make               string     `gorm:"column:make" json:"make"`
	Model              string     `gorm:"column:model" json:"model"`
	Year               *int       `gorm:"column:year" json:"year"`
	CapacityKg         *int       `gorm:"column:capacity_kg" json:"capacityKg"`
	Status             string     `gorm:"not null;default:active;column:status" json:"status"`
	OwnerID            *uint      `gorm:"index;column:owner_id" json:"ownerId"`
	Owner              *Owner     `gorm:"constraint:OnDelete:SET NULL;foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	LastServiceDate    *time.Time `gorm:"column:last_service_date" json:"lastServiceDate"`
	InsuranceExpiry    *time.Time `gorm:"column:insurance_expiry" json:"insuranceExpiry"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Lorry) TableName() string { return "lorry" }
