package fleet

import (
	"time"

	"github.com/google/uuid"
)

type Broker struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	BrokerName  string    `gorm:"not null;column:broker_name" json:"brokerName"`
	FathersName string    `gorm:"column:fathers_name" json:"fathersName"`
	Email       string    `gorm:"column:email" json:"email"`
	PhoneNumber int64     `gorm:"not null;column:phone_number" json:"phoneNumber"`
	PanNumber   string    `gorm:"not null;column:pan_number" json:"panNumber"`
	Country     string    `gorm:"column:country" json:"country"`
	Address     string    `gorm:"column:address" json:"address"`
	City        string    `gorm:"column:city" json:"city"`
	PostalCode  *int      `gorm:"column:postal_code" json:"postalCode"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Broker) TableName() string { return "broker" }
