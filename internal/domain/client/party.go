package client

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes the two sides of a consignment. Both share one table.
type Kind string

const (
	KindConsignee Kind = "consignee"
	KindConsignor Kind = "consignor"
)

func (k Kind) Valid() bool {
	return k == KindConsignee || k == KindConsignor
}

type Party struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Kind          Kind      `gorm:"type:varchar(16);index;not null;column:kind" json:"kind"`
	PartyCode     string    `gorm:"size:7;uniqueIndex;not null;column:party_code" json:"code"`
	Name          string    `gorm:"not null;column:name" json:"name"`
	ContactPerson string    `gorm:"column:contact_person" json:"contactPerson"`
	Email         string    `gorm:"column:email" json:"email"`
	PhoneNumber   *int64    `gorm:"column:phone_number" json:"phoneNumber"`
	GSTNumber     string    `gorm:"column:gst_number" json:"gstNumber"`
	Address       string    `gorm:"column:address" json:"address"`
	City          string    `gorm:"column:city" json:"city"`
	PostalCode    string    `gorm:"not null;column:postal_code" json:"postalCode"`
	Country       string    `gorm:"column:country" json:"country"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Party) TableName() string { return "party" }
