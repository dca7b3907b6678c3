package fleet

import "time"

// Station is an admin-managed branch office. StationCode is derived from the
// name and zip code and is unique across all stations.
type Station struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	StationCode   string `gorm:"size:7;uniqueIndex;not null;column:station_code" json:"stationCode"`
	StationName   string `gorm:"not null;column:station_name" json:"stationName"`
	DisplayName   string `gorm:"column:display_name" json:"displayName"`
	Address       string `gorm:"column:address" json:"address"`
	City          string `gorm:"index;column:city" json:"city"`
	ZipCode       int    `gorm:"not null;column:zip_code" json:"zipCode"`
	Country       string `gorm:"column:country" json:"country"`
	Telephone     *int64 `gorm:"column:telephone" json:"telephone"`
	EmailID       string `gorm:"column:email_id" json:"email"`
	ContactPerson string `gorm:"not null;column:contact_person" json:"contactPerson"`

	Activity1 int `gorm:"not null;default:0;column:activity1" json:"activity1"`
	Activity2 int `gorm:"not null;default:0;column:activity2" json:"activity2"`
	Activity3 int `gorm:"not null;default:0;column:activity3" json:"activity3"`
	Activity4 int `gorm:"not null;default:0;column:activity4" json:"activity4"`
	Activity5 int `gorm:"not null;default:0;column:activity5" json:"activity5"`
	Activity6 int `gorm:"not null;default:0;column:activity6" json:"activity6"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Station) TableName() string { return "station" }
