package models

import (
	"time"

	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
)

// Vendor is a buyer-side profile: a food stall sourcing raw materials.
type Vendor struct {
	ID                    int64            `gorm:"column:id;primaryKey;autoIncrement"`
	ExternalAuthID        *string          `gorm:"column:external_auth_id;uniqueIndex:idx_vendors_external_auth_id"`
	FullName              string           `gorm:"column:full_name;not null"`
	MobileNumber          string           `gorm:"column:mobile_number;not null"`
	LanguagePreference    string           `gorm:"column:language_preference;not null;default:'English'"`
	StallName             string           `gorm:"column:stall_name"`
	StallAddress          string           `gorm:"column:stall_address;not null"`
	City                  string           `gorm:"column:city;not null"`
	Pincode               string           `gorm:"column:pincode;not null"`
	State                 string           `gorm:"column:state;not null"`
	StallType             string           `gorm:"column:stall_type;not null"`
	RawMaterialNeeds      types.StringList `gorm:"column:raw_material_needs;type:text"`
	PreferredDeliveryTime string           `gorm:"column:preferred_delivery_time"`
	Latitude              string           `gorm:"column:latitude"`
	Longitude             string           `gorm:"column:longitude"`
	CreatedAt             time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
