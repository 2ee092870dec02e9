package models

import (
	"time"

	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
)

// Supplier is a seller-side profile offering products individually or via
// group offers. At most one profile may exist per external auth id.
type Supplier struct {
	ID                    int64            `gorm:"column:id;primaryKey;autoIncrement"`
	ExternalAuthID        *string          `gorm:"column:external_auth_id;uniqueIndex:idx_suppliers_external_auth_id"`
	FullName              string           `gorm:"column:full_name;not null"`
	MobileNumber          string           `gorm:"column:mobile_number;not null"`
	LanguagePreference    string           `gorm:"column:language_preference;not null;default:'English'"`
	BusinessName          string           `gorm:"column:business_name"`
	BusinessAddress       string           `gorm:"column:business_address;not null"`
	City                  string           `gorm:"column:city;not null"`
	Pincode               string           `gorm:"column:pincode;not null"`
	State                 string           `gorm:"column:state;not null"`
	BusinessType          string           `gorm:"column:business_type;not null"`
	SupplyCapabilities    types.StringList `gorm:"column:supply_capabilities;type:text"`
	PreferredDeliveryTime string           `gorm:"column:preferred_delivery_time"`
	Latitude              string           `gorm:"column:latitude"`
	Longitude             string           `gorm:"column:longitude"`
	GSTNumber             string           `gorm:"column:gst_number"`
	LicenseNumber         string           `gorm:"column:license_number"`
	YearsInBusiness       string           `gorm:"column:years_in_business"`
	EmployeeCount         string           `gorm:"column:employee_count"`
	PrimaryEmail          string           `gorm:"column:primary_email"`
	WhatsappBusiness      string           `gorm:"column:whatsapp_business"`
	FoodSafetyLicense     string           `gorm:"column:food_safety_license"`
	OrganicCertification  string           `gorm:"column:organic_certification"`
	ISOCertification      string           `gorm:"column:iso_certification"`
	ExportLicense         string           `gorm:"column:export_license"`
	CreatedAt             time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
