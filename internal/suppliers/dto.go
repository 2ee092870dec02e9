package suppliers

import (
	"time"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
)

// SupplierDTO is the API shape of a supplier profile.
type SupplierDTO struct {
	ID                    int64            `json:"id"`
	ExternalAuthID        *string          `json:"externalAuthId,omitempty"`
	FullName              string           `json:"fullName"`
	MobileNumber          string           `json:"mobileNumber"`
	LanguagePreference    string           `json:"languagePreference"`
	BusinessName          string           `json:"businessName,omitempty"`
	BusinessAddress       string           `json:"businessAddress"`
	City                  string           `json:"city"`
	Pincode               string           `json:"pincode"`
	State                 string           `json:"state"`
	BusinessType          string           `json:"businessType"`
	SupplyCapabilities    types.StringList `json:"supplyCapabilities"`
	PreferredDeliveryTime string           `json:"preferredDeliveryTime"`
	Latitude              string           `json:"latitude,omitempty"`
	Longitude             string           `json:"longitude,omitempty"`
	GSTNumber             string           `json:"gstNumber,omitempty"`
	LicenseNumber         string           `json:"licenseNumber,omitempty"`
	YearsInBusiness       string           `json:"yearsInBusiness,omitempty"`
	EmployeeCount         string           `json:"employeeCount,omitempty"`
	PrimaryEmail          string           `json:"primaryEmail,omitempty"`
	WhatsappBusiness      string           `json:"whatsappBusiness,omitempty"`
	FoodSafetyLicense     string           `json:"foodSafetyLicense,omitempty"`
	OrganicCertification  string           `json:"organicCertification,omitempty"`
	ISOCertification      string           `json:"isoCertification,omitempty"`
	ExportLicense         string           `json:"exportLicense,omitempty"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

// CreateSupplierDTO holds the creation payload.
type CreateSupplierDTO struct {
	ExternalAuthID        *string  `json:"externalAuthId"`
	FullName              string   `json:"fullName" validate:"required"`
	MobileNumber          string   `json:"mobileNumber" validate:"required"`
	LanguagePreference    string   `json:"languagePreference" validate:"required"`
	BusinessName          string   `json:"businessName"`
	BusinessAddress       string   `json:"businessAddress" validate:"required"`
	City                  string   `json:"city" validate:"required"`
	Pincode               string   `json:"pincode" validate:"required"`
	State                 string   `json:"state" validate:"required"`
	BusinessType          string   `json:"businessType" validate:"required"`
	SupplyCapabilities    []string `json:"supplyCapabilities" validate:"required"`
	PreferredDeliveryTime string   `json:"preferredDeliveryTime" validate:"required"`
	Latitude              string   `json:"latitude"`
	Longitude             string   `json:"longitude"`
	GSTNumber             string   `json:"gstNumber"`
	LicenseNumber         string   `json:"licenseNumber"`
	YearsInBusiness       string   `json:"yearsInBusiness"`
	EmployeeCount         string   `json:"employeeCount"`
	PrimaryEmail          string   `json:"primaryEmail" validate:"omitempty,email"`
	WhatsappBusiness      string   `json:"whatsappBusiness"`
	FoodSafetyLicense     string   `json:"foodSafetyLicense"`
	OrganicCertification  string   `json:"organicCertification"`
	ISOCertification      string   `json:"isoCertification"`
	ExportLicense         string   `json:"exportLicense"`
}

// UpdateSupplierDTO replaces the mutable profile fields.
type UpdateSupplierDTO struct {
	FullName              string   `json:"fullName" validate:"required"`
	MobileNumber          string   `json:"mobileNumber" validate:"required"`
	LanguagePreference    string   `json:"languagePreference" validate:"required"`
	BusinessName          string   `json:"businessName"`
	BusinessAddress       string   `json:"businessAddress" validate:"required"`
	City                  string   `json:"city" validate:"required"`
	Pincode               string   `json:"pincode" validate:"required"`
	State                 string   `json:"state" validate:"required"`
	BusinessType          string   `json:"businessType" validate:"required"`
	SupplyCapabilities    []string `json:"supplyCapabilities" validate:"required"`
	PreferredDeliveryTime string   `json:"preferredDeliveryTime" validate:"required"`
	Latitude              string   `json:"latitude"`
	Longitude             string   `json:"longitude"`
	GSTNumber             string   `json:"gstNumber"`
	LicenseNumber         string   `json:"licenseNumber"`
	YearsInBusiness       string   `json:"yearsInBusiness"`
	EmployeeCount         string   `json:"employeeCount"`
	PrimaryEmail          string   `json:"primaryEmail" validate:"omitempty,email"`
	WhatsappBusiness      string   `json:"whatsappBusiness"`
	FoodSafetyLicense     string   `json:"foodSafetyLicense"`
	OrganicCertification  string   `json:"organicCertification"`
	ISOCertification      string   `json:"isoCertification"`
	ExportLicense         string   `json:"exportLicense"`
}

// LocationQuery filters suppliers by any of the provided location fields.
type LocationQuery struct {
	City    string
	State   string
	Pincode string
}

// Empty reports whether no filter was provided.
func (q LocationQuery) Empty() bool {
	return q.City == "" && q.State == "" && q.Pincode == ""
}

// ToModel prepares the GORM model from the creation payload.
func (c CreateSupplierDTO) ToModel() *models.Supplier {
	return &models.Supplier{
		ExternalAuthID:        c.ExternalAuthID,
		FullName:              c.FullName,
		MobileNumber:          c.MobileNumber,
		LanguagePreference:    c.LanguagePreference,
		BusinessName:          c.BusinessName,
		BusinessAddress:       c.BusinessAddress,
		City:                  c.City,
		Pincode:               c.Pincode,
		State:                 c.State,
		BusinessType:          c.BusinessType,
		SupplyCapabilities:    types.StringList(c.SupplyCapabilities),
		PreferredDeliveryTime: c.PreferredDeliveryTime,
		Latitude:              c.Latitude,
		Longitude:             c.Longitude,
		GSTNumber:             c.GSTNumber,
		LicenseNumber:         c.LicenseNumber,
		YearsInBusiness:       c.YearsInBusiness,
		EmployeeCount:         c.EmployeeCount,
		PrimaryEmail:          c.PrimaryEmail,
		WhatsappBusiness:      c.WhatsappBusiness,
		FoodSafetyLicense:     c.FoodSafetyLicense,
		OrganicCertification:  c.OrganicCertification,
		ISOCertification:      c.ISOCertification,
		ExportLicense:         c.ExportLicense,
	}
}

// FromModel maps the persisted supplier into its API shape.
func FromModel(m *models.Supplier) *SupplierDTO {
	if m == nil {
		return nil
	}
	capabilities := m.SupplyCapabilities
	if capabilities == nil {
		capabilities = types.StringList{}
	}
	return &SupplierDTO{
		ID:                    m.ID,
		ExternalAuthID:        m.ExternalAuthID,
		FullName:              m.FullName,
		MobileNumber:          m.MobileNumber,
		LanguagePreference:    m.LanguagePreference,
		BusinessName:          m.BusinessName,
		BusinessAddress:       m.BusinessAddress,
		City:                  m.City,
		Pincode:               m.Pincode,
		State:                 m.State,
		BusinessType:          m.BusinessType,
		SupplyCapabilities:    capabilities,
		PreferredDeliveryTime: m.PreferredDeliveryTime,
		Latitude:              m.Latitude,
		Longitude:             m.Longitude,
		GSTNumber:             m.GSTNumber,
		LicenseNumber:         m.LicenseNumber,
		YearsInBusiness:       m.YearsInBusiness,
		EmployeeCount:         m.EmployeeCount,
		PrimaryEmail:          m.PrimaryEmail,
		WhatsappBusiness:      m.WhatsappBusiness,
		FoodSafetyLicense:     m.FoodSafetyLicense,
		OrganicCertification:  m.OrganicCertification,
		ISOCertification:      m.ISOCertification,
		ExportLicense:         m.ExportLicense,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func fromModels(rows []models.Supplier) []SupplierDTO {
	out := make([]SupplierDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
