package vendors

import (
	"time"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
)

// VendorDTO is the API shape of a vendor profile.
type VendorDTO struct {
	ID                    int64            `json:"id"`
	ExternalAuthID        *string          `json:"externalAuthId,omitempty"`
	FullName              string           `json:"fullName"`
	MobileNumber          string           `json:"mobileNumber"`
	LanguagePreference    string           `json:"languagePreference"`
	StallName             string           `json:"stallName,omitempty"`
	StallAddress          string           `json:"stallAddress"`
	City                  string           `json:"city"`
	Pincode               string           `json:"pincode"`
	State                 string           `json:"state"`
	StallType             string           `json:"stallType"`
	RawMaterialNeeds      types.StringList `json:"rawMaterialNeeds"`
	PreferredDeliveryTime string           `json:"preferredDeliveryTime"`
	Latitude              string           `json:"latitude,omitempty"`
	Longitude             string           `json:"longitude,omitempty"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

// CreateVendorDTO holds the creation payload.
type CreateVendorDTO struct {
	ExternalAuthID        *string  `json:"externalAuthId"`
	FullName              string   `json:"fullName" validate:"required"`
	MobileNumber          string   `json:"mobileNumber" validate:"required"`
	LanguagePreference    string   `json:"languagePreference" validate:"required"`
	StallName             string   `json:"stallName"`
	StallAddress          string   `json:"stallAddress" validate:"required"`
	City                  string   `json:"city" validate:"required"`
	Pincode               string   `json:"pincode" validate:"required"`
	State                 string   `json:"state" validate:"required"`
	StallType             string   `json:"stallType" validate:"required"`
	RawMaterialNeeds      []string `json:"rawMaterialNeeds" validate:"required"`
	PreferredDeliveryTime string   `json:"preferredDeliveryTime" validate:"required"`
	Latitude              string   `json:"latitude"`
	Longitude             string   `json:"longitude"`
}

// UpdateVendorDTO replaces the mutable profile fields.
type UpdateVendorDTO struct {
	FullName              string   `json:"fullName" validate:"required"`
	MobileNumber          string   `json:"mobileNumber" validate:"required"`
	LanguagePreference    string   `json:"languagePreference" validate:"required"`
	StallName             string   `json:"stallName"`
	StallAddress          string   `json:"stallAddress" validate:"required"`
	City                  string   `json:"city" validate:"required"`
	Pincode               string   `json:"pincode" validate:"required"`
	State                 string   `json:"state" validate:"required"`
	StallType             string   `json:"stallType" validate:"required"`
	RawMaterialNeeds      []string `json:"rawMaterialNeeds" validate:"required"`
	PreferredDeliveryTime string   `json:"preferredDeliveryTime" validate:"required"`
	Latitude              string   `json:"latitude"`
	Longitude             string   `json:"longitude"`
}

// ToModel prepares the GORM model from the creation payload.
func (c CreateVendorDTO) ToModel() *models.Vendor {
	return &models.Vendor{
		ExternalAuthID:        c.ExternalAuthID,
		FullName:              c.FullName,
		MobileNumber:          c.MobileNumber,
		LanguagePreference:    c.LanguagePreference,
		StallName:             c.StallName,
		StallAddress:          c.StallAddress,
		City:                  c.City,
		Pincode:               c.Pincode,
		State:                 c.State,
		StallType:             c.StallType,
		RawMaterialNeeds:      types.StringList(c.RawMaterialNeeds),
		PreferredDeliveryTime: c.PreferredDeliveryTime,
		Latitude:              c.Latitude,
		Longitude:             c.Longitude,
	}
}

// FromModel maps the persisted vendor into its API shape.
func FromModel(m *models.Vendor) *VendorDTO {
	if m == nil {
		return nil
	}
	needs := m.RawMaterialNeeds
	if needs == nil {
		needs = types.StringList{}
	}
	return &VendorDTO{
		ID:                    m.ID,
		ExternalAuthID:        m.ExternalAuthID,
		FullName:              m.FullName,
		MobileNumber:          m.MobileNumber,
		LanguagePreference:    m.LanguagePreference,
		StallName:             m.StallName,
		StallAddress:          m.StallAddress,
		City:                  m.City,
		Pincode:               m.Pincode,
		State:                 m.State,
		StallType:             m.StallType,
		RawMaterialNeeds:      needs,
		PreferredDeliveryTime: m.PreferredDeliveryTime,
		Latitude:              m.Latitude,
		Longitude:             m.Longitude,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func fromModels(rows []models.Vendor) []VendorDTO {
	out := make([]VendorDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
