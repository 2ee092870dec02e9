package models

import (
	"time"

	"github.com/marketconnect/marketconnect-backend/pkg/enums"
)

// ProductGroup is a supplier-initiated bulk-buy offer with a deadline and a
// discounted final rate. Rate fields are free-form strings, carried through
// as the clients submit them.
type ProductGroup struct {
	ID                 int64             `gorm:"column:id;primaryKey;autoIncrement"`
	Product            string            `gorm:"column:product;not null"`
	Quantity           string            `gorm:"column:quantity;not null"`
	Price              string            `gorm:"column:price"`
	ActualRate         string            `gorm:"column:actual_rate"`
	FinalRate          string            `gorm:"column:final_rate"`
	DiscountPercentage string            `gorm:"column:discount_percentage"`
	Location           string            `gorm:"column:location;not null"`
	Latitude           string            `gorm:"column:latitude"`
	Longitude          string            `gorm:"column:longitude"`
	Deadline           time.Time         `gorm:"column:deadline;not null"`
	Status             enums.GroupStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedBy          int64             `gorm:"column:created_by;not null"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
}
