package models

import "time"

// Product is a catalog row. No lifecycle beyond create/update/delete.
type Product struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SupplierID    *int64    `gorm:"column:supplier_id"`
	Name          string    `gorm:"column:name;not null"`
	Description   string    `gorm:"column:description"`
	Category      string    `gorm:"column:category"`
	Price         float64   `gorm:"column:price;not null"`
	Unit          string    `gorm:"column:unit;not null;default:'kg'"`
	StockQuantity int       `gorm:"column:stock_quantity;not null;default:0"`
	Image         string    `gorm:"column:image"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}
