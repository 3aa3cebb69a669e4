package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 在庫数は管理しない。粗い3値の在庫表示だけを持つ
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

func ParseStockStatus(s string) (StockStatus, bool) {
	switch StockStatus(s) {
	case StockStatusInStock, StockStatusLowStock, StockStatusOutOfStock:
		return StockStatus(s), true
	}
	return "", false
}

type Product struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	Slug        string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	Images      []string        `gorm:"serializer:json;type:jsonb" json:"images"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	StockStatus StockStatus     `gorm:"type:varchar(20);not null;default:'in_stock'" json:"stock_status"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
