package domain

import (
	"github.com/shopspring/decimal"
)

// Product is one inventory item. ID is zero until the store assigns one.
type Product struct {
	ID       int64           `json:"id,omitempty" gorm:"primaryKey;autoIncrement"`
	Name     string          `json:"name" gorm:"size:255;not null;index"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Quantity int             `json:"quantity" gorm:"not null"`
}

func (Product) TableName() string { return "products" }

// RecalledProduct marks every product with the same Name as recalled.
type RecalledProduct struct {
	ID      int64  `json:"id,omitempty" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"size:255;not null;index"`
	Expired bool   `json:"expired" gorm:"not null"`
}

func (RecalledProduct) TableName() string { return "recalled_products" }

type CreateRecallRequest struct {
	Name    string `json:"name" binding:"required"`
	Expired bool   `json:"expired"`
}
