package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MoneyPlaces is the number of fraction digits kept for prices and totals
const MoneyPlaces = 2

type Sales struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	StoreID   uint            `gorm:"not null;index" json:"store"`
	Medicine  string          `gorm:"not null;type:varchar(255)" json:"medicine"`
	Quantity  int64           `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Price     decimal.Decimal `gorm:"not null;type:numeric(10,2)" json:"price"`
	Total     decimal.Decimal `gorm:"not null;type:numeric(12,2);default:0" json:"total"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
	Approved  bool            `gorm:"not null;default:false" json:"approved"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Store *Store `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Sales) TableName() string {
	return "sales"
}

// ComputeTotal multiplies quantity by price exactly and rounds the product
// half-up to MoneyPlaces digits. Rounding happens once, on the final product.
func ComputeTotal(quantity int64, price decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(price).Round(MoneyPlaces)
}

// BeforeSave runs on both create and update, so any caller supplied total
// is overwritten before the row reaches the database. Dates are stored in
// UTC whatever offset the caller used.
func (s *Sales) BeforeSave(tx *gorm.DB) error {
	s.Total = ComputeTotal(s.Quantity, s.Price)
	if s.Date.IsZero() {
		s.Date = tx.NowFunc()
	}
	s.Date = s.Date.UTC()
	return nil
}

// SalesResponse represents the sale data returned in API responses
type SalesResponse struct {
	ID        uint   `json:"id"`
	Store     uint   `json:"store"`
	StoreName string `json:"store_name,omitempty"`
	Medicine  string `json:"medicine"`
	Quantity  int64  `json:"quantity"`
	Price     string `json:"price"`
	Total     string `json:"total"`
	Date      string `json:"date"`
	Approved  bool   `json:"approved"`
}

// ToResponse converts a Sales model to a SalesResponse
func (s *Sales) ToResponse() *SalesResponse {
	response := &SalesResponse{
		ID:       s.ID,
		Store:    s.StoreID,
		Medicine: s.Medicine,
		Quantity: s.Quantity,
		Price:    s.Price.StringFixed(MoneyPlaces),
		Total:    s.Total.StringFixed(MoneyPlaces),
		Date:     s.Date.Format(time.RFC3339),
		Approved: s.Approved,
	}
	if s.Store != nil {
		response.StoreName = s.Store.Name
	}
	return response
}
