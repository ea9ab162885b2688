package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// PaymentMethods lists the accepted values of Payment.Method
var PaymentMethods = []string{PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer}

// IsValidPaymentMethod reports whether method is one of PaymentMethods
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

type Payment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SaleID    uint            `gorm:"not null;index" json:"sale"`
	Amount    decimal.Decimal `gorm:"not null;type:numeric(10,2)" json:"amount"`
	Method    string          `gorm:"not null;type:varchar(50);default:cash" json:"method"`
	Date      time.Time       `gorm:"not null;index;<-:create" json:"date"`
	Approved  bool            `gorm:"not null;default:false" json:"approved"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Sale *Sales `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate stamps the payment date; it is never written again afterwards
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	p.Date = tx.NowFunc()
	if p.Method == "" {
		p.Method = PaymentMethodCash
	}
	return nil
}

// PaymentResponse represents the payment data returned in API responses
type PaymentResponse struct {
	ID       uint   `json:"id"`
	Sale     uint   `json:"sale"`
	Medicine string `json:"medicine,omitempty"`
	Amount   string `json:"amount"`
	Method   string `json:"method"`
	Date     string `json:"date"`
	Approved bool   `json:"approved"`
}

// ToResponse converts a Payment model to a PaymentResponse
func (p *Payment) ToResponse() *PaymentResponse {
	response := &PaymentResponse{
		ID:       p.ID,
		Sale:     p.SaleID,
		Amount:   p.Amount.StringFixed(MoneyPlaces),
		Method:   p.Method,
		Date:     p.Date.Format(time.RFC3339),
		Approved: p.Approved,
	}
	if p.Sale != nil {
		response.Medicine = p.Sale.Medicine
	}
	return response
}
