package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// The local database replaces the browser storage the storefront kept
// its state in: one session, one cart, one last-transaction record.

type CartItem struct {
	ProductID int64           `gorm:"primaryKey" json:"productId"`
	Name      string          `gorm:"size:128" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null" json:"unitPrice"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

type Session struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"size:512;not null"`
	UserID    int64  `gorm:"not null"`
	Login     string `gorm:"size:64"`
	Email     string `gorm:"size:128"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LastTransaction keeps the summary of the most recent successful
// purchase. The card number arrives already masked by the backend.
type LastTransaction struct {
	ID              uint            `gorm:"primaryKey" json:"-"`
	TransactionID   int64           `gorm:"not null" json:"transactionId"`
	Date            time.Time       `json:"date"`
	Value           decimal.Decimal `gorm:"type:numeric" json:"value"`
	Status          int             `json:"status"`
	MethodType      string          `gorm:"size:32" json:"methodType"`
	MethodBank      string          `gorm:"size:64" json:"methodBank,omitempty"`
	MethodFranchise string          `gorm:"size:32" json:"methodFranchise,omitempty"`
	MethodCard      string          `gorm:"size:32" json:"methodCard,omitempty"`
	CreatedAt       time.Time       `json:"-"`
}
