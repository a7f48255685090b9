package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransaction is a row of the cash_transactions table.
// Amounts and rates are stored as NUMERIC and scanned into decimals.
type CashTransaction struct {
	TransactionID   string              `json:"transactionID"` // Primary Key (UUID)
	TransactionDate time.Time           `json:"transactionDate"`
	TransactionType string              `json:"transactionType"` // sale, expense, deposit, withdrawal, exchange
	Description     string              `json:"description"`
	Amount          decimal.Decimal     `json:"amount"`
	CurrencyCode    string              `json:"currencyCode"`
	ExchangeRate    decimal.NullDecimal `json:"exchangeRate"` // Nullable
	Reference       *string             `json:"reference"`    // Nullable
	PairID          *string             `json:"pairID"`       // Nullable; shared by both legs of an exchange
	PairLeg         *string             `json:"pairLeg"`      // Nullable; OUT or IN
	AuditFields
}
