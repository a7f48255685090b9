package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerTransaction is a row of the customer_transactions table.
type CustomerTransaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	CustomerID      string          `json:"customerID"`
	TransactionDate time.Time       `json:"transactionDate"`
	TransactionType string          `json:"transactionType"` // payment, invoice, refund
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	AuditFields
}
