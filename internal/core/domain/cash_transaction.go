package domain

import "time"

// CashTransactionType is the type tag of a cash register transaction.
type CashTransactionType string

const (
	Sale       CashTransactionType = "sale"
	Expense    CashTransactionType = "expense"
	Deposit    CashTransactionType = "deposit"
	Withdrawal CashTransactionType = "withdrawal"
	Exchange   CashTransactionType = "exchange"
)

// IsKnown reports whether t is one of the cash register type tags.
func (t CashTransactionType) IsKnown() bool {
	switch t {
	case Sale, Expense, Deposit, Withdrawal, Exchange:
		return true
	}
	return false
}

// ExchangeLeg marks which side of a currency exchange a stored record represents.
type ExchangeLeg string

const (
	LegOut ExchangeLeg = "OUT" // money leaving the source currency
	LegIn  ExchangeLeg = "IN"  // money arriving in the target currency
)

// CashTransaction is a single immutable cash register record.
// Amount is always a non-negative magnitude; the direction comes from Type.
type CashTransaction struct {
	TransactionID   string              `json:"transactionID"`
	TransactionDate time.Time           `json:"transactionDate"`
	Type            CashTransactionType `json:"type"`
	Description     string              `json:"description"`
	Amount          float64             `json:"amount"`
	Currency        Currency            `json:"currency"`
	ExchangeRate    *float64            `json:"exchangeRate,omitempty"` // rate in effect when recorded
	Reference       *string             `json:"reference,omitempty"`
	PairID          *string             `json:"pairID,omitempty"`
	PairLeg         *ExchangeLeg        `json:"pairLeg,omitempty"`
	AuditFields
}

// RateOrZero returns the transaction-scoped rate, or 0 when none was captured.
// A zero rate is resolved to the default by the conversion service.
func (t CashTransaction) RateOrZero() float64 {
	if t.ExchangeRate == nil {
		return 0
	}
	return *t.ExchangeRate
}
