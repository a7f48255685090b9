package domain

import "time"

// CustomerTransactionType is the type tag of a customer account transaction.
type CustomerTransactionType string

const (
	Payment CustomerTransactionType = "payment"
	Invoice CustomerTransactionType = "invoice"
	Refund  CustomerTransactionType = "refund"
)

// IsKnown reports whether t is one of the customer account type tags.
func (t CustomerTransactionType) IsKnown() bool {
	switch t {
	case Payment, Invoice, Refund:
		return true
	}
	return false
}

// CustomerTransaction is a single-currency movement on a customer's account.
type CustomerTransaction struct {
	TransactionID   string                  `json:"transactionID"`
	CustomerID      string                  `json:"customerID"`
	TransactionDate time.Time               `json:"transactionDate"`
	Type            CustomerTransactionType `json:"type"`
	Amount          float64                 `json:"amount"`
	Description     string                  `json:"description"`
	Reference       string                  `json:"reference"`
	AuditFields
}
