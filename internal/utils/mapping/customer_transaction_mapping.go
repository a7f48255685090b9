package mapping

import (
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelCustomerTransaction converts a domain CustomerTransaction to a model CustomerTransaction
func ToModelCustomerTransaction(d domain.CustomerTransaction) models.CustomerTransaction {
	return models.CustomerTransaction{
		TransactionID:   d.TransactionID,
		CustomerID:      d.CustomerID,
		TransactionDate: d.TransactionDate,
		TransactionType: string(d.Type),
		Amount:          decimal.NewFromFloat(d.Amount),
		Description:     d.Description,
		Reference:       d.Reference,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomerTransaction converts a model CustomerTransaction to a domain CustomerTransaction
func ToDomainCustomerTransaction(m models.CustomerTransaction) domain.CustomerTransaction {
	return domain.CustomerTransaction{
		TransactionID:   m.TransactionID,
		CustomerID:      m.CustomerID,
		TransactionDate: m.TransactionDate,
		Type:            domain.CustomerTransactionType(m.TransactionType),
		Amount:          m.Amount.InexactFloat64(),
		Description:     m.Description,
		Reference:       m.Reference,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
