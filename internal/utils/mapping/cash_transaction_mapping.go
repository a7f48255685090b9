package mapping

import (
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelCashTransaction converts a domain CashTransaction to a model CashTransaction
func ToModelCashTransaction(d domain.CashTransaction) models.CashTransaction {
	m := models.CashTransaction{
		TransactionID:   d.TransactionID,
		TransactionDate: d.TransactionDate,
		TransactionType: string(d.Type),
		Description:     d.Description,
		Amount:          decimal.NewFromFloat(d.Amount),
		CurrencyCode:    string(d.Currency),
		Reference:       d.Reference,
		PairID:          d.PairID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.ExchangeRate != nil {
		m.ExchangeRate = decimal.NewNullDecimal(decimal.NewFromFloat(*d.ExchangeRate))
	}
	if d.PairLeg != nil {
		leg := string(*d.PairLeg)
		m.PairLeg = &leg
	}
	return m
}

// ToDomainCashTransaction converts a model CashTransaction to a domain CashTransaction
func ToDomainCashTransaction(m models.CashTransaction) domain.CashTransaction {
	d := domain.CashTransaction{
		TransactionID:   m.TransactionID,
		TransactionDate: m.TransactionDate,
		Type:            domain.CashTransactionType(m.TransactionType),
		Description:     m.Description,
		Amount:          m.Amount.InexactFloat64(),
		Currency:        domain.Currency(m.CurrencyCode),
		Reference:       m.Reference,
		PairID:          m.PairID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.ExchangeRate.Valid {
		rate := m.ExchangeRate.Decimal.InexactFloat64()
		d.ExchangeRate = &rate
	}
	if m.PairLeg != nil {
		leg := domain.ExchangeLeg(*m.PairLeg)
		d.PairLeg = &leg
	}
	return d
}

// ToDomainCashTransactions converts a slice of model CashTransactions to domain CashTransactions
func ToDomainCashTransactions(ms []models.CashTransaction) []domain.CashTransaction {
	ds := make([]domain.CashTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashTransaction(m)
	}
	return ds
}
