package accounting

import (
	"fmt"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
)

// Converter converts an amount between the supported currencies.
// A rate of 0 means "use the current default rate".
type Converter interface {
	Convert(amount float64, from, to domain.Currency, rate float64) (float64, error)
}

// CashRegisterEffect returns the signed contribution of a single register entry to
// the balance of target.
//
// sale and deposit credit their currency, expense and withdrawal debit it. A
// standalone exchange record debits its own currency and credits every other
// currency with the converted amount, using the record's captured rate or the
// default. An ExchangePair debits Out in its currency and credits In in its
// currency. Unsupported currencies and unknown type tags contribute 0.
func CashRegisterEffect(entry domain.RegisterEntry, target domain.Currency, conv Converter) (float64, error) {
	if !target.IsSupported() {
		return 0, nil
	}

	switch e := entry.(type) {
	case domain.SimpleEntry:
		return simpleEffect(e.Tx, target, conv)
	case domain.ExchangePair:
		return pairEffect(e, target), nil
	default:
		return 0, nil
	}
}

func simpleEffect(tx domain.CashTransaction, target domain.Currency, conv Converter) (float64, error) {
	if !tx.Currency.IsSupported() {
		return 0, nil
	}

	switch tx.Type {
	case domain.Sale, domain.Deposit:
		if tx.Currency == target {
			return tx.Amount, nil
		}
	case domain.Expense, domain.Withdrawal:
		if tx.Currency == target {
			return -tx.Amount, nil
		}
	case domain.Exchange:
		if tx.Currency == target {
			return -tx.Amount, nil
		}
		converted, err := conv.Convert(tx.Amount, tx.Currency, target, tx.RateOrZero())
		if err != nil {
			return 0, fmt.Errorf("converting exchange transaction %s: %w", tx.TransactionID, err)
		}
		return converted, nil
	}
	return 0, nil
}

func pairEffect(p domain.ExchangePair, target domain.Currency) float64 {
	effect := 0.0
	if p.Out.Currency.IsSupported() && p.Out.Currency == target {
		effect -= p.Out.Amount
	}
	if p.In.Currency.IsSupported() && p.In.Currency == target {
		effect += p.In.Amount
	}
	return effect
}

// CashRegisterBalance sums the effect of every entry on the balance of target.
func CashRegisterBalance(entries []domain.RegisterEntry, target domain.Currency, conv Converter) (float64, error) {
	total := 0.0
	for _, entry := range entries {
		effect, err := CashRegisterEffect(entry, target, conv)
		if err != nil {
			return 0, err
		}
		total += effect
	}
	return total, nil
}

// CustomerEffect returns the change a transaction makes to what a customer owes:
// invoice increases it, payment and refund decrease it, unknown types contribute 0.
func CustomerEffect(tx domain.CustomerTransaction) float64 {
	switch tx.Type {
	case domain.Invoice:
		return tx.Amount
	case domain.Payment, domain.Refund:
		return -tx.Amount
	default:
		return 0
	}
}

// CustomerBalance returns the outstanding balance across a customer's transactions.
func CustomerBalance(txs []domain.CustomerTransaction) float64 {
	total := 0.0
	for _, tx := range txs {
		total += CustomerEffect(tx)
	}
	return total
}
