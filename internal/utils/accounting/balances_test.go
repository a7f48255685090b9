package accounting_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedConverter converts with an explicit rate, falling back to defaultRate.
type fixedConverter struct {
	defaultRate float64
	calls       int
}

func (c *fixedConverter) Convert(amount float64, from, to domain.Currency, rate float64) (float64, error) {
	c.calls++
	if from == to {
		return amount, nil
	}
	if rate <= 0 {
		rate = c.defaultRate
	}
	if rate <= 0 {
		return 0, apperrors.ErrInvalidRate
	}
	if from == domain.USD {
		return amount * rate, nil
	}
	return amount / rate, nil
}

func simple(tx domain.CashTransaction) domain.RegisterEntry {
	return domain.SimpleEntry{Tx: tx}
}

func ratePtr(r float64) *float64 { return &r }

func TestCashRegisterBalance_LiteralScenario(t *testing.T) {
	entries := []domain.RegisterEntry{
		simple(domain.CashTransaction{Type: domain.Sale, Amount: 250, Currency: domain.USD}),
		simple(domain.CashTransaction{Type: domain.Expense, Amount: 45.75, Currency: domain.USD}),
		simple(domain.CashTransaction{Type: domain.Deposit, Amount: 1000, Currency: domain.USD}),
	}
	conv := &fixedConverter{defaultRate: domain.DefaultExchangeRate}

	usd, err := accounting.CashRegisterBalance(entries, domain.USD, conv)
	require.NoError(t, err)
	assert.Equal(t, 1204.25, usd)

	syp, err := accounting.CashRegisterBalance(entries, domain.SYP, conv)
	require.NoError(t, err)
	assert.Equal(t, 0.0, syp)
	assert.Zero(t, conv.calls, "same-currency entries must not convert")
}

func TestCashRegisterBalance_StandaloneExchange(t *testing.T) {
	entries := []domain.RegisterEntry{
		simple(domain.CashTransaction{Type: domain.Exchange, Amount: 500, Currency: domain.USD, ExchangeRate: ratePtr(3550)}),
	}
	conv := &fixedConverter{defaultRate: domain.DefaultExchangeRate}

	usd, err := accounting.CashRegisterBalance(entries, domain.USD, conv)
	require.NoError(t, err)
	assert.Equal(t, -500.0, usd)

	syp, err := accounting.CashRegisterBalance(entries, domain.SYP, conv)
	require.NoError(t, err)
	assert.Equal(t, 1775000.0, syp)
}

func TestCashRegisterBalance_StandaloneExchangeUsesDefaultWithoutRate(t *testing.T) {
	entries := []domain.RegisterEntry{
		simple(domain.CashTransaction{Type: domain.Exchange, Amount: 350000, Currency: domain.SYP}),
	}
	conv := &fixedConverter{defaultRate: 3500}

	usd, err := accounting.CashRegisterBalance(entries, domain.USD, conv)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, usd, 1e-9)

	syp, err := accounting.CashRegisterBalance(entries, domain.SYP, conv)
	require.NoError(t, err)
	assert.Equal(t, -350000.0, syp)
}

func TestCashRegisterBalance_ExchangePair(t *testing.T) {
	pairID := "p1"
	out, in := domain.LegOut, domain.LegIn
	entries := []domain.RegisterEntry{
		simple(domain.CashTransaction{Type: domain.Deposit, Amount: 1000, Currency: domain.USD}),
		domain.ExchangePair{
			PairID: pairID,
			Out:    domain.CashTransaction{Type: domain.Exchange, Amount: 500, Currency: domain.USD, ExchangeRate: ratePtr(3550), PairID: &pairID, PairLeg: &out},
			In:     domain.CashTransaction{Type: domain.Exchange, Amount: 1775000, Currency: domain.SYP, ExchangeRate: ratePtr(3550), PairID: &pairID, PairLeg: &in},
		},
	}
	conv := &fixedConverter{defaultRate: domain.DefaultExchangeRate}

	usd, err := accounting.CashRegisterBalance(entries, domain.USD, conv)
	require.NoError(t, err)
	assert.Equal(t, 500.0, usd)

	syp, err := accounting.CashRegisterBalance(entries, domain.SYP, conv)
	require.NoError(t, err)
	assert.Equal(t, 1775000.0, syp)
	assert.Zero(t, conv.calls, "pairs carry both amounts and must not convert again")
}

func TestCashRegisterEffect_UnknownTypeContributesZero(t *testing.T) {
	entry := simple(domain.CashTransaction{Type: domain.CashTransactionType("refund"), Amount: 99, Currency: domain.USD})
	conv := &fixedConverter{defaultRate: domain.DefaultExchangeRate}

	for _, cur := range domain.SupportedCurrencies() {
		effect, err := accounting.CashRegisterEffect(entry, cur, conv)
		require.NoError(t, err)
		assert.Equal(t, 0.0, effect, "currency %s", cur)
	}
}

func TestCashRegisterEffect_UnsupportedCurrencyContributesZero(t *testing.T) {
	conv := &fixedConverter{defaultRate: domain.DefaultExchangeRate}
	eur := domain.Currency("EUR")

	for _, tt := range []domain.CashTransactionType{domain.Sale, domain.Expense, domain.Exchange} {
		entry := simple(domain.CashTransaction{Type: tt, Amount: 10, Currency: eur})
		for _, cur := range domain.SupportedCurrencies() {
			effect, err := accounting.CashRegisterEffect(entry, cur, conv)
			require.NoError(t, err)
			assert.Equal(t, 0.0, effect)
		}
	}

	sale := simple(domain.CashTransaction{Type: domain.Sale, Amount: 10, Currency: domain.USD})
	effect, err := accounting.CashRegisterEffect(sale, eur, conv)
	require.NoError(t, err)
	assert.Equal(t, 0.0, effect)
}

func TestCashRegisterBalance_ConversionErrorPropagates(t *testing.T) {
	entries := []domain.RegisterEntry{
		simple(domain.CashTransaction{TransactionID: "x1", Type: domain.Exchange, Amount: 10, Currency: domain.SYP}),
	}
	conv := &fixedConverter{defaultRate: 0}

	_, err := accounting.CashRegisterBalance(entries, domain.USD, conv)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRate))
	assert.Contains(t, err.Error(), "x1")
}

func TestCashRegisterBalance_RoundingAccumulatesAcrossConversions(t *testing.T) {
	var entries []domain.RegisterEntry
	for i := 0; i < 1000; i++ {
		entries = append(entries, simple(domain.CashTransaction{Type: domain.Exchange, Amount: 1, Currency: domain.SYP, ExchangeRate: ratePtr(3)}))
	}
	conv := &fixedConverter{defaultRate: domain.DefaultExchangeRate}

	usd, err := accounting.CashRegisterBalance(entries, domain.USD, conv)
	require.NoError(t, err)
	// float64 sums of 1/3 drift slightly; the drift is accepted, not corrected.
	assert.InDelta(t, 1000.0/3.0, usd, 1e-9)
}

func TestCustomerBalance(t *testing.T) {
	txs := []domain.CustomerTransaction{
		{Type: domain.Invoice, Amount: 1750},
		{Type: domain.Payment, Amount: 500},
	}
	assert.Equal(t, 1250.0, accounting.CustomerBalance(txs))

	txs = append(txs,
		domain.CustomerTransaction{Type: domain.Refund, Amount: 75.5},
		domain.CustomerTransaction{Type: domain.CustomerTransactionType("sale"), Amount: 1000},
	)
	assert.Equal(t, 1174.5, accounting.CustomerBalance(txs))
	assert.Equal(t, 0.0, accounting.CustomerBalance(nil))
}
