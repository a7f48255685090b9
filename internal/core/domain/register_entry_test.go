package domain_test

import (
	"testing"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leg(id, pairID string, l domain.ExchangeLeg, cur domain.Currency, amount float64) domain.CashTransaction {
	p, lg := pairID, l
	return domain.CashTransaction{
		TransactionID: id,
		Type:          domain.Exchange,
		Amount:        amount,
		Currency:      cur,
		PairID:        &p,
		PairLeg:       &lg,
	}
}

func TestGroupRegisterEntries_PairsAndSingles(t *testing.T) {
	sale := domain.CashTransaction{TransactionID: "t1", Type: domain.Sale, Amount: 250, Currency: domain.USD}
	out := leg("t2", "p1", domain.LegOut, domain.USD, 500)
	in := leg("t3", "p1", domain.LegIn, domain.SYP, 1775000)
	expense := domain.CashTransaction{TransactionID: "t4", Type: domain.Expense, Amount: 45.75, Currency: domain.USD}

	entries := domain.GroupRegisterEntries([]domain.CashTransaction{sale, in, out, expense})

	require.Len(t, entries, 3)
	assert.Equal(t, domain.SimpleEntry{Tx: sale}, entries[0])

	pair, ok := entries[1].(domain.ExchangePair)
	require.True(t, ok, "second entry should be an exchange pair")
	assert.Equal(t, "p1", pair.PairID)
	assert.Equal(t, "t2", pair.Out.TransactionID)
	assert.Equal(t, "t3", pair.In.TransactionID)
	assert.Len(t, pair.Transactions(), 2)

	assert.Equal(t, domain.SimpleEntry{Tx: expense}, entries[2])
}

func TestGroupRegisterEntries_OrphanLegStaysSimple(t *testing.T) {
	out := leg("t1", "p1", domain.LegOut, domain.USD, 500)

	entries := domain.GroupRegisterEntries([]domain.CashTransaction{out})

	require.Len(t, entries, 1)
	simple, ok := entries[0].(domain.SimpleEntry)
	require.True(t, ok)
	assert.Equal(t, "t1", simple.Tx.TransactionID)
}

func TestGroupRegisterEntries_DuplicateLegsAreNotPaired(t *testing.T) {
	a := leg("t1", "p1", domain.LegOut, domain.USD, 500)
	b := leg("t2", "p1", domain.LegOut, domain.USD, 500)
	c := leg("t3", "p1", domain.LegIn, domain.SYP, 1775000)

	entries := domain.GroupRegisterEntries([]domain.CashTransaction{a, b, c})

	require.Len(t, entries, 3)
	for _, e := range entries {
		_, isSimple := e.(domain.SimpleEntry)
		assert.True(t, isSimple)
	}
}

func TestCashTransaction_RateOrZero(t *testing.T) {
	rate := 3550.0
	assert.Equal(t, 0.0, domain.CashTransaction{}.RateOrZero())
	assert.Equal(t, 3550.0, domain.CashTransaction{ExchangeRate: &rate}.RateOrZero())
}
