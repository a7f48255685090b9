package domain

// RegisterEntry is one logical cash register event: either a single transaction
// or a currency exchange made of an outgoing and an incoming leg.
type RegisterEntry interface {
	// Transactions returns the stored records backing the entry.
	Transactions() []CashTransaction
	isRegisterEntry()
}

// SimpleEntry wraps a standalone transaction.
type SimpleEntry struct {
	Tx CashTransaction
}

func (e SimpleEntry) Transactions() []CashTransaction { return []CashTransaction{e.Tx} }
func (SimpleEntry) isRegisterEntry()                  {}

// ExchangePair is a currency exchange: Out debits its currency, In credits its currency.
type ExchangePair struct {
	PairID string
	Out    CashTransaction
	In     CashTransaction
}

func (p ExchangePair) Transactions() []CashTransaction { return []CashTransaction{p.Out, p.In} }
func (ExchangePair) isRegisterEntry()                  {}

// GroupRegisterEntries folds stored records into entries, keeping the order in
// which each entry is first seen. Records sharing a pair ID with exactly one OUT
// and one IN leg become an ExchangePair; anything else stays a SimpleEntry.
func GroupRegisterEntries(txs []CashTransaction) []RegisterEntry {
	type legs struct {
		out, in *CashTransaction
		extra   []CashTransaction
	}

	order := make([]string, 0, len(txs))
	pairs := make(map[string]*legs)
	singles := make(map[string]CashTransaction)

	for _, tx := range txs {
		if tx.PairID == nil || tx.PairLeg == nil {
			key := "tx:" + tx.TransactionID
			if _, seen := singles[key]; !seen {
				order = append(order, key)
			}
			singles[key] = tx
			continue
		}

		key := "pair:" + *tx.PairID
		l, ok := pairs[key]
		if !ok {
			l = &legs{}
			pairs[key] = l
			order = append(order, key)
		}
		t := tx
		switch {
		case *tx.PairLeg == LegOut && l.out == nil:
			l.out = &t
		case *tx.PairLeg == LegIn && l.in == nil:
			l.in = &t
		default:
			l.extra = append(l.extra, t)
		}
	}

	entries := make([]RegisterEntry, 0, len(order))
	for _, key := range order {
		if tx, ok := singles[key]; ok {
			entries = append(entries, SimpleEntry{Tx: tx})
			continue
		}
		l := pairs[key]
		if l.out != nil && l.in != nil && len(l.extra) == 0 {
			entries = append(entries, ExchangePair{PairID: *l.out.PairID, Out: *l.out, In: *l.in})
			continue
		}
		// Orphaned or malformed legs are treated as standalone records.
		for _, tx := range []*CashTransaction{l.out, l.in} {
			if tx != nil {
				entries = append(entries, SimpleEntry{Tx: *tx})
			}
		}
		for _, tx := range l.extra {
			entries = append(entries, SimpleEntry{Tx: tx})
		}
	}
	return entries
}
