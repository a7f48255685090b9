package domain

import "time"

// BalanceSummary is the derived cash register position, recomputed from all entries.
type BalanceSummary struct {
	USD         float64 `json:"usd"`
	SYP         float64 `json:"syp"`
	USDInSYP    float64 `json:"usdInSYP"` // USD balance at the default rate
	SYPInUSD    float64 `json:"sypInUSD"` // SYP balance at the default rate
	DefaultRate float64 `json:"defaultRate"`
}

// CashEntryFilter narrows a cash register listing.
type CashEntryFilter struct {
	Type      *CashTransactionType
	Currency  *Currency
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}
