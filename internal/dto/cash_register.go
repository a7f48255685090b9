package dto

import (
	"time"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/utils"
)

// RecordCashTransactionRequest defines the structure for recording a register transaction.
// Exchanges go through RecordExchangeRequest instead.
type RecordCashTransactionRequest struct {
	Type            string     `json:"type" binding:"required,oneof=sale expense deposit withdrawal"`
	Amount          float64    `json:"amount" binding:"required,gt=0"`
	Currency        string     `json:"currency" binding:"required,currency"`
	ExchangeRate    *float64   `json:"exchangeRate" binding:"omitempty,gt=0"`
	Description     string     `json:"description" binding:"max=255"`
	Reference       *string    `json:"reference" binding:"omitempty,max=64"`
	TransactionDate *time.Time `json:"transactionDate"`
}

// RecordExchangeRequest defines the structure for a currency exchange.
type RecordExchangeRequest struct {
	Amount       float64    `json:"amount" binding:"required,gt=0"`
	FromCurrency string     `json:"fromCurrency" binding:"required,currency"`
	ToCurrency   string     `json:"toCurrency" binding:"required,currency,nefield=FromCurrency"`
	ExchangeRate *float64   `json:"exchangeRate" binding:"omitempty,gt=0"`
	Description  string     `json:"description" binding:"max=255"`
	ExchangeDate *time.Time `json:"exchangeDate"`
}

// ListCashEntriesParams defines the query parameters for listing register entries.
type ListCashEntriesParams struct {
	Type      string     `form:"type" binding:"omitempty,oneof=sale expense deposit withdrawal exchange"`
	Currency  string     `form:"currency" binding:"omitempty,currency"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int        `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string    `form:"nextToken"`
}

// CashTransactionResponse defines the API representation of a register transaction.
type CashTransactionResponse struct {
	TransactionID   string    `json:"transactionID"`
	TransactionDate time.Time `json:"transactionDate"`
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Formatted       string    `json:"formatted"`
	ExchangeRate    *float64  `json:"exchangeRate,omitempty"`
	Reference       *string   `json:"reference,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ExchangePairResponse defines the API representation of a currency exchange.
type ExchangePairResponse struct {
	PairID   string                  `json:"pairID"`
	Rate     float64                 `json:"rate"`
	Outgoing CashTransactionResponse `json:"outgoing"`
	Incoming CashTransactionResponse `json:"incoming"`
}

// RegisterEntryResponse is a tagged union: exactly one of Transaction or Exchange is set.
type RegisterEntryResponse struct {
	Kind        string                   `json:"kind"` // "transaction" or "exchange"
	Transaction *CashTransactionResponse `json:"transaction,omitempty"`
	Exchange    *ExchangePairResponse    `json:"exchange,omitempty"`
}

// ListCashEntriesResponse defines a page of register entries.
type ListCashEntriesResponse struct {
	Entries   []RegisterEntryResponse `json:"entries"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// BalanceResponse reports a single currency balance.
type BalanceResponse struct {
	Currency  string  `json:"currency"`
	Balance   float64 `json:"balance"`
	Formatted string  `json:"formatted"`
}

// BalanceSummaryResponse reports both register balances and their equivalents.
type BalanceSummaryResponse struct {
	USD         BalanceResponse `json:"usd"`
	SYP         BalanceResponse `json:"syp"`
	USDInSYP    string          `json:"usdInSYP"`
	SYPInUSD    string          `json:"sypInUSD"`
	DefaultRate float64         `json:"defaultRate"`
}

// ToCashTransactionResponse converts a domain.CashTransaction to its response DTO
func ToCashTransactionResponse(tx domain.CashTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		TransactionID:   tx.TransactionID,
		TransactionDate: tx.TransactionDate,
		Type:            string(tx.Type),
		Description:     tx.Description,
		Amount:          tx.Amount,
		Currency:        string(tx.Currency),
		Formatted:       utils.FormatAmount(tx.Amount, tx.Currency),
		ExchangeRate:    tx.ExchangeRate,
		Reference:       tx.Reference,
		CreatedAt:       tx.CreatedAt,
	}
}

// ToExchangePairResponse converts a domain.ExchangePair to its response DTO
func ToExchangePairResponse(pair domain.ExchangePair) ExchangePairResponse {
	return ExchangePairResponse{
		PairID:   pair.PairID,
		Rate:     pair.Out.RateOrZero(),
		Outgoing: ToCashTransactionResponse(pair.Out),
		Incoming: ToCashTransactionResponse(pair.In),
	}
}

// ToRegisterEntryResponse converts a domain.RegisterEntry to its tagged response DTO
func ToRegisterEntryResponse(entry domain.RegisterEntry) RegisterEntryResponse {
	switch e := entry.(type) {
	case domain.ExchangePair:
		resp := ToExchangePairResponse(e)
		return RegisterEntryResponse{Kind: "exchange", Exchange: &resp}
	case domain.SimpleEntry:
		resp := ToCashTransactionResponse(e.Tx)
		return RegisterEntryResponse{Kind: "transaction", Transaction: &resp}
	default:
		return RegisterEntryResponse{Kind: "unknown"}
	}
}

// ToListRegisterEntryResponse converts a slice of entries to response DTOs.
func ToListRegisterEntryResponse(entries []domain.RegisterEntry) []RegisterEntryResponse {
	responses := make([]RegisterEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToRegisterEntryResponse(entry)
	}
	return responses
}

// ToBalanceResponse builds the response for a single currency balance.
func ToBalanceResponse(currency domain.Currency, balance float64) BalanceResponse {
	return BalanceResponse{
		Currency:  string(currency),
		Balance:   balance,
		Formatted: utils.FormatAmount(balance, currency),
	}
}

// ToBalanceSummaryResponse converts a domain.BalanceSummary to its response DTO
func ToBalanceSummaryResponse(s domain.BalanceSummary) BalanceSummaryResponse {
	return BalanceSummaryResponse{
		USD:         ToBalanceResponse(domain.USD, s.USD),
		SYP:         ToBalanceResponse(domain.SYP, s.SYP),
		USDInSYP:    utils.FormatAmount(s.USDInSYP, domain.SYP),
		SYPInUSD:    utils.FormatAmount(s.SYPInUSD, domain.USD),
		DefaultRate: s.DefaultRate,
	}
}
