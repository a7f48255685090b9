package dto

import (
	"time"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/utils"
)

// RecordCustomerTransactionRequest defines the structure for recording a customer account movement.
type RecordCustomerTransactionRequest struct {
	Type            string     `json:"type" binding:"required,oneof=payment invoice refund"`
	Amount          float64    `json:"amount" binding:"required,gt=0"`
	Description     string     `json:"description" binding:"max=255"`
	Reference       string     `json:"reference" binding:"max=64"`
	TransactionDate *time.Time `json:"transactionDate"`
}

// CustomerTransactionResponse defines the API representation of a customer transaction.
type CustomerTransactionResponse struct {
	TransactionID   string    `json:"transactionID"`
	CustomerID      string    `json:"customerID"`
	TransactionDate time.Time `json:"transactionDate"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	Formatted       string    `json:"formatted"`
	Description     string    `json:"description"`
	Reference       string    `json:"reference"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CustomerBalanceResponse reports what a customer owes.
type CustomerBalanceResponse struct {
	CustomerID string  `json:"customerID"`
	Balance    float64 `json:"balance"`
	Formatted  string  `json:"formatted"`
}

// ToCustomerTransactionResponse converts a domain.CustomerTransaction to its response DTO
func ToCustomerTransactionResponse(tx domain.CustomerTransaction) CustomerTransactionResponse {
	return CustomerTransactionResponse{
		TransactionID:   tx.TransactionID,
		CustomerID:      tx.CustomerID,
		TransactionDate: tx.TransactionDate,
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		Formatted:       utils.FormatAmount(tx.Amount, domain.BaseCurrency),
		Description:     tx.Description,
		Reference:       tx.Reference,
		CreatedAt:       tx.CreatedAt,
	}
}

// ToListCustomerTransactionResponse converts a slice of customer transactions to response DTOs.
func ToListCustomerTransactionResponse(txs []domain.CustomerTransaction) []CustomerTransactionResponse {
	responses := make([]CustomerTransactionResponse, len(txs))
	for i, tx := range txs {
		responses[i] = ToCustomerTransactionResponse(tx)
	}
	return responses
}

// ToCustomerBalanceResponse builds the response for a customer's outstanding balance.
func ToCustomerBalanceResponse(customerID string, balance float64) CustomerBalanceResponse {
	return CustomerBalanceResponse{
		CustomerID: customerID,
		Balance:    balance,
		Formatted:  utils.FormatAmount(balance, domain.BaseCurrency),
	}
}
