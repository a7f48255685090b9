package services_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/core/services"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CustomerAccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerAccountRepository
	service  *services.CustomerAccountService
	ctx      context.Context
}

func (suite *CustomerAccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerAccountRepository)
	suite.service = services.NewCustomerAccountService(suite.mockRepo)
	suite.ctx = context.Background()
}

func TestCustomerAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerAccountServiceTestSuite))
}

// --- Test Cases ---

func (suite *CustomerAccountServiceTestSuite) TestRecordTransaction_GeneratesReference() {
	suite.mockRepo.On("SaveCustomerTransaction", suite.ctx, mock.Anything).Return(nil).Once()

	tx, err := suite.service.RecordTransaction(suite.ctx, " cust-1 ", dto.RecordCustomerTransactionRequest{
		Type:   "Invoice",
		Amount: 1750,
	})

	suite.Require().NoError(err)
	suite.Equal("cust-1", tx.CustomerID)
	suite.Equal(domain.Invoice, tx.Type)
	suite.Regexp(regexp.MustCompile(`^INV-\d{4}-[0-9A-F]{8}$`), tx.Reference)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerAccountServiceTestSuite) TestRecordTransaction_KeepsSuppliedReference() {
	suite.mockRepo.On("SaveCustomerTransaction", suite.ctx, mock.MatchedBy(func(tx domain.CustomerTransaction) bool {
		return tx.Reference == "RCPT-77"
	})).Return(nil).Once()

	tx, err := suite.service.RecordTransaction(suite.ctx, "cust-1", dto.RecordCustomerTransactionRequest{
		Type:      "payment",
		Amount:    500,
		Reference: "RCPT-77",
	})

	suite.Require().NoError(err)
	suite.Equal("RCPT-77", tx.Reference)
}

func (suite *CustomerAccountServiceTestSuite) TestRecordTransaction_Validation() {
	_, err := suite.service.RecordTransaction(suite.ctx, "  ", dto.RecordCustomerTransactionRequest{Type: "payment", Amount: 1})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RecordTransaction(suite.ctx, "c", dto.RecordCustomerTransactionRequest{Type: "sale", Amount: 1})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RecordTransaction(suite.ctx, "c", dto.RecordCustomerTransactionRequest{Type: "refund", Amount: 0})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomerTransaction", mock.Anything, mock.Anything)
}

func (suite *CustomerAccountServiceTestSuite) TestGetBalance() {
	txs := []domain.CustomerTransaction{
		{TransactionID: "1", CustomerID: "c", Type: domain.Invoice, Amount: 1750},
		{TransactionID: "2", CustomerID: "c", Type: domain.Payment, Amount: 500},
	}
	suite.mockRepo.On("ListCustomerTransactions", suite.ctx, "c").Return(txs, nil).Once()

	balance, err := suite.service.GetBalance(suite.ctx, "c")

	suite.Require().NoError(err)
	suite.Equal(1250.0, balance)
}

func (suite *CustomerAccountServiceTestSuite) TestListTransactions_EmptyIsNotNil() {
	suite.mockRepo.On("ListCustomerTransactions", suite.ctx, "nobody").Return(nil, nil).Once()

	txs, err := suite.service.ListTransactions(suite.ctx, "nobody")

	suite.Require().NoError(err)
	suite.NotNil(txs)
	suite.Empty(txs)
}

func (suite *CustomerAccountServiceTestSuite) TestGetBalance_RepositoryError() {
	suite.mockRepo.On("ListCustomerTransactions", suite.ctx, "c").Return(nil, errors.New("boom")).Once()

	_, err := suite.service.GetBalance(suite.ctx, "c")
	suite.Error(err)
}
