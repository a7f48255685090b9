package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingRepository
	service  *services.CurrencyService
	ctx      context.Context
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
	suite.ctx = context.Background()
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestDefaultRate_StartsAtBuiltInConstant() {
	suite.Equal(3500.0, suite.service.GetDefaultRate())
	suite.Equal(domain.DefaultExchangeRate, suite.service.GetDefaultRate())
}

func (suite *CurrencyServiceTestSuite) TestConvert_IdentityIgnoresRate() {
	for _, c := range domain.SupportedCurrencies() {
		for _, rate := range []float64{0, -5, 3550, math.NaN(), math.Inf(1)} {
			for _, amount := range []float64{0, -12.5, 1204.25} {
				got, err := suite.service.Convert(amount, c, c, rate)
				suite.Require().NoError(err)
				suite.Equal(amount, got)
			}
		}
	}
}

func (suite *CurrencyServiceTestSuite) TestConvert_IdentityDoesNotNeedUsableDefault() {
	suite.mockRepo.On("SaveSetting", suite.ctx, domain.DefaultExchangeRateKey, "0").Return(nil).Once()
	suite.service.SetDefaultRate(suite.ctx, 0)

	got, err := suite.service.Convert(42, domain.SYP, domain.SYP, 0)
	suite.Require().NoError(err)
	suite.Equal(42.0, got)
}

func (suite *CurrencyServiceTestSuite) TestConvert_Directional() {
	got, err := suite.service.Convert(500, domain.USD, domain.SYP, 3550)
	suite.Require().NoError(err)
	suite.Equal(1775000.0, got)

	got, err = suite.service.Convert(175000, domain.SYP, domain.USD, 0)
	suite.Require().NoError(err)
	suite.Equal(50.0, got)

	got, err = suite.service.Convert(-10, domain.USD, domain.SYP, 0)
	suite.Require().NoError(err)
	suite.Equal(-35000.0, got, "negative amounts pass through with their sign")
}

func (suite *CurrencyServiceTestSuite) TestConvert_NonFiniteResultFails() {
	_, err := suite.service.Convert(1e308, domain.USD, domain.SYP, 0)
	suite.True(errors.Is(err, apperrors.ErrValidation), "expected ErrValidation, got %v", err)

	_, err = suite.service.Convert(1, domain.SYP, domain.USD, 1e-320)
	suite.True(errors.Is(err, apperrors.ErrValidation), "expected ErrValidation, got %v", err)

	_, err = suite.service.Convert(math.NaN(), domain.USD, domain.SYP, 3550)
	suite.True(errors.Is(err, apperrors.ErrValidation), "expected ErrValidation, got %v", err)
}

func (suite *CurrencyServiceTestSuite) TestConvert_RoundTrip() {
	for _, amount := range []float64{0.01, 1, 45.75, 1204.25, 987654.321} {
		for _, rate := range []float64{0.5, 3, 3500, 3550.75, 14999} {
			there, err := suite.service.Convert(amount, domain.USD, domain.SYP, rate)
			suite.Require().NoError(err)
			back, err := suite.service.Convert(there, domain.SYP, domain.USD, rate)
			suite.Require().NoError(err)
			suite.InDelta(amount, back, 1e-9*amount)
		}
	}
}

func (suite *CurrencyServiceTestSuite) TestResolveRate_Precedence() {
	suite.Equal(3550.0, suite.service.ResolveRate(3550))
	suite.Equal(0.25, suite.service.ResolveRate(0.25))
	suite.Equal(3500.0, suite.service.ResolveRate(0), "zero is treated as not provided")
	suite.Equal(3500.0, suite.service.ResolveRate(-1))
	suite.Equal(3500.0, suite.service.ResolveRate(math.NaN()))
}

func (suite *CurrencyServiceTestSuite) TestConvert_ZeroDefaultRateFails() {
	suite.mockRepo.On("SaveSetting", suite.ctx, domain.DefaultExchangeRateKey, "0").Return(nil).Once()
	suite.service.SetDefaultRate(suite.ctx, 0)

	_, err := suite.service.Convert(100, domain.SYP, domain.USD, 0)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrInvalidRate))

	_, err = suite.service.Convert(100, domain.USD, domain.SYP, 0)
	suite.ErrorIs(err, apperrors.ErrInvalidRate)

	got, err := suite.service.Convert(100, domain.SYP, domain.USD, 4000)
	suite.Require().NoError(err, "an explicit positive rate does not need the default")
	suite.Equal(0.025, got)
}

func (suite *CurrencyServiceTestSuite) TestConvert_NonFiniteRateFails() {
	_, err := suite.service.Convert(100, domain.USD, domain.SYP, math.Inf(1))
	suite.ErrorIs(err, apperrors.ErrInvalidRate)
}

func (suite *CurrencyServiceTestSuite) TestSetDefaultRate_PersistsAndApplies() {
	suite.mockRepo.On("SaveSetting", suite.ctx, domain.DefaultExchangeRateKey, "5000").Return(nil).Once()

	suite.service.SetDefaultRate(suite.ctx, 5000)

	suite.Equal(5000.0, suite.service.GetDefaultRate())
	suite.Equal(5000.0, suite.service.ResolveRate(0))
	got, err := suite.service.Convert(2, domain.USD, domain.SYP, 0)
	suite.Require().NoError(err)
	suite.Equal(10000.0, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetDefaultRate_PersistenceFailureKeepsRate() {
	suite.mockRepo.On("SaveSetting", suite.ctx, domain.DefaultExchangeRateKey, "4200.5").
		Return(errors.New("disk full")).Once()

	suite.service.SetDefaultRate(suite.ctx, 4200.5)

	suite.Equal(4200.5, suite.service.GetDefaultRate())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestLoadDefaultRate_UsesStoredValue() {
	suite.mockRepo.On("FindSetting", suite.ctx, domain.DefaultExchangeRateKey).Return("3600.5", nil).Once()

	rate := suite.service.LoadDefaultRate(suite.ctx)

	suite.Equal(3600.5, rate)
	suite.Equal(3600.5, suite.service.GetDefaultRate())
}

func (suite *CurrencyServiceTestSuite) TestLoadDefaultRate_FailsSoft() {
	cases := []struct {
		name  string
		value string
		err   error
	}{
		{name: "missing", err: apperrors.ErrNotFound},
		{name: "storage unavailable", err: errors.New("connection refused")},
		{name: "unparsable", value: "three thousand"},
		{name: "zero", value: "0"},
		{name: "negative", value: "-3500"},
		{name: "not a number", value: "NaN"},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			repo := new(MockSettingRepository)
			svc := services.NewCurrencyService(repo)
			repo.On("FindSetting", mock.Anything, domain.DefaultExchangeRateKey).Return(tc.value, tc.err).Once()

			rate := svc.LoadDefaultRate(context.Background())

			suite.Equal(domain.DefaultExchangeRate, rate)
			suite.Equal(domain.DefaultExchangeRate, svc.GetDefaultRate())
			repo.AssertExpectations(suite.T())
		})
	}
}

func TestCurrencyService_DefaultRateSurvivesReload(t *testing.T) {
	store := newMemorySettingRepository()
	ctx := context.Background()

	first := services.NewCurrencyService(store)
	first.LoadDefaultRate(ctx)
	first.SetDefaultRate(ctx, 5000)

	reloaded := services.NewCurrencyService(store)
	if got := reloaded.LoadDefaultRate(ctx); got != 5000 {
		t.Fatalf("LoadDefaultRate() = %v, want 5000", got)
	}
	if got := reloaded.GetDefaultRate(); got != 5000 {
		t.Fatalf("GetDefaultRate() = %v, want 5000", got)
	}
}
