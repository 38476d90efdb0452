package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/payload"
)

func floatPtr(f float64) *float64 { return &f }

func TestBucketFor(t *testing.T) {
	assert.Equal(t, models.BucketRevolving, BucketFor(models.AccountTypeCreditCard))
	assert.Equal(t, models.BucketMortgage, BucketFor(models.AccountTypeMortgage))
	assert.Equal(t, models.BucketInstallment, BucketFor(models.AccountTypeAutoLoan))
	assert.Equal(t, models.BucketInstallment, BucketFor(models.AccountTypeStudentLoan))
	assert.Equal(t, models.BucketInstallment, BucketFor(models.AccountTypePersonalLoan))
	assert.Equal(t, models.BucketOther, BucketFor(models.AccountType("timeshare")))
}

func TestSummarizeAccounts(t *testing.T) {
	accounts := []models.Account{
		{Type: models.AccountTypeCreditCard, Status: models.AccountStatusCurrent, Balance: 0.1, CreditLimit: floatPtr(1000), MinimumPayment: 25},
		{Type: models.AccountTypeCreditCard, Status: models.AccountStatusClosed, Balance: 0.2, CreditLimit: floatPtr(500), MonthlyPayment: floatPtr(40)},
		{Type: models.AccountTypeMortgage, Status: models.AccountStatusCurrent, Balance: 200000, CreditLimit: floatPtr(250000), MonthlyPayment: floatPtr(1500)},
		{Type: models.AccountTypeAutoLoan, Status: models.AccountStatusLate, Balance: 0},
	}

	s := AggregateByType(accounts, &payload.RawAccountSummary{})
	assert.Equal(t, models.SummarySourceAccounts, s.Source)

	assert.Equal(t, 1, s.Revolving.Open)
	assert.Equal(t, 2, s.Revolving.WithBalance)
	assert.Equal(t, 0.3, s.Revolving.TotalBalance)
	assert.Equal(t, 1500.0, s.Revolving.CreditLimit)
	assert.Equal(t, 1499.7, s.Revolving.Available)
	assert.Equal(t, 65.0, s.Revolving.Payment)
	assert.Equal(t, 0, s.Revolving.DebtToCredit)

	assert.Equal(t, 80, s.Mortgage.DebtToCredit)

	assert.Equal(t, 1, s.Installment.Open)
	assert.Equal(t, 0, s.Installment.WithBalance)
	assert.Equal(t, 0, s.Installment.DebtToCredit)

	assert.Equal(t, models.AccountTypeStats{}, s.Other)

	assert.Equal(t, 3, s.Total.Open)
	assert.Equal(t, 3, s.Total.WithBalance)
	assert.Equal(t, 200000.3, s.Total.TotalBalance)
	assert.Equal(t, 251500.0, s.Total.CreditLimit)
	assert.Equal(t, 1565.0, s.Total.Payment)
	assert.Equal(t, 80, s.Total.DebtToCredit)
}

func TestTotalRatioIsNotSummedFromBuckets(t *testing.T) {
	accounts := []models.Account{
		{Type: models.AccountTypeCreditCard, Balance: 1, CreditLimit: floatPtr(3)},
		{Type: models.AccountTypeMortgage, Balance: 1, CreditLimit: floatPtr(3)},
	}
	s := SummarizeAccounts(accounts)
	assert.Equal(t, 33, s.Revolving.DebtToCredit)
	assert.Equal(t, 33, s.Mortgage.DebtToCredit)
	assert.Equal(t, 33, s.Total.DebtToCredit)
}

func TestConvertSummary(t *testing.T) {
	s := AggregateByType(nil, &payload.RawAccountSummary{
		Revolving: &payload.RawBucket{
			Open:         payload.V(2.0),
			WithBalance:  payload.V("1"),
			TotalBalance: payload.V(500.0),
			CreditLimit:  payload.V(map[string]any{"amount": 2000.0}),
			Payment:      payload.V(50.0),
		},
		Installment: &payload.RawBucket{
			Open:         payload.V(1.0),
			TotalBalance: payload.V(9000.0),
			Available:    payload.V(0.0),
			DebtToCredit: payload.V(89.6),
		},
	})

	assert.Equal(t, models.SummarySourceBureau, s.Source)
	assert.Equal(t, 2, s.Revolving.Open)
	assert.Equal(t, 1, s.Revolving.WithBalance)
	assert.Equal(t, 1500.0, s.Revolving.Available)
	assert.Equal(t, 25, s.Revolving.DebtToCredit)

	assert.Equal(t, 0.0, s.Installment.Available)
	assert.Equal(t, 90, s.Installment.DebtToCredit)

	assert.Equal(t, models.AccountTypeStats{}, s.Mortgage)

	assert.Equal(t, 3, s.Total.Open)
	assert.Equal(t, 9500.0, s.Total.TotalBalance)
	assert.Equal(t, 2000.0, s.Total.CreditLimit)
	assert.Equal(t, 475, s.Total.DebtToCredit)
}

func TestAggregateWithoutData(t *testing.T) {
	s := AggregateByType(nil, nil)
	assert.Equal(t, models.SummarySourceNone, s.Source)
	assert.Equal(t, models.AccountTypeStats{}, s.Total)
}

func TestDebtToCredit(t *testing.T) {
	assert.Equal(t, 0, DebtToCredit(decimal.NewFromInt(100), decimal.Zero))
	assert.Equal(t, 0, DebtToCredit(decimal.NewFromInt(100), decimal.NewFromInt(-1)))
	assert.Equal(t, 50, DebtToCredit(decimal.NewFromInt(50), decimal.NewFromInt(100)))
	assert.Equal(t, 67, DebtToCredit(decimal.NewFromInt(2), decimal.NewFromInt(3)))
}

func TestBureauSummaryFrom(t *testing.T) {
	assert.Nil(t, BureauSummaryFrom(nil))

	empty := BureauSummaryFrom(&payload.RawAccountSummary{})
	require.NotNil(t, empty)
	assert.Nil(t, empty.TotalNegativeAccounts)

	got := BureauSummaryFrom(&payload.RawAccountSummary{TotalNegativeAccounts: payload.V("0")})
	require.NotNil(t, got.TotalNegativeAccounts)
	assert.Equal(t, 0, *got.TotalNegativeAccounts)
}
