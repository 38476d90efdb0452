package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProbeSuite struct {
	suite.Suite
}

func TestProbeSuite(t *testing.T) {
	suite.Run(t, new(ProbeSuite))
}

func (s *ProbeSuite) TestShapes() {
	s.Run("provider views array is multi-bureau", func() {
		p, err := Probe([]byte(`{"providerViews": [{"provider": "EFX", "accounts": []}, {"bureau": "TU"}]}`))
		s.Require().NoError(err)
		s.Equal(ShapeMultiBureau, p.Shape())
		views := p.Views()
		s.Require().Len(views, 2)
		s.Equal("EFX", views[0].Provider)
		s.Equal("TU", views[1].Provider)
	})

	s.Run("reports array with nested bodies", func() {
		p, err := Probe([]byte(`{"reports": [
			{"source": "XPN", "creditReport": {"tradelines": [{"id": "t1"}]}},
			"not an object",
			{"providerCode": "EFX", "data": {"accounts": [{"id": "a1"}, null]}}
		]}`))
		s.Require().NoError(err)
		mb, ok := p.(MultiBureau)
		s.Require().True(ok)
		s.Require().Len(mb.ViewList, 2)
		s.Equal("XPN", mb.ViewList[0].Provider)
		s.Require().Len(mb.ViewList[0].Report.Accounts, 1)
		s.Equal("t1", mb.ViewList[0].Report.Accounts[0].ID)
		s.Len(mb.ViewList[1].Report.Accounts, 1)
	})

	s.Run("top-level report keys are single-bureau", func() {
		p, err := Probe([]byte(`{"bureau": "equifax", "tradeLines": [{"accountId": 12345}]}`))
		s.Require().NoError(err)
		sb, ok := p.(SingleBureau)
		s.Require().True(ok)
		s.Equal("equifax", sb.View.Provider)
		s.Require().Len(sb.View.Report.Accounts, 1)
		s.Equal("12345", sb.View.Report.Accounts[0].ID)
	})

	s.Run("anything else is unknown", func() {
		for _, body := range []string{`{"version": 2}`, `[]`, `42`, `null`, `{"reports": "soon"}`} {
			p, err := Probe([]byte(body))
			s.Require().NoError(err, body)
			s.Equal(ShapeUnknown, p.Shape(), body)
			s.Empty(p.Views(), body)
		}
	})

	s.Run("invalid json is the only error", func() {
		_, err := Probe([]byte(`{"accounts": [`))
		s.Error(err)
	})
}

func TestRawAccountFieldVariants(t *testing.T) {
	p, err := Probe([]byte(`{"accounts": [{
		"tradelineId": "tl-9",
		"subscriberName": " Big Bank ",
		"portfolioType": "revolving",
		"accountNumberMasked": "****1234",
		"accountStatus": "late_30",
		"currentBalance": {"amount": 120, "currency": "USD"},
		"highCredit": 1000,
		"scheduledPayment": 25,
		"actualPayment": 40,
		"dateOpened": "2018-02-01",
		"dateOfLastPayment": 1700000000000,
		"isOpen": false,
		"derogatory": true
	}]}`))
	require.NoError(t, err)
	accounts := p.Views()[0].Report.Accounts
	require.Len(t, accounts, 1)

	a := accounts[0]
	assert.Equal(t, "tl-9", a.ID)
	assert.Equal(t, "Big Bank", a.CreditorName)
	assert.Equal(t, "revolving", a.AccountType)
	assert.Equal(t, "****1234", a.AccountNumber)
	assert.Equal(t, "late_30", a.PaymentStatus)
	assert.Equal(t, map[string]any{"amount": 120.0, "currency": "USD"}, a.Balance.Raw())
	assert.Equal(t, 1000.0, a.CreditLimit.Raw())
	assert.Equal(t, 25.0, a.MinimumPayment.Raw())
	assert.Equal(t, 40.0, a.MonthlyPayment.Raw())
	assert.Equal(t, "2018-02-01", a.OpenDate.Raw())
	assert.Equal(t, 1700000000000.0, a.LastPayment.Raw())
	require.NotNil(t, a.AccountOpen)
	assert.False(t, *a.AccountOpen)
	require.NotNil(t, a.Negative)
	assert.True(t, *a.Negative)
}

func TestRawAccountMissingFields(t *testing.T) {
	p, err := Probe([]byte(`{"accounts": [{}]}`))
	require.NoError(t, err)
	a := p.Views()[0].Report.Accounts[0]
	assert.Empty(t, a.ID)
	assert.True(t, a.Balance.IsNull())
	assert.Nil(t, a.AccountOpen)
	assert.Nil(t, a.Negative)
	assert.Nil(t, a.PaymentHistory)
}

func TestPaymentHistoryEncodings(t *testing.T) {
	p, err := Probe([]byte(`{"accounts": [{"paymentHistory": [
		{"year": 2023, "months": {
			"jan": {"monthType": "ON_TIME", "value": "OK"},
			"Feb": {"type": "LATE", "status": "30"},
			"march": "CO",
			"4": "C",
			"may": null
		}},
		{"year": "2022", "December": "X"},
		{"months": {"jan": "C"}},
		{"year": 0, "jan": "C"}
	]}]}`))
	require.NoError(t, err)
	history := p.Views()[0].Report.Accounts[0].PaymentHistory
	require.Len(t, history, 2)

	y := history[0]
	assert.Equal(t, 2023, y.Year)
	require.Len(t, y.Months, 4)
	assert.Equal(t, RawMonth{Month: 1, MonthType: "ON_TIME", Value: "OK"}, y.Months[0])
	assert.Equal(t, RawMonth{Month: 2, MonthType: "LATE", Value: "30"}, y.Months[1])
	assert.Equal(t, RawMonth{Month: 3, Code: "CO", Coded: true}, y.Months[2])
	assert.Equal(t, RawMonth{Month: 4, Code: "C", Coded: true}, y.Months[3])

	assert.Equal(t, 2022, history[1].Year)
	assert.Equal(t, []RawMonth{{Month: 12, Code: "X", Coded: true}}, history[1].Months)
}

func TestAccountSummaryAndScore(t *testing.T) {
	p, err := Probe([]byte(`{
		"summary": {
			"revolvingAccounts": {"open": 2, "totalBalance": 500, "creditLimit": 2000},
			"realEstate": {"count": 1, "balance": 150000},
			"derogatoryAccounts": "3"
		},
		"creditScore": 712
	}`))
	require.NoError(t, err)
	r := p.Views()[0].Report

	require.NotNil(t, r.Summary)
	require.NotNil(t, r.Summary.Revolving)
	assert.Equal(t, 2.0, r.Summary.Revolving.Open.Raw())
	require.NotNil(t, r.Summary.Mortgage)
	assert.Equal(t, 150000.0, r.Summary.Mortgage.TotalBalance.Raw())
	assert.Nil(t, r.Summary.Installment)
	assert.Equal(t, "3", r.Summary.TotalNegativeAccounts.Raw())

	require.NotNil(t, r.Score)
	assert.Equal(t, 712.0, r.Score.Score.Raw())
}
