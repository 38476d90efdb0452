package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/payload"
)

const fullReport = `{
  "provider": "XPN",
  "accounts": [
    {"id": "a-1", "creditorName": "Acme Card", "accountType": "credit_card",
     "balance": 1250, "creditLimit": 5000, "paymentStatus": "PAYS_AS_AGREED", "openDate": "2019-04-01",
     "paymentHistory": [{"year": 2024, "months": {"jan": {"monthType": "POSITIVE", "value": "PAYS_AS_AGREED"}, "feb": "30"}}]},
    {"id": "a-2", "creditorName": "Car Co", "accountType": "auto_loan",
     "balance": {"amount": 8000, "currency": "USD"}, "paymentStatus": "charge_off", "openDate": 1577836800000}
  ],
  "accountSummary": {"totalNegativeAccounts": 1},
  "publicRecords": [{"type": "Collection account", "filingDate": "2022-01-01"}],
  "collections": [{"creditorName": "Midland", "amount": 450}],
  "inquiries": [{"creditorName": "Bank", "type": "soft", "date": "2024-02-01"}],
  "score": {"score": 640, "model": "VantageScore 3.0"}
}`

func TestProfile(t *testing.T) {
	p, err := payload.Probe([]byte(fullReport))
	require.NoError(t, err)
	views := p.Views()
	require.Len(t, views, 1)

	profile := Profile(views[0], testNow)

	assert.Equal(t, models.BureauExperian, profile.Bureau)
	assert.Equal(t, "XPN", profile.Provider)
	require.Len(t, profile.Accounts, 2)
	assert.Equal(t, 25.0, *profile.Accounts[0].CreditUtilization)
	assert.Equal(t, 50, profile.Accounts[0].PaymentHistory.OnTimePaymentPercentage)
	assert.True(t, profile.Accounts[1].ChargedOff)

	assert.Equal(t, models.SummarySourceAccounts, profile.Summary.Source)
	assert.Equal(t, 9250.0, profile.Summary.Total.TotalBalance)

	assert.Equal(t, 1, profile.Derogatory.ChargeOffs)
	assert.Equal(t, 1, profile.Derogatory.Collections)
	assert.Equal(t, 1, profile.Derogatory.LatePayments)
	assert.Equal(t, 2, profile.Derogatory.TotalCount)
	assert.Equal(t, LatePaymentWeight+CollectionWeight+ChargeOffWeight, profile.Derogatory.EstimatedScoreImpact)
	assert.Equal(t, models.SeveritySevere, profile.Derogatory.Severity)

	require.Len(t, profile.PublicRecords, 1)
	require.Len(t, profile.Collections, 1)
	require.Len(t, profile.Inquiries, 1)
	assert.Equal(t, models.InquirySoft, profile.Inquiries[0].Type)
	require.NotNil(t, profile.Score)
	assert.Equal(t, 640, profile.Score.Value)
}

func TestProfileIsReproducible(t *testing.T) {
	p, err := payload.Probe([]byte(fullReport))
	require.NoError(t, err)
	view := p.Views()[0]
	assert.Equal(t, Profile(view, testNow), Profile(view, testNow))
}

func TestProfileOfEmptyView(t *testing.T) {
	profile := Profile(payload.ProviderView{Provider: "nobody"}, testNow)
	assert.True(t, profile.Bureau.IsZero())
	assert.Empty(t, profile.Accounts)
	assert.NotNil(t, profile.Accounts)
	assert.Equal(t, models.SummarySourceNone, profile.Summary.Source)
	assert.Equal(t, models.SeverityNone, profile.Derogatory.Severity)
	assert.Nil(t, profile.Score)
}
