package normalize

import (
	"math"
	"strings"
	"time"

	"creditguard/internal/creditreport/extract"
	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/payload"
	"creditguard/internal/creditreport/vocab"
)

const (
	UnknownCreditor      = "Unknown Creditor"
	UnavailableAccountNo = "N/A"
)

// NormalizeAccount converts one bureau tradeline into a canonical account.
// Missing identifying fields fall back to placeholders; a missing open date
// falls back to now.
func NormalizeAccount(raw payload.RawAccount, now time.Time) models.Account {
	balance := extract.AmountOr(raw.Balance.Raw(), 0)

	acct := models.Account{
		ID:              accountID(raw),
		CreditorName:    orDefault(raw.CreditorName, UnknownCreditor),
		Type:            vocab.AccountType(raw.AccountType),
		AccountNumber:   orDefault(raw.AccountNumber, UnavailableAccountNo),
		Balance:         balance,
		Status:          accountStatus(raw),
		OpenDate:        extract.Date(raw.OpenDate.Raw(), now),
		LastPaymentDate: extract.OptionalDate(raw.LastPayment.Raw()),
		MinimumPayment:  extract.AmountOr(raw.MinimumPayment.Raw(), 0),
		PaymentHistory:  ParsePaymentHistory(raw.PaymentHistory),
		ChargedOff:      vocab.IsChargeOff(raw.PaymentStatus),
	}

	if limit, ok := extract.Amount(raw.CreditLimit.Raw()); ok {
		acct.CreditLimit = &limit
		acct.CreditUtilization = Utilization(balance, limit)
	}
	if payment, ok := extract.Amount(raw.MonthlyPayment.Raw()); ok {
		acct.MonthlyPayment = &payment
	}

	if raw.Negative != nil {
		acct.IsNegative = *raw.Negative
	} else {
		acct.IsNegative = acct.ChargedOff || acct.Status == models.AccountStatusDelinquent
	}
	return acct
}

// NormalizeAccounts normalizes every tradeline in order.
func NormalizeAccounts(raws []payload.RawAccount, now time.Time) []models.Account {
	accounts := make([]models.Account, 0, len(raws))
	for _, raw := range raws {
		accounts = append(accounts, NormalizeAccount(raw, now))
	}
	return accounts
}

// Utilization returns balance as a whole percentage of limit. It is nil when
// limit is not positive: a zero limit has no meaningful utilization.
func Utilization(balance, limit float64) *float64 {
	if limit <= 0 {
		return nil
	}
	u := math.Round(balance / limit * 100)
	return &u
}

// accountStatus forces closed when the bureau says the account is not open,
// whatever the payment status says.
func accountStatus(raw payload.RawAccount) models.AccountStatus {
	if raw.AccountOpen != nil && !*raw.AccountOpen {
		return models.AccountStatusClosed
	}
	return vocab.AccountStatus(raw.PaymentStatus)
}

func accountID(raw payload.RawAccount) string {
	if id := strings.TrimSpace(raw.ID); id != "" {
		return id
	}
	return placeholderID(accountNamespace,
		raw.CreditorName, raw.AccountNumber, raw.AccountType, raw.OpenDate.Raw(), raw.Balance.Raw())
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}
