package models

import "time"

// AccountType is the canonical account category.
type AccountType string

const (
	AccountTypeCreditCard   AccountType = "credit_card"
	AccountTypeMortgage     AccountType = "mortgage"
	AccountTypeAutoLoan     AccountType = "auto_loan"
	AccountTypePersonalLoan AccountType = "personal_loan"
	AccountTypeStudentLoan  AccountType = "student_loan"
)

// AccountStatus is the canonical standing of an account.
type AccountStatus string

const (
	AccountStatusCurrent    AccountStatus = "current"
	AccountStatusLate       AccountStatus = "late"
	AccountStatusDelinquent AccountStatus = "delinquent"
	AccountStatusClosed     AccountStatus = "closed"
)

// Account is the bureau-agnostic representation of one tradeline.
//
// Invariants:
//   - CreditUtilization is set only when CreditLimit is set and greater than 0
//   - Status is AccountStatusClosed whenever the bureau reported the account as not open
type Account struct {
	ID                string                 `json:"id"`
	CreditorName      string                 `json:"creditorName"`
	Type              AccountType            `json:"type"`
	AccountNumber     string                 `json:"accountNumber"`
	Balance           float64                `json:"balance"`
	CreditLimit       *float64               `json:"creditLimit,omitempty"`
	CreditUtilization *float64               `json:"creditUtilization,omitempty"`
	Status            AccountStatus          `json:"status"`
	OpenDate          time.Time              `json:"openDate"`
	LastPaymentDate   *time.Time             `json:"lastPaymentDate,omitempty"`
	MinimumPayment    float64                `json:"minimumPayment"`
	MonthlyPayment    *float64               `json:"monthlyPayment,omitempty"`
	PaymentHistory    *PaymentHistorySummary `json:"paymentHistory,omitempty"`
	IsNegative        bool                   `json:"isNegative"`
	ChargedOff        bool                   `json:"chargedOff"`
}

// IsClosed reports whether the account no longer counts as open.
func (a Account) IsClosed() bool {
	return a.Status == AccountStatusClosed
}

// Limit returns the credit limit, or 0 when the bureau did not report one.
func (a Account) Limit() float64 {
	if a.CreditLimit == nil {
		return 0
	}
	return *a.CreditLimit
}

// Payment returns the monthly payment, falling back to the minimum payment.
func (a Account) Payment() float64 {
	if a.MonthlyPayment != nil {
		return *a.MonthlyPayment
	}
	return a.MinimumPayment
}
