package models

// Bucket groups account types the way bureau summaries do.
type Bucket string

const (
	BucketRevolving   Bucket = "revolving"
	BucketMortgage    Bucket = "mortgage"
	BucketInstallment Bucket = "installment"
	BucketOther       Bucket = "other"
)

// SummarySource records how an AccountSummary was produced.
type SummarySource string

const (
	// SummarySourceAccounts means the buckets were reduced from canonical accounts.
	SummarySourceAccounts SummarySource = "accounts"
	// SummarySourceBureau means the bureau supplied pre-aggregated buckets.
	SummarySourceBureau SummarySource = "bureau_summary"
	SummarySourceNone   SummarySource = "none"
)

// AccountTypeStats aggregates the accounts of one bucket.
type AccountTypeStats struct {
	Open         int     `json:"open"`
	WithBalance  int     `json:"withBalance"`
	TotalBalance float64 `json:"totalBalance"`
	Available    float64 `json:"available"`
	CreditLimit  float64 `json:"creditLimit"`
	DebtToCredit int     `json:"debtToCredit"`
	Payment      float64 `json:"payment"`
}

// AccountSummary is the per-bucket breakdown plus the grand total.
type AccountSummary struct {
	Revolving   AccountTypeStats `json:"revolving"`
	Mortgage    AccountTypeStats `json:"mortgage"`
	Installment AccountTypeStats `json:"installment"`
	Other       AccountTypeStats `json:"other"`
	Total       AccountTypeStats `json:"total"`
	Source      SummarySource    `json:"source"`
}

// Bucket returns the stats for b.
func (s AccountSummary) Bucket(b Bucket) AccountTypeStats {
	switch b {
	case BucketRevolving:
		return s.Revolving
	case BucketMortgage:
		return s.Mortgage
	case BucketInstallment:
		return s.Installment
	default:
		return s.Other
	}
}

// BureauSummary carries the bureau-reported aggregate counts that override
// locally derived ones.
type BureauSummary struct {
	// TotalNegativeAccounts is nil when the bureau did not report it. A reported
	// zero is authoritative.
	TotalNegativeAccounts *int `json:"totalNegativeAccounts,omitempty"`
}
