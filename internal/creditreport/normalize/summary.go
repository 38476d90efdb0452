package normalize

import (
	"github.com/shopspring/decimal"

	"creditguard/internal/creditreport/extract"
	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/payload"
)

// BucketFor maps an account type to its summary bucket.
func BucketFor(t models.AccountType) models.Bucket {
	switch t {
	case models.AccountTypeCreditCard:
		return models.BucketRevolving
	case models.AccountTypeMortgage:
		return models.BucketMortgage
	case models.AccountTypeAutoLoan, models.AccountTypePersonalLoan, models.AccountTypeStudentLoan:
		return models.BucketInstallment
	default:
		return models.BucketOther
	}
}

// AggregateByType builds the per-bucket summary. Individual accounts win when
// present; otherwise the bureau's pre-aggregated summary is converted.
func AggregateByType(accounts []models.Account, summary *payload.RawAccountSummary) models.AccountSummary {
	if len(accounts) > 0 {
		return SummarizeAccounts(accounts)
	}
	if summary != nil {
		return ConvertSummary(*summary)
	}
	return models.AccountSummary{Source: models.SummarySourceNone}
}

// tally accumulates one bucket. Money is summed as decimals so totals do not
// pick up binary floating-point drift.
type tally struct {
	open        int
	withBalance int
	balance     decimal.Decimal
	limit       decimal.Decimal
	payment     decimal.Decimal
	available   decimal.Decimal
	// ratio is a bureau-supplied debt-to-credit percentage, if any.
	ratio *decimal.Decimal
}

func (t *tally) addAccount(a models.Account) {
	if !a.IsClosed() {
		t.open++
	}
	if a.Balance > 0 {
		t.withBalance++
	}
	balance := decimal.NewFromFloat(a.Balance)
	limit := decimal.NewFromFloat(a.Limit())
	t.balance = t.balance.Add(balance)
	t.limit = t.limit.Add(limit)
	t.payment = t.payment.Add(decimal.NewFromFloat(a.Payment()))
	t.available = t.available.Add(limit.Sub(balance))
}

func (t tally) plus(o tally) tally {
	return tally{
		open:        t.open + o.open,
		withBalance: t.withBalance + o.withBalance,
		balance:     t.balance.Add(o.balance),
		limit:       t.limit.Add(o.limit),
		payment:     t.payment.Add(o.payment),
		available:   t.available.Add(o.available),
	}
}

func (t tally) stats() models.AccountTypeStats {
	ratio := DebtToCredit(t.balance, t.limit)
	if t.ratio != nil {
		ratio = int(t.ratio.Round(0).IntPart())
	}
	return models.AccountTypeStats{
		Open:         t.open,
		WithBalance:  t.withBalance,
		TotalBalance: t.balance.InexactFloat64(),
		Available:    t.available.InexactFloat64(),
		CreditLimit:  t.limit.InexactFloat64(),
		DebtToCredit: ratio,
		Payment:      t.payment.InexactFloat64(),
	}
}

// DebtToCredit is round(balance / limit * 100), or 0 when limit is not positive.
func DebtToCredit(balance, limit decimal.Decimal) int {
	if limit.Sign() <= 0 {
		return 0
	}
	return int(balance.Div(limit).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// SummarizeAccounts reduces canonical accounts into buckets.
func SummarizeAccounts(accounts []models.Account) models.AccountSummary {
	buckets := map[models.Bucket]*tally{
		models.BucketRevolving:   {},
		models.BucketMortgage:    {},
		models.BucketInstallment: {},
		models.BucketOther:       {},
	}
	for _, a := range accounts {
		buckets[BucketFor(a.Type)].addAccount(a)
	}
	return assemble(models.SummarySourceAccounts,
		*buckets[models.BucketRevolving],
		*buckets[models.BucketMortgage],
		*buckets[models.BucketInstallment],
		*buckets[models.BucketOther],
	)
}

// ConvertSummary converts a bureau-supplied summary bucket by bucket. Missing
// buckets are empty; a missing available amount is derived as limit minus
// balance and a missing ratio is computed like in SummarizeAccounts.
func ConvertSummary(s payload.RawAccountSummary) models.AccountSummary {
	return assemble(models.SummarySourceBureau,
		convertBucket(s.Revolving),
		convertBucket(s.Mortgage),
		convertBucket(s.Installment),
		convertBucket(s.Other),
	)
}

func convertBucket(b *payload.RawBucket) tally {
	if b == nil {
		return tally{}
	}
	open, _ := extract.Int(b.Open.Raw())
	withBalance, _ := extract.Int(b.WithBalance.Raw())
	t := tally{
		open:        open,
		withBalance: withBalance,
		balance:     decimalOf(b.TotalBalance),
		limit:       decimalOf(b.CreditLimit),
		payment:     decimalOf(b.Payment),
	}
	if available, ok := extract.Amount(b.Available.Raw()); ok {
		t.available = decimal.NewFromFloat(available)
	} else {
		t.available = t.limit.Sub(t.balance)
	}
	if ratio, ok := extract.Amount(b.DebtToCredit.Raw()); ok {
		d := decimal.NewFromFloat(ratio)
		t.ratio = &d
	}
	return t
}

func decimalOf(v payload.Value) decimal.Decimal {
	return decimal.NewFromFloat(extract.AmountOr(v.Raw(), 0))
}

// assemble computes the total from the summed tallies rather than from the
// per-bucket percentages, so the total ratio is rounded once.
func assemble(source models.SummarySource, revolving, mortgage, installment, other tally) models.AccountSummary {
	total := revolving.plus(mortgage).plus(installment).plus(other)
	return models.AccountSummary{
		Revolving:   revolving.stats(),
		Mortgage:    mortgage.stats(),
		Installment: installment.stats(),
		Other:       other.stats(),
		Total:       total.stats(),
		Source:      source,
	}
}

// BureauSummaryFrom extracts the authoritative bureau counts, or nil when the
// bureau sent no summary.
func BureauSummaryFrom(s *payload.RawAccountSummary) *models.BureauSummary {
	if s == nil {
		return nil
	}
	out := &models.BureauSummary{}
	if n, ok := extract.Int(s.TotalNegativeAccounts.Raw()); ok {
		out.TotalNegativeAccounts = &n
	}
	return out
}
