package normalize

import "creditguard/internal/creditreport/models"

// Score-impact weights per derogatory event, and the cap on the sum.
const (
	LatePaymentWeight  = 15
	CollectionWeight   = 80
	ChargeOffWeight    = 100
	PublicRecordWeight = 120
	MaxScoreImpact     = 200
)

// CalculateDerogatoryMarks totals the negative events of a profile.
//
// The negative-account count is the number of accounts flagged negative,
// unless the bureau summary reports a total (zero included), which overrides
// the local count. Public records of type collection count as collections;
// the rest count as public records. Entries of the report's separate
// collections list are not counted here. Late payments and charge-offs feed the
// score impact but not TotalCount, since the bureau already folds them into
// its negative accounts.
func CalculateDerogatoryMarks(accounts []models.Account, records []models.PublicRecord, summary *models.BureauSummary) models.DerogatoryMarksSummary {
	var late, negatives, chargeOffs int
	for _, a := range accounts {
		late += latePayments(a)
		if a.IsNegative {
			negatives++
		}
		if a.ChargedOff {
			chargeOffs++
		}
	}
	if summary != nil && summary.TotalNegativeAccounts != nil {
		negatives = max(*summary.TotalNegativeAccounts, 0)
	}

	var collections, publicRecords int
	for _, r := range records {
		if r.Type == models.PublicRecordCollection {
			collections++
		} else {
			publicRecords++
		}
	}

	total := negatives + collections + publicRecords
	impact := late*LatePaymentWeight +
		collections*CollectionWeight +
		chargeOffs*ChargeOffWeight +
		publicRecords*PublicRecordWeight

	return models.DerogatoryMarksSummary{
		TotalCount:           total,
		LatePayments:         late,
		Collections:          collections,
		PublicRecords:        publicRecords,
		ChargeOffs:           chargeOffs,
		EstimatedScoreImpact: min(impact, MaxScoreImpact),
		Severity:             ClassifySeverity(total, chargeOffs+collections+publicRecords),
	}
}

// latePayments counts late months from the detailed history, or 1 for a late
// account the bureau sent without history.
func latePayments(a models.Account) int {
	if a.PaymentHistory.HasRecords() {
		return a.PaymentHistory.Count(models.PaymentStatusLate)
	}
	if a.Status == models.AccountStatusLate {
		return 1
	}
	return 0
}

// ClassifySeverity applies the severity rules in priority order. serious is
// the number of charge-offs, collections and public records.
func ClassifySeverity(total, serious int) models.Severity {
	switch {
	case total <= 0:
		return models.SeverityNone
	case total <= 2 && serious == 0:
		return models.SeverityLow
	case total <= 5 && serious <= 1:
		return models.SeverityModerate
	default:
		return models.SeveritySevere
	}
}
