package normalize

import (
	"math"
	"strings"

	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/payload"
	"creditguard/internal/creditreport/vocab"
)

// ParsePaymentHistory converts bureau month slots into ordered payment
// records. It returns nil when the bureau reported no history at all.
// Months the bureau left out are not synthesized.
func ParsePaymentHistory(years []payload.RawHistoryYear) *models.PaymentHistorySummary {
	if len(years) == 0 {
		return nil
	}

	records := make([]models.PaymentRecord, 0, len(years)*12)
	for _, y := range years {
		for _, m := range y.Months {
			records = append(records, models.PaymentRecord{
				Year:   y.Year,
				Month:  m.Month,
				Status: MonthStatus(m),
			})
		}
	}

	return &models.PaymentHistorySummary{
		OnTimePaymentPercentage: OnTimePercentage(records),
		Records:                 records,
	}
}

// MonthStatus applies the month rule table:
//
//	(POSITIVE, PAYS_AS_AGREED)        -> current
//	(NEGATIVE, *) or value has "LATE" -> late
//	NOT_REPORTED, UNAVAILABLE, NO_DATA -> unknown
//	anything else                     -> unknown
//
// Single-code slots go through vocab.PaymentCode instead.
func MonthStatus(m payload.RawMonth) models.PaymentStatus {
	if m.Coded {
		return vocab.PaymentCode(m.Code)
	}
	monthType := strings.ToUpper(strings.TrimSpace(m.MonthType))
	value := strings.ToUpper(strings.TrimSpace(m.Value))

	switch {
	case monthType == "POSITIVE" && value == "PAYS_AS_AGREED":
		return models.PaymentStatusCurrent
	case monthType == "NEGATIVE" || strings.Contains(value, "LATE"):
		return models.PaymentStatusLate
	default:
		return models.PaymentStatusUnknown
	}
}

// OnTimePercentage is the rounded share of current months among months with
// a known status, or 0 when no month has a known status.
func OnTimePercentage(records []models.PaymentRecord) int {
	reported, current := 0, 0
	for _, r := range records {
		if r.Status == models.PaymentStatusUnknown {
			continue
		}
		reported++
		if r.Status == models.PaymentStatusCurrent {
			current++
		}
	}
	if reported == 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(reported) * 100))
}
