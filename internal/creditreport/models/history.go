package models

// PaymentStatus is the canonical status of one reported month.
type PaymentStatus string

const (
	PaymentStatusCurrent    PaymentStatus = "current"
	PaymentStatusLate       PaymentStatus = "late"
	PaymentStatusDerogatory PaymentStatus = "derogatory"
	PaymentStatusUnknown    PaymentStatus = "unknown"
)

// PaymentRecord is one month of an account's payment history.
type PaymentRecord struct {
	Year   int           `json:"year"`
	Month  int           `json:"month"`
	Status PaymentStatus `json:"status"`
}

// PaymentHistorySummary holds the ordered monthly records of an account.
// Records keep the order in which the bureau reported them.
type PaymentHistorySummary struct {
	OnTimePaymentPercentage int             `json:"onTimePaymentPercentage"`
	Records                 []PaymentRecord `json:"records"`
}

// Count returns the number of records with the given status.
func (h *PaymentHistorySummary) Count(status PaymentStatus) int {
	if h == nil {
		return 0
	}
	n := 0
	for _, r := range h.Records {
		if r.Status == status {
			n++
		}
	}
	return n
}

// HasRecords reports whether any month was reported.
func (h *PaymentHistorySummary) HasRecords() bool {
	return h != nil && len(h.Records) > 0
}
