package vocab

import (
	"strings"

	"creditguard/internal/creditreport/models"
)

// rule pairs a case-insensitive substring with the value it selects.
type rule[T any] struct {
	needle string
	value  T
}

// match returns the value of the first rule whose needle occurs in raw.
func match[T any](raw string, rules []rule[T], fallback T) T {
	s := strings.ToLower(raw)
	for _, r := range rules {
		if strings.Contains(s, r.needle) {
			return r.value
		}
	}
	return fallback
}

// Checked in order; the first match wins.
var publicRecordTypes = []rule[models.PublicRecordType]{
	{"bankrupt", models.PublicRecordBankruptcy},
	{"tax", models.PublicRecordTaxLien},
	{"lien", models.PublicRecordTaxLien},
	{"judgment", models.PublicRecordCivilJudgment},
	{"judgement", models.PublicRecordCivilJudgment},
	{"foreclos", models.PublicRecordForeclosure},
	{"collection", models.PublicRecordCollection},
}

// DefaultPublicRecordType is used when no rule matches.
const DefaultPublicRecordType = models.PublicRecordCivilJudgment

// PublicRecordType classifies a bureau public-record type string.
func PublicRecordType(raw string) models.PublicRecordType {
	return match(raw, publicRecordTypes, DefaultPublicRecordType)
}

var publicRecordStatuses = []rule[models.PublicRecordStatus]{
	{"dismiss", models.PublicRecordDismissed},
	{"satisf", models.PublicRecordSatisfied},
	{"discharg", models.PublicRecordSatisfied},
	{"released", models.PublicRecordSatisfied},
	{"paid", models.PublicRecordSatisfied},
	{"file", models.PublicRecordFiled},
}

// PublicRecordStatus classifies a bureau public-record status string.
// Unmatched statuses are active.
func PublicRecordStatus(raw string) models.PublicRecordStatus {
	return match(raw, publicRecordStatuses, models.PublicRecordActive)
}

var collectionStatuses = []rule[models.CollectionStatus]{
	{"disput", models.CollectionDisputed},
	{"settle", models.CollectionSettled},
	{"paid", models.CollectionPaid},
	{"close", models.CollectionClosed},
}

// CollectionStatus classifies a bureau collection status string.
// Unmatched statuses are open.
func CollectionStatus(raw string) models.CollectionStatus {
	return match(raw, collectionStatuses, models.CollectionOpen)
}

var inquiryTypes = []rule[models.InquiryType]{
	{"soft", models.InquirySoft},
	{"promo", models.InquirySoft},
	{"review", models.InquirySoft},
	{"hard", models.InquiryHard},
}

// InquiryType classifies an inquiry. Unmatched inquiries are hard pulls.
func InquiryType(raw string) models.InquiryType {
	return match(raw, inquiryTypes, models.InquiryHard)
}
