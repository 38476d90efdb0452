// Package vocab maps bureau vocabulary onto the canonical enums.
//
// Lookups never fail. Unknown or empty input resolves to the documented
// default of each table so the normalization pipeline stays total. Tables are
// built in a single literal and never mutated.
package vocab

import (
	"strings"
	"unicode"

	"creditguard/internal/creditreport/models"
)

// Normalize lower-cases s and strips underscores, hyphens and whitespace, so
// "Credit_Card", "credit-card" and "CREDIT CARD" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// DefaultAccountType is returned for unknown account types.
const DefaultAccountType = models.AccountTypePersonalLoan

var accountTypes = map[string]models.AccountType{
	"creditcard":   models.AccountTypeCreditCard,
	"revolving":    models.AccountTypeCreditCard,
	"bankcard":     models.AccountTypeCreditCard,
	"chargecard":   models.AccountTypeCreditCard,
	"retailcard":   models.AccountTypeCreditCard,
	"card":         models.AccountTypeCreditCard,
	"mortgage":     models.AccountTypeMortgage,
	"realestate":   models.AccountTypeMortgage,
	"homeloan":     models.AccountTypeMortgage,
	"homeequity":   models.AccountTypeMortgage,
	"auto":         models.AccountTypeAutoLoan,
	"autoloan":     models.AccountTypeAutoLoan,
	"automobile":   models.AccountTypeAutoLoan,
	"autolease":    models.AccountTypeAutoLoan,
	"vehicle":      models.AccountTypeAutoLoan,
	"student":      models.AccountTypeStudentLoan,
	"studentloan":  models.AccountTypeStudentLoan,
	"education":    models.AccountTypeStudentLoan,
	"personal":     models.AccountTypePersonalLoan,
	"personalloan": models.AccountTypePersonalLoan,
	"installment":  models.AccountTypePersonalLoan,
	"unsecured":    models.AccountTypePersonalLoan,
}

// AccountType maps a bureau account type to the canonical type.
func AccountType(raw string) models.AccountType {
	if t, ok := accountTypes[Normalize(raw)]; ok {
		return t
	}
	return DefaultAccountType
}

// DefaultAccountStatus is returned for unknown payment statuses.
const DefaultAccountStatus = models.AccountStatusCurrent

var accountStatuses = map[string]models.AccountStatus{
	"paysasagreed":        models.AccountStatusCurrent,
	"paidasagreed":        models.AccountStatusCurrent,
	"asagreed":            models.AccountStatusCurrent,
	"current":             models.AccountStatusCurrent,
	"ok":                  models.AccountStatusCurrent,
	"open":                models.AccountStatusCurrent,
	"neverlate":           models.AccountStatusCurrent,
	"late":                models.AccountStatusLate,
	"late30":              models.AccountStatusLate,
	"late60":              models.AccountStatusLate,
	"30dayslate":          models.AccountStatusLate,
	"60dayslate":          models.AccountStatusLate,
	"30dayspastdue":       models.AccountStatusLate,
	"60dayspastdue":       models.AccountStatusLate,
	"pastdue":             models.AccountStatusLate,
	"late90":              models.AccountStatusDelinquent,
	"late120":             models.AccountStatusDelinquent,
	"late150":             models.AccountStatusDelinquent,
	"late180":             models.AccountStatusDelinquent,
	"90dayslate":          models.AccountStatusDelinquent,
	"120dayslate":         models.AccountStatusDelinquent,
	"90dayspastdue":       models.AccountStatusDelinquent,
	"120dayspastdue":      models.AccountStatusDelinquent,
	"delinquent":          models.AccountStatusDelinquent,
	"seriouslydelinquent": models.AccountStatusDelinquent,
	"chargeoff":           models.AccountStatusDelinquent,
	"chargedoff":          models.AccountStatusDelinquent,
	"collection":          models.AccountStatusDelinquent,
	"collections":         models.AccountStatusDelinquent,
	"repossession":        models.AccountStatusDelinquent,
	"foreclosure":         models.AccountStatusDelinquent,
	"derogatory":          models.AccountStatusDelinquent,
	"baddebt":             models.AccountStatusDelinquent,
	"closed":              models.AccountStatusClosed,
	"paidclosed":          models.AccountStatusClosed,
	"paidandclosed":       models.AccountStatusClosed,
	"paidoff":             models.AccountStatusClosed,
	"transferred":         models.AccountStatusClosed,
	"closedbyconsumer":    models.AccountStatusClosed,
	"closedbygrantor":     models.AccountStatusClosed,
}

// AccountStatus maps a bureau payment status to the canonical status.
func AccountStatus(raw string) models.AccountStatus {
	if s, ok := accountStatuses[Normalize(raw)]; ok {
		return s
	}
	return DefaultAccountStatus
}

// IsChargeOff reports whether a bureau status marks the account as charged off.
func IsChargeOff(raw string) bool {
	n := Normalize(raw)
	return strings.Contains(n, "chargeoff") || strings.Contains(n, "chargedoff")
}

var paymentCodes = map[string]models.PaymentStatus{
	"c":       models.PaymentStatusCurrent,
	"0":       models.PaymentStatusCurrent,
	"ok":      models.PaymentStatusCurrent,
	"current": models.PaymentStatusCurrent,
	"1":       models.PaymentStatusLate,
	"2":       models.PaymentStatusLate,
	"3":       models.PaymentStatusLate,
	"4":       models.PaymentStatusLate,
	"5":       models.PaymentStatusLate,
	"6":       models.PaymentStatusLate,
	"30":      models.PaymentStatusLate,
	"60":      models.PaymentStatusLate,
	"90":      models.PaymentStatusLate,
	"120":     models.PaymentStatusLate,
	"150":     models.PaymentStatusLate,
	"180":     models.PaymentStatusLate,
	"l":       models.PaymentStatusLate,
	"late":    models.PaymentStatusLate,
	"co":      models.PaymentStatusDerogatory,
	"col":     models.PaymentStatusDerogatory,
	"fc":      models.PaymentStatusDerogatory,
	"rp":      models.PaymentStatusDerogatory,
	"vs":      models.PaymentStatusDerogatory,
	"bk":      models.PaymentStatusDerogatory,
	"d":       models.PaymentStatusDerogatory,
	"x":       models.PaymentStatusUnknown,
	"nd":      models.PaymentStatusUnknown,
	"na":      models.PaymentStatusUnknown,
}

// PaymentCode maps a single-code month slot (e.g. "C", "30", "CO") to a
// canonical payment status. Unknown codes are PaymentStatusUnknown.
func PaymentCode(raw string) models.PaymentStatus {
	if s, ok := paymentCodes[Normalize(raw)]; ok {
		return s
	}
	return models.PaymentStatusUnknown
}
