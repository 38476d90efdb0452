package normalize

import (
	"time"

	"creditguard/internal/creditreport/bureau"
	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/payload"
)

// Profile assembles the canonical profile for one provider view.
func Profile(view payload.ProviderView, now time.Time) models.CreditProfile {
	b, _ := bureau.Resolve(view.Provider)
	report := view.Report

	profile := models.EmptyProfile(b)
	profile.Provider = view.Provider
	profile.Accounts = NormalizeAccounts(report.Accounts, now)

	for _, raw := range report.PublicRecords {
		profile.PublicRecords = append(profile.PublicRecords, NormalizePublicRecord(raw, now))
	}
	for _, raw := range report.Collections {
		profile.Collections = append(profile.Collections, NormalizeCollection(raw, now))
	}
	for _, raw := range report.Inquiries {
		profile.Inquiries = append(profile.Inquiries, NormalizeInquiry(raw, now))
	}

	profile.Summary = AggregateByType(profile.Accounts, report.Summary)
	profile.Derogatory = CalculateDerogatoryMarks(profile.Accounts, profile.PublicRecords, BureauSummaryFrom(report.Summary))
	profile.Score = NormalizeScore(report.Score)
	return profile
}
