package normalize

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"creditguard/internal/creditreport/extract"
	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/payload"
	"creditguard/internal/creditreport/vocab"
)

// NormalizePublicRecord converts one bureau public record. The filing date
// falls back to now; the removal date is omitted when unparseable.
func NormalizePublicRecord(raw payload.RawPublicRecord, now time.Time) models.PublicRecord {
	rec := models.PublicRecord{
		ID:                  orPlaceholder(raw.ID, publicRecordNamespace, raw.Type, raw.CaseNumber, raw.Court, raw.FilingDate.Raw()),
		Type:                vocab.PublicRecordType(raw.Type),
		Status:              vocab.PublicRecordStatus(raw.Status),
		FilingDate:          extract.Date(raw.FilingDate.Raw(), now),
		Court:               strings.TrimSpace(raw.Court),
		CaseNumber:          strings.TrimSpace(raw.CaseNumber),
		Description:         strings.TrimSpace(raw.Description),
		ExpectedRemovalDate: extract.OptionalDate(raw.ExpectedRemovalDate.Raw()),
	}
	if amount, ok := extract.Amount(raw.Amount.Raw()); ok {
		rec.Amount = &amount
	}
	if rec.Description == "" {
		rec.Description = strings.TrimSpace(raw.Type)
	}
	return rec
}

// NormalizeCollection converts one bureau collection entry.
func NormalizeCollection(raw payload.RawCollection, now time.Time) models.Collection {
	return models.Collection{
		ID:            orPlaceholder(raw.ID, collectionNamespace, raw.CreditorName, raw.AccountNumber, raw.ReportedDate.Raw()),
		CreditorName:  orDefault(raw.CreditorName, UnknownCreditor),
		AccountNumber: orDefault(raw.AccountNumber, UnavailableAccountNo),
		Amount:        extract.Money(raw.Amount.Raw()),
		Status:        vocab.CollectionStatus(raw.Status),
		ReportedDate:  extract.Date(raw.ReportedDate.Raw(), now),
		AssignedDate:  extract.OptionalDate(raw.AssignedDate.Raw()),
		AgencyClient:  strings.TrimSpace(raw.AgencyClient),
	}
}

// NormalizeInquiry converts one bureau inquiry.
func NormalizeInquiry(raw payload.RawInquiry, now time.Time) models.CreditInquiry {
	return models.CreditInquiry{
		Date:         extract.Date(raw.Date.Raw(), now),
		CreditorName: orDefault(raw.CreditorName, UnknownCreditor),
		Type:         vocab.InquiryType(raw.Type),
	}
}

// Score bounds of the bureau scoring models.
const (
	MinScore = 300
	MaxScore = 850
)

// NormalizeScore returns nil when the bureau sent no usable score.
func NormalizeScore(raw *payload.RawScore) *models.CreditScore {
	if raw == nil {
		return nil
	}
	value, ok := extract.Int(raw.Score.Raw())
	if !ok {
		return nil
	}
	return &models.CreditScore{
		Value: min(max(value, MinScore), MaxScore),
		Model: strings.TrimSpace(raw.Model),
		Date:  extract.OptionalDate(raw.Date.Raw()),
	}
}

func orPlaceholder(id string, ns uuid.UUID, parts ...any) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return placeholderID(ns, parts...)
}
