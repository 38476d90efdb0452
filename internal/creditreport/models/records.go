package models

import "time"

// PublicRecordType classifies a public record.
type PublicRecordType string

const (
	PublicRecordBankruptcy    PublicRecordType = "bankruptcy"
	PublicRecordTaxLien       PublicRecordType = "tax_lien"
	PublicRecordCivilJudgment PublicRecordType = "civil_judgment"
	PublicRecordForeclosure   PublicRecordType = "foreclosure"
	PublicRecordCollection    PublicRecordType = "collection"
)

// PublicRecordStatus is the court status of a public record.
type PublicRecordStatus string

const (
	PublicRecordFiled     PublicRecordStatus = "filed"
	PublicRecordDismissed PublicRecordStatus = "dismissed"
	PublicRecordSatisfied PublicRecordStatus = "satisfied"
	PublicRecordActive    PublicRecordStatus = "active"
)

// PublicRecord is a court or government record reported by a bureau.
type PublicRecord struct {
	ID                  string             `json:"id"`
	Type                PublicRecordType   `json:"type"`
	Status              PublicRecordStatus `json:"status"`
	FilingDate          time.Time          `json:"filingDate"`
	Amount              *float64           `json:"amount,omitempty"`
	Court               string             `json:"court,omitempty"`
	CaseNumber          string             `json:"caseNumber,omitempty"`
	Description         string             `json:"description"`
	ExpectedRemovalDate *time.Time         `json:"expectedRemovalDate,omitempty"`
}

// Money is an amount with its currency code.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CollectionStatus is the agency-reported state of a collection.
type CollectionStatus string

const (
	CollectionOpen     CollectionStatus = "OPEN"
	CollectionClosed   CollectionStatus = "CLOSED"
	CollectionPaid     CollectionStatus = "PAID"
	CollectionSettled  CollectionStatus = "SETTLED"
	CollectionDisputed CollectionStatus = "DISPUTED"
)

// Collection is a debt placed with a collection agency.
type Collection struct {
	ID            string           `json:"id"`
	CreditorName  string           `json:"creditorName"`
	AccountNumber string           `json:"accountNumber"`
	Amount        Money            `json:"amount"`
	Status        CollectionStatus `json:"status"`
	ReportedDate  time.Time        `json:"reportedDate"`
	AssignedDate  *time.Time       `json:"assignedDate,omitempty"`
	AgencyClient  string           `json:"agencyClient,omitempty"`
}

// InquiryType tells hard pulls from soft pulls.
type InquiryType string

const (
	InquiryHard InquiryType = "hard"
	InquirySoft InquiryType = "soft"
)

// CreditInquiry is a request for the consumer's report by a creditor.
type CreditInquiry struct {
	Date         time.Time   `json:"date"`
	CreditorName string      `json:"creditorName"`
	Type         InquiryType `json:"type"`
}
