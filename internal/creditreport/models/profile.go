package models

import "time"

// Bureau is the canonical identity of a credit-reporting agency.
type Bureau string

const (
	BureauEquifax    Bureau = "equifax"
	BureauTransUnion Bureau = "transunion"
	BureauExperian   Bureau = "experian"
)

// Bureaus lists every supported bureau in display order.
var Bureaus = []Bureau{BureauEquifax, BureauTransUnion, BureauExperian}

func (b Bureau) String() string {
	return string(b)
}

// IsZero reports whether b is unset.
func (b Bureau) IsZero() bool {
	return b == ""
}

// CreditScore is a bureau score attached to a report.
type CreditScore struct {
	Value int        `json:"value"`
	Model string     `json:"model,omitempty"`
	Date  *time.Time `json:"date,omitempty"`
}

// CreditProfile is the canonical model handed to the presentation layer for
// one provider view.
type CreditProfile struct {
	Bureau        Bureau                 `json:"bureau,omitempty"`
	Provider      string                 `json:"provider,omitempty"`
	Accounts      []Account              `json:"accounts"`
	Summary       AccountSummary         `json:"summary"`
	Derogatory    DerogatoryMarksSummary `json:"derogatory"`
	PublicRecords []PublicRecord         `json:"publicRecords"`
	Collections   []Collection           `json:"collections"`
	Inquiries     []CreditInquiry        `json:"inquiries"`
	Score         *CreditScore           `json:"score,omitempty"`
}

// EmptyProfile returns a profile with no data for bureau b. Slices are
// non-nil so the zero profile encodes as empty lists.
func EmptyProfile(b Bureau) CreditProfile {
	return CreditProfile{
		Bureau:        b,
		Accounts:      []Account{},
		Summary:       AccountSummary{Source: SummarySourceNone},
		Derogatory:    DerogatoryMarksSummary{Severity: SeverityNone},
		PublicRecords: []PublicRecord{},
		Collections:   []Collection{},
		Inquiries:     []CreditInquiry{},
	}
}
