package models

// Severity classifies the overall weight of derogatory marks.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// DerogatoryMarksSummary totals the negative events on a profile.
type DerogatoryMarksSummary struct {
	TotalCount           int      `json:"totalCount"`
	LatePayments         int      `json:"latePayments"`
	Collections          int      `json:"collections"`
	PublicRecords        int      `json:"publicRecords"`
	ChargeOffs           int      `json:"chargeOffs"`
	EstimatedScoreImpact int      `json:"estimatedScoreImpact"`
	Severity             Severity `json:"severity"`
}
