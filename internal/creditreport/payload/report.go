package payload

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errNotObject = errors.New("payload: expected JSON object")

// RawAccount is one bureau tradeline with field-name variants already
// resolved. Loosely typed fields stay as Value.
type RawAccount struct {
	ID             string
	CreditorName   string
	AccountType    string
	AccountNumber  string
	PaymentStatus  string
	Balance        Value
	CreditLimit    Value
	MinimumPayment Value
	MonthlyPayment Value
	OpenDate       Value
	LastPayment    Value
	// AccountOpen is nil when the bureau omitted the flag.
	AccountOpen *bool
	// Negative is nil when the bureau omitted the flag.
	Negative       *bool
	PaymentHistory []RawHistoryYear
}

func (a *RawAccount) UnmarshalJSON(b []byte) error {
	o := decodeObject(b)
	if o == nil {
		return errNotObject
	}
	*a = RawAccount{
		ID:             o.text("id", "accountId", "tradelineId"),
		CreditorName:   o.text("creditorName", "accountName", "subscriberName", "creditor"),
		AccountType:    o.text("accountType", "type", "portfolioType"),
		AccountNumber:  o.text("accountNumber", "accountNumberMasked"),
		PaymentStatus:  o.text("paymentStatus", "accountStatus", "status"),
		Balance:        o.value("balance", "currentBalance"),
		CreditLimit:    o.value("creditLimit", "limit", "highCredit"),
		MinimumPayment: o.value("minimumPayment", "scheduledPayment"),
		MonthlyPayment: o.value("monthlyPayment", "actualPayment"),
		OpenDate:       o.value("openDate", "dateOpened"),
		LastPayment:    o.value("lastPaymentDate", "dateOfLastPayment"),
		AccountOpen:    o.flag("accountOpen", "isOpen"),
		Negative:       o.flag("isNegative", "negative", "derogatory"),
		PaymentHistory: list[RawHistoryYear](o, "paymentHistory", "payStatusHistory"),
	}
	return nil
}

// RawMonth is one reported month slot. Bureaus encode a slot either as a
// {monthType, value} pair or as a bare status code; Coded tells them apart.
type RawMonth struct {
	Month     int
	MonthType string
	Value     string
	Code      string
	Coded     bool
}

// RawHistoryYear is the set of month slots a bureau reported for one year.
// Months are ordered January to December; absent slots are omitted.
type RawHistoryYear struct {
	Year   int
	Months []RawMonth
}

var monthAliases = [12][]string{
	{"jan", "january", "1", "01"},
	{"feb", "february", "2", "02"},
	{"mar", "march", "3", "03"},
	{"apr", "april", "4", "04"},
	{"may", "5", "05"},
	{"jun", "june", "6", "06"},
	{"jul", "july", "7", "07"},
	{"aug", "august", "8", "08"},
	{"sep", "sept", "september", "9", "09"},
	{"oct", "october", "10"},
	{"nov", "november", "11"},
	{"dec", "december", "12"},
}

func (y *RawHistoryYear) UnmarshalJSON(b []byte) error {
	o := decodeObject(b)
	if o == nil {
		return errNotObject
	}
	year, ok := parseYear(o.value("year"))
	if !ok {
		return errors.New("payload: history entry without year")
	}

	container := o
	if raw, ok := o.raw("months", "monthlyStatus"); ok {
		if nested := decodeObject(raw); nested != nil {
			container = nested
		}
	}
	slots := make(map[string]json.RawMessage, len(container))
	for k, v := range container {
		slots[strings.ToLower(strings.TrimSpace(k))] = v
	}

	*y = RawHistoryYear{Year: year}
	for i, aliases := range monthAliases {
		for _, alias := range aliases {
			raw, ok := slots[alias]
			if !ok || isNull(raw) {
				continue
			}
			if m, ok := parseMonth(raw); ok {
				m.Month = i + 1
				y.Months = append(y.Months, m)
			}
			break
		}
	}
	return nil
}

func parseYear(v Value) (int, bool) {
	switch x := v.Raw().(type) {
	case float64:
		if x >= 1 && x == float64(int(x)) {
			return int(x), true
		}
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err == nil && n >= 1 {
			return n, true
		}
	}
	return 0, false
}

func parseMonth(raw json.RawMessage) (RawMonth, bool) {
	var code string
	if err := json.Unmarshal(raw, &code); err == nil {
		return RawMonth{Code: code, Coded: true}, true
	}
	o := decodeObject(raw)
	if o == nil {
		return RawMonth{}, false
	}
	return RawMonth{
		MonthType: o.text("monthType", "type"),
		Value:     o.text("value", "status"),
	}, true
}

// RawBucket is one pre-aggregated bucket of a bureau account summary.
type RawBucket struct {
	Open         Value
	WithBalance  Value
	TotalBalance Value
	Available    Value
	CreditLimit  Value
	DebtToCredit Value
	Payment      Value
}

func (r *RawBucket) UnmarshalJSON(b []byte) error {
	o := decodeObject(b)
	if o == nil {
		return errNotObject
	}
	*r = RawBucket{
		Open:         o.value("open", "openAccounts", "count"),
		WithBalance:  o.value("withBalance", "accountsWithBalance"),
		TotalBalance: o.value("totalBalance", "balance"),
		Available:    o.value("available", "availableCredit"),
		CreditLimit:  o.value("creditLimit", "limit", "highCredit"),
		DebtToCredit: o.value("debtToCredit", "debtToCreditRatio"),
		Payment:      o.value("payment", "monthlyPayment"),
	}
	return nil
}

// RawAccountSummary is the bureau-supplied aggregate over all tradelines.
// Buckets are nil when the bureau omitted them.
type RawAccountSummary struct {
	Revolving             *RawBucket
	Mortgage              *RawBucket
	Installment           *RawBucket
	Other                 *RawBucket
	TotalNegativeAccounts Value
}

func (s *RawAccountSummary) UnmarshalJSON(b []byte) error {
	o := decodeObject(b)
	if o == nil {
		return errNotObject
	}
	*s = RawAccountSummary{
		Revolving:             bucket(o, "revolving", "revolvingAccounts"),
		Mortgage:              bucket(o, "mortgage", "realEstate", "mortgageAccounts"),
		Installment:           bucket(o, "installment", "installmentAccounts"),
		Other:                 bucket(o, "other", "otherAccounts"),
		TotalNegativeAccounts: o.value("totalNegativeAccounts", "negativeAccounts", "derogatoryAccounts"),
	}
	return nil
}

func bucket(o object, keys ...string) *RawBucket {
	raw, ok := o.raw(keys...)
	if !ok {
		return nil
	}
	var rb RawBucket
	if err := json.Unmarshal(raw, &rb); err != nil {
		return nil
	}
	return &rb
}

// RawPublicRecord is a bureau public record entry.
type RawPublicRecord struct {
	ID                  string
	Type                string
	Status              string
	Court               string
	CaseNumber          string
	Description         string
	FilingDate          Value
	Amount              Value
	ExpectedRemovalDate Value
}

func (r *RawPublicRecord) UnmarshalJSON(b []byte) error {
	o := decodeObject(b)
	if o == nil {
		return errNotObject
	}
	*r = RawPublicRecord{
		ID:                  o.text("id", "recordId"),
		Type:                o.text("type", "recordType", "publicRecordType"),
		Status:              o.text("status", "recordStatus"),
		Court:               o.text("court", "courtName"),
		CaseNumber:          o.text("caseNumber", "docketNumber", "referenceNumber"),
		Description:         o.text("description", "remarks"),
		FilingDate:          o.value("filingDate", "dateFiled", "filedDate"),
		Amount:              o.value("amount", "liability"),
		ExpectedRemovalDate: o.value("expectedRemovalDate", "estimatedRemovalDate"),
	}
	return nil
}

// RawCollection is a bureau collection entry.
type RawCollection struct {
	ID            string
	CreditorName  string
	AccountNumber string
	Status        string
	AgencyClient  string
	Amount        Value
	ReportedDate  Value
	AssignedDate  Value
}

func (c *RawCollection) UnmarshalJSON(b []byte) error {
	o := decodeObject(b)
	if o == nil {
		return errNotObject
	}
	*c = RawCollection{
		ID:            o.text("id", "collectionId"),
		CreditorName:  o.text("creditorName", "agencyName", "originalCreditor"),
		AccountNumber: o.text("accountNumber", "accountNumberMasked"),
		Status:        o.text("status", "accountStatus"),
		AgencyClient:  o.text("agencyClient", "clientName"),
		Amount:        o.value("amount", "balance", "currentBalance"),
		ReportedDate:  o.value("reportedDate", "dateReported"),
		AssignedDate:  o.value("assignedDate", "dateAssigned"),
	}
	return nil
}

// RawInquiry is a bureau inquiry entry.
type RawInquiry struct {
	CreditorName string
	Type         string
	Date         Value
}

func (i *RawInquiry) UnmarshalJSON(b []byte) error {
	o := decodeObject(b)
	if o == nil {
		return errNotObject
	}
	*i = RawInquiry{
		CreditorName: o.text("creditorName", "subscriberName", "inquirerName"),
		Type:         o.text("type", "inquiryType"),
		Date:         o.value("date", "inquiryDate"),
	}
	return nil
}

// RawScore is a bureau score block.
type RawScore struct {
	Score Value
	Model string
	Date  Value
}

func (s *RawScore) UnmarshalJSON(b []byte) error {
	o := decodeObject(b)
	if o == nil {
		// Some payloads report the score as a bare number.
		var v Value
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = RawScore{Score: v}
		return nil
	}
	*s = RawScore{
		Score: o.value("score", "value"),
		Model: o.text("model", "scoreModel", "scoreType"),
		Date:  o.value("date", "scoreDate", "generatedDate"),
	}
	return nil
}

// Report is the body of one provider view.
type Report struct {
	Accounts      []RawAccount
	Summary       *RawAccountSummary
	PublicRecords []RawPublicRecord
	Collections   []RawCollection
	Inquiries     []RawInquiry
	Score         *RawScore
}

var reportKeys = []string{
	"accounts", "tradelines", "tradeLines",
	"accountSummary", "summary",
	"publicRecords", "collections", "inquiries",
	"score", "creditScore",
}

func decodeReport(o object) Report {
	r := Report{
		Accounts:      list[RawAccount](o, "accounts", "tradelines", "tradeLines"),
		PublicRecords: list[RawPublicRecord](o, "publicRecords"),
		Collections:   list[RawCollection](o, "collections"),
		Inquiries:     list[RawInquiry](o, "inquiries"),
	}
	if raw, ok := o.raw("accountSummary", "summary"); ok {
		var s RawAccountSummary
		if err := json.Unmarshal(raw, &s); err == nil {
			r.Summary = &s
		}
	}
	if raw, ok := o.raw("score", "creditScore"); ok {
		var s RawScore
		if err := json.Unmarshal(raw, &s); err == nil {
			r.Score = &s
		}
	}
	return r
}
