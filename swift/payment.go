// Package swift converts a canonical payment instruction into two regulated
// message encodings, a fixed-tag MT103 text block and an ISO 20022 pain.001
// XML document, and validates each against its own rules.
package swift

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ibanShape     = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)
	bicShape      = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	currencyShape = regexp.MustCompile(`^[A-Z]{3}$`)
)

// PaymentInput carries the raw field values a caller collected, all strings.
// Blank optional fields take the documented defaults during construction.
type PaymentInput struct {
	OrderingAccount    string
	OrderingName       string
	BeneficiaryAccount string
	BeneficiaryName    string
	BeneficiaryBIC     string
	Amount             string
	Currency           string
	ValueDate          string
	RemittanceInfo     string
	Reference          string
}

// Payment is one validated payment instruction. It is built once per request
// by NewPayment and never mutated afterwards; both generators consume it as
// a value.
type Payment struct {
	OrderingAccount    string
	OrderingName       string
	BeneficiaryAccount string
	BeneficiaryName    string
	BeneficiaryBIC     string
	Amount             decimal.Decimal
	Currency           string
	ValueDate          time.Time
	RemittanceInfo     string
	Reference          string
}

// NewPayment validates raw input and returns a Payment, or an *InputError
// naming the offending field. The generated default reference is the one
// non-pure default: it is unique per call.
func NewPayment(in PaymentInput) (Payment, error) {
	var p Payment

	p.OrderingAccount = strings.ToUpper(strings.TrimSpace(in.OrderingAccount))
	if p.OrderingAccount == "" {
		return Payment{}, &InputError{Field: "ordering_account", Reason: "must not be empty"}
	}
	if !ibanShape.MatchString(p.OrderingAccount) {
		return Payment{}, &InputError{Field: "ordering_account", Reason: "not an IBAN-shaped identifier"}
	}
	p.OrderingName = strings.TrimSpace(in.OrderingName)
	if p.OrderingName == "" {
		return Payment{}, &InputError{Field: "ordering_name", Reason: "must not be empty"}
	}
	p.BeneficiaryAccount = strings.ToUpper(strings.TrimSpace(in.BeneficiaryAccount))
	if p.BeneficiaryAccount == "" {
		return Payment{}, &InputError{Field: "beneficiary_account", Reason: "must not be empty"}
	}
	if !ibanShape.MatchString(p.BeneficiaryAccount) {
		return Payment{}, &InputError{Field: "beneficiary_account", Reason: "not an IBAN-shaped identifier"}
	}
	p.BeneficiaryName = strings.TrimSpace(in.BeneficiaryName)
	if p.BeneficiaryName == "" {
		return Payment{}, &InputError{Field: "beneficiary_name", Reason: "must not be empty"}
	}

	amt, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil {
		return Payment{}, &InputError{Field: "amount", Reason: "not a decimal number"}
	}
	if !amt.IsPositive() {
		return Payment{}, &InputError{Field: "amount", Reason: "must be greater than zero"}
	}
	p.Amount = amt

	cur := strings.ToUpper(strings.TrimSpace(in.Currency))
	if cur == "" {
		cur = "USD"
	}
	if !currencyShape.MatchString(cur) {
		return Payment{}, &InputError{Field: "currency", Reason: "must be a 3-letter code"}
	}
	p.Currency = cur

	vd := strings.TrimSpace(in.ValueDate)
	if vd == "" {
		p.ValueDate = time.Now().UTC()
	} else {
		d, err := time.Parse("2006-01-02", vd)
		if err != nil {
			return Payment{}, &InputError{Field: "value_date", Reason: "must be a YYYY-MM-DD date"}
		}
		p.ValueDate = d
	}

	bic := strings.ToUpper(strings.TrimSpace(in.BeneficiaryBIC))
	if bic != "" && !bicShape.MatchString(bic) {
		return Payment{}, &InputError{Field: "beneficiary_bic", Reason: "must be 8 or 11 characters matching the BIC shape"}
	}
	p.BeneficiaryBIC = bic

	p.RemittanceInfo = strings.TrimSpace(in.RemittanceInfo)

	ref := strings.TrimSpace(in.Reference)
	if ref == "" {
		ref = newReference()
	}
	p.Reference = ref

	return p, nil
}

// newReference derives a fresh 16-character transaction reference from a
// random UUID.
func newReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "REF" + strings.ToUpper(id[:13])
}
