package swift

import (
	"encoding/xml"
	"fmt"
	"time"
)

// DefaultPain001Namespace is the document namespace used when the caller
// does not configure one. The schema itself stays an external input; see
// ValidatePain001.
const DefaultPain001Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"

// Pain001Option adjusts pain.001 generation.
type Pain001Option func(*pain001Options)

type pain001Options struct {
	namespace string
	now       func() time.Time
}

// WithNamespace overrides the document namespace, for schema profiles other
// than the default revision.
func WithNamespace(ns string) Pain001Option {
	return func(o *pain001Options) { o.namespace = ns }
}

// WithCreationTime pins the group-header creation timestamp, the one field
// that otherwise varies between calls.
func WithCreationTime(t time.Time) Pain001Option {
	return func(o *pain001Options) { o.now = func() time.Time { return t } }
}

type pain001Party struct {
	Nm string `xml:"Nm"`
}

type pain001Account struct {
	IBAN string `xml:"Id>IBAN"`
}

type pain001Amount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

type pain001Agent struct {
	BIC string `xml:"FinInstnId>BIC"`
}

type pain001Transaction struct {
	EndToEndID string         `xml:"PmtId>EndToEndId"`
	InstdAmt   pain001Amount  `xml:"Amt>InstdAmt"`
	CdtrAgt    *pain001Agent  `xml:"CdtrAgt,omitempty"`
	Cdtr       pain001Party   `xml:"Cdtr"`
	CdtrAcct   pain001Account `xml:"CdtrAcct"`
	Ustrd      string         `xml:"RmtInf>Ustrd,omitempty"`
}

type pain001PaymentInfo struct {
	PmtInfID    string             `xml:"PmtInfId"`
	PmtMtd      string             `xml:"PmtMtd"`
	ReqdExctnDt string             `xml:"ReqdExctnDt"`
	Dbtr        pain001Party       `xml:"Dbtr"`
	DbtrAcct    pain001Account     `xml:"DbtrAcct"`
	Tx          pain001Transaction `xml:"CdtTrfTxInf"`
}

type pain001GroupHeader struct {
	MsgID    string       `xml:"MsgId"`
	CreDtTm  string       `xml:"CreDtTm"`
	NbOfTxs  string       `xml:"NbOfTxs"`
	CtrlSum  string       `xml:"CtrlSum"`
	InitgPty pain001Party `xml:"InitgPty"`
}

type pain001Document struct {
	XMLName xml.Name           `xml:"Document"`
	Xmlns   string             `xml:"xmlns,attr"`
	GrpHdr  pain001GroupHeader `xml:"CstmrCdtTrfInitn>GrpHdr"`
	PmtInf  pain001PaymentInfo `xml:"CstmrCdtTrfInitn>PmtInf"`
}

// GeneratePain001 renders the payment as a single-transaction customer
// credit transfer initiation document. Apart from the creation timestamp
// every element is a deterministic function of the Payment; the control sum
// and the instructed amount are emitted from the same rendering and are
// textually identical.
//
// Amounts carrying more than two exact fraction digits cannot be represented
// with the required two-digit rendering and are rejected with a
// *FormatConstraintError rather than silently rounded.
func GeneratePain001(p Payment, opts ...Pain001Option) (string, error) {
	o := pain001Options{namespace: DefaultPain001Namespace, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if p.Amount.Exponent() < -2 {
		return "", &FormatConstraintError{
			Tag:    "InstdAmt",
			Reason: "amount has more than two fractional digits",
		}
	}
	amount := p.Amount.StringFixed(2)

	doc := pain001Document{
		Xmlns: o.namespace,
		GrpHdr: pain001GroupHeader{
			MsgID:    "MSG-" + p.Reference,
			CreDtTm:  o.now().UTC().Format("2006-01-02T15:04:05"),
			NbOfTxs:  "1",
			CtrlSum:  amount,
			InitgPty: pain001Party{Nm: p.OrderingName},
		},
		PmtInf: pain001PaymentInfo{
			PmtInfID:    "PMT-" + p.Reference,
			PmtMtd:      "TRF",
			ReqdExctnDt: p.ValueDate.Format("2006-01-02"),
			Dbtr:        pain001Party{Nm: p.OrderingName},
			DbtrAcct:    pain001Account{IBAN: p.OrderingAccount},
			Tx: pain001Transaction{
				EndToEndID: p.Reference,
				InstdAmt:   pain001Amount{Ccy: p.Currency, Value: amount},
				Cdtr:       pain001Party{Nm: p.BeneficiaryName},
				CdtrAcct:   pain001Account{IBAN: p.BeneficiaryAccount},
				Ustrd:      p.RemittanceInfo,
			},
		},
	}
	if p.BeneficiaryBIC != "" {
		doc.PmtInf.Tx.CdtrAgt = &pain001Agent{BIC: p.BeneficiaryBIC}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling pain.001 document: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}
