package swift

import (
	"strings"

	"github.com/alovak/swift-alliance/internal/textwrap"
	"github.com/shopspring/decimal"
)

// MT103 field limits: wrapped fields carry at most 4 lines of 35 characters.
const (
	mtLineWidth = 35
	mtMaxLines  = 4
)

// GenerateMT103 renders the payment as a fixed-tag MT103 text block. The
// mapping is deterministic for a given Payment.
//
// Over-length wrapped content (ordering name, beneficiary name, remittance)
// is truncated to fit, the last kept line is marked with a trailing '+', and
// a *FormatConstraintError naming the affected tags is returned together
// with the generated text. Callers that must not emit truncated messages
// check the error; the text is always complete and well-formed.
func GenerateMT103(p Payment) (string, error) {
	var b strings.Builder
	var truncatedTags []string

	writeTag := func(tag string, lines []string) {
		b.WriteString(":" + tag + ":")
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	writeTag("20", []string{p.Reference})
	writeTag("23B", []string{"CRED"})
	writeTag("32A", []string{p.ValueDate.Format("060102") + p.Currency + mtAmount(p.Amount)})

	name, ok := fitField(p.OrderingName)
	if !ok {
		truncatedTags = append(truncatedTags, ":50K:")
	}
	writeTag("50K", append([]string{"/" + p.OrderingAccount}, name...))

	name, ok = fitField(p.BeneficiaryName)
	if !ok {
		truncatedTags = append(truncatedTags, ":59:")
	}
	block := []string{}
	if p.BeneficiaryBIC != "" {
		block = append(block, p.BeneficiaryBIC)
	}
	block = append(block, "/"+p.BeneficiaryAccount)
	writeTag("59", append(block, name...))

	if p.RemittanceInfo != "" {
		info, ok := fitField(p.RemittanceInfo)
		if !ok {
			truncatedTags = append(truncatedTags, ":70:")
		}
		writeTag("70", info)
	}

	b.WriteString(":71A:OUR")

	if len(truncatedTags) > 0 {
		return b.String(), &FormatConstraintError{
			Tag:    strings.Join(truncatedTags, ", "),
			Reason: "content exceeds 4 lines of 35 characters, remainder truncated",
		}
	}
	return b.String(), nil
}

// fitField wraps free text into the 4x35 budget. On overflow the last kept
// line ends with '+' so the cut is visible in the message itself.
func fitField(s string) ([]string, bool) {
	lines, truncated := textwrap.Fit(s, mtLineWidth, mtMaxLines)
	if truncated {
		last := lines[len(lines)-1]
		if len(last) >= mtLineWidth {
			last = last[:mtLineWidth-1]
		}
		lines[len(lines)-1] = last + "+"
	}
	return lines, !truncated
}

// mtAmount renders the exact amount with a comma as the fractional separator
// and at least two fractional digits, preserving any extra exact digits.
func mtAmount(d decimal.Decimal) string {
	s := d.String()
	if d.Exponent() > -2 {
		s = d.StringFixed(2)
	}
	return strings.Replace(s, ".", ",", 1)
}
