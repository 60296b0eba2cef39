package swift

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateMT103(t *testing.T) {
	p, err := NewPayment(validInput())
	require.NoError(t, err)

	text, err := GenerateMT103(p)
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	require.Equal(t, ":20:REF001", lines[0])
	require.Equal(t, ":23B:CRED", lines[1])
	require.Equal(t, ":32A:240601EUR1234,56", lines[2])
	require.Equal(t, ":50K:/DE89370400440532013000", lines[3])
	require.Equal(t, "Acme GmbH", lines[4])
	require.Equal(t, ":59:/FR1420041010050500013M02606", lines[5])
	require.Equal(t, "Globex SA", lines[6])
	require.Equal(t, ":70:Invoice 123", lines[7])
	require.Equal(t, ":71A:OUR", lines[8])
	require.Len(t, lines, 9)
}

func TestGenerateMT103_BICLine(t *testing.T) {
	in := validInput()
	in.BeneficiaryBIC = "BNPAFRPP"
	p, err := NewPayment(in)
	require.NoError(t, err)

	text, err := GenerateMT103(p)
	require.NoError(t, err)
	require.Contains(t, text, ":59:BNPAFRPP\n/FR1420041010050500013M02606\nGlobex SA")
}

func TestGenerateMT103_OmitsEmptyRemittance(t *testing.T) {
	in := validInput()
	in.RemittanceInfo = ""
	p, err := NewPayment(in)
	require.NoError(t, err)

	text, err := GenerateMT103(p)
	require.NoError(t, err)
	require.NotContains(t, text, ":70:")
}

func TestGenerateMT103_AmountRendering(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1234.56", "1234,56"},
		{"10", "10,00"},
		{"10.5", "10,50"},
		{"0.567", "0,567"}, // exact digits beyond two are preserved
	}
	for _, tt := range tests {
		in := validInput()
		in.Amount = tt.amount
		p, err := NewPayment(in)
		require.NoError(t, err)

		text, err := GenerateMT103(p)
		require.NoError(t, err)
		require.Contains(t, text, ":32A:240601EUR"+tt.want, "amount %s", tt.amount)
	}
}

func TestGenerateMT103_Idempotent(t *testing.T) {
	p, err := NewPayment(validInput())
	require.NoError(t, err)

	a, err := GenerateMT103(p)
	require.NoError(t, err)
	b, err := GenerateMT103(p)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerateMT103_RemittanceBoundary(t *testing.T) {
	// 140 characters fill the 4x35 budget exactly: no overflow.
	in := validInput()
	in.RemittanceInfo = strings.Repeat("R", 140)
	p, err := NewPayment(in)
	require.NoError(t, err)

	text, err := GenerateMT103(p)
	require.NoError(t, err)

	var fieldLines []string
	for _, f := range parseMTFields(text) {
		if f.tag == "70" {
			fieldLines = f.lines
		}
	}
	require.Len(t, fieldLines, 4)
	for _, l := range fieldLines {
		require.Len(t, l, 35)
	}
}

func TestGenerateMT103_RemittanceOverflowTruncates(t *testing.T) {
	in := validInput()
	in.RemittanceInfo = strings.Repeat("R", 141)
	p, err := NewPayment(in)
	require.NoError(t, err)

	text, err := GenerateMT103(p)
	require.Error(t, err)

	var fce *FormatConstraintError
	require.ErrorAs(t, err, &fce)
	require.Contains(t, fce.Tag, ":70:")

	// The truncated text is still produced, fits the budget and ends the
	// last kept line with the truncation marker.
	require.NotEmpty(t, text)
	var fieldLines []string
	for _, f := range parseMTFields(text) {
		if f.tag == "70" {
			fieldLines = f.lines
		}
	}
	require.Len(t, fieldLines, 4)
	require.True(t, strings.HasSuffix(fieldLines[3], "+"))
	for _, l := range fieldLines {
		require.LessOrEqual(t, len(l), 35)
	}

	valid, issues := ValidateMT103(text)
	require.True(t, valid, "issues: %v", issues)
}

func TestGenerateMT103_RoundtripsThroughValidator(t *testing.T) {
	inputs := []PaymentInput{
		validInput(),
		{
			OrderingAccount:    "GB29NWBK60161331926819",
			OrderingName:       "Longname Industrial Holdings International Limited",
			BeneficiaryAccount: "NL91ABNA0417164300",
			BeneficiaryName:    "Tulip Logistics BV",
			BeneficiaryBIC:     "ABNANL2A",
			Amount:             "99999.99",
			Currency:           "GBP",
			ValueDate:          "2025-01-15",
		},
	}
	for _, in := range inputs {
		p, err := NewPayment(in)
		require.NoError(t, err)

		text, err := GenerateMT103(p)
		require.NoError(t, err)

		valid, issues := ValidateMT103(text)
		require.True(t, valid, "issues: %v", issues)

		// Each mandatory tag exactly once.
		for _, tag := range []string{":20:", ":23B:", ":32A:", ":50K:", ":59:", ":71A:"} {
			require.Equal(t, 1, strings.Count(text, tag), "tag %s", tag)
		}
	}
}
