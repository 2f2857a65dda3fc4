package policy

import (
	"testing"

	"exposure/internal/core/tabular"
	perr "exposure/internal/platform/errors"
)

// rawPolicies builds a raw string-typed table the way the codecs deliver one
func rawPolicies(t *testing.T, header []string, rows [][]string) *tabular.Table {
	t.Helper()
	tb := tabular.New(header)
	for _, r := range rows {
		cells := make([]tabular.Cell, len(r))
		for i, v := range r {
			cells[i] = tabular.StringCell(v)
		}
		tb.AppendRow(cells)
	}
	return tb
}

func fullHeader() []string {
	return []string{
		ColPolicyNumber, ColUY, ColLOB, ColSubLOB, ColPolicyType, ColBusinessID,
		ColCedingCompany, ColMGA, ColVenue, ColEffectiveDate, ColExpirationDate,
		ColAnnualPremium, ColLimitPerOccurrence, ColLimitAggregate, ColAttachmentPoint, ColShare,
	}
}

func TestNormalizeCoercesAndDerives(t *testing.T) {
	raw := rawPolicies(t, fullHeader(), [][]string{
		{"P-001", "2023", "GL", "Premises", "Primary", "T-01", "Acme Re", "N/A", "TX",
			"2023-04-15", "2024-04-15", "$125,000", "2000000", "4000000", "0", "0.25"},
		{"P-002", "2022", "Auto", "Fleet", "XS", "T-02", "Beta Ins", "Summit MGA", "CA",
			"not a date", "2023-07-01", "oops", "6,000,000", "", "1500000", "0.5"},
	})

	n := New(Options{Presence: RequireFull})
	got, err := n.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	// typed coercions
	if d, ok := got.Cell(0, ColEffectiveDate).Date(); !ok || d.Format("2006-01-02") != "2023-04-15" {
		t.Fatalf("effective date not coerced: %v %v", d, ok)
	}
	if !got.Cell(1, ColEffectiveDate).IsNull() {
		t.Fatalf("unparseable date should be null, got %q", got.Cell(1, ColEffectiveDate).Key())
	}
	if p, ok := got.Cell(0, ColAnnualPremium).Number(); !ok || p != 125000 {
		t.Fatalf("currency premium not coerced: %v %v", p, ok)
	}
	if !got.Cell(1, ColAnnualPremium).IsNull() {
		t.Fatalf("bad premium should be null")
	}

	// derived columns
	if v := got.Cell(0, ColMGAFlag).Key(); v != FlagNoMGA {
		t.Fatalf("MGA_Flag row 0 = %q", v)
	}
	if v := got.Cell(1, ColMGAFlag).Key(); v != FlagMGA {
		t.Fatalf("MGA_Flag row 1 = %q", v)
	}
	if v := got.Cell(0, ColLimitBand).Key(); v != "$2M" {
		t.Fatalf("Limit_Band row 0 = %q", v)
	}
	if v := got.Cell(1, ColLimitBand).Key(); v != "$10M+" {
		t.Fatalf("Limit_Band row 1 = %q", v)
	}
	if v := got.Cell(0, ColAttachmentBand).Key(); v != "$0 (Primary)" {
		t.Fatalf("Attachment_Band row 0 = %q", v)
	}
	if x, ok := got.Cell(0, ColExposedLimit).Number(); !ok || x != 500000 {
		t.Fatalf("Exposed_Limit row 0 = %v %v", x, ok)
	}
	if v := got.Cell(0, ColInceptionMonth).Key(); v != "2023-04-01" {
		t.Fatalf("Inception_Month row 0 = %q", v)
	}

	// raw input untouched
	if raw.Cell(0, ColAnnualPremium).Kind() != tabular.KindString {
		t.Fatalf("raw table was mutated")
	}
	if raw.HasColumn(ColLimitBand) {
		t.Fatalf("raw table gained derived columns")
	}
}

func TestNormalizeNullPropagatesThroughDerivations(t *testing.T) {
	raw := rawPolicies(t, fullHeader(), [][]string{
		{"P-003", "2023", "GL", "", "", "", "", "", "", "", "", "", "", "", "", "0.5"},
	})

	got, err := New(Options{Presence: RequireFull}).Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	// null limit: band and exposed limit both null, no default top bucket
	if !got.Cell(0, ColLimitBand).IsNull() {
		t.Fatalf("null limit should band to null, got %q", got.Cell(0, ColLimitBand).Key())
	}
	if !got.Cell(0, ColAttachmentBand).IsNull() {
		t.Fatalf("null attachment should band to null")
	}
	if !got.Cell(0, ColExposedLimit).IsNull() {
		t.Fatalf("exposed limit should be null when limit is null")
	}
	// missing MGA flags as No MGA via the sentinel
	if v := got.Cell(0, ColMGAFlag).Key(); v != FlagNoMGA {
		t.Fatalf("missing MGA should flag %q, got %q", FlagNoMGA, v)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := rawPolicies(t, fullHeader(), [][]string{
		{"P-001", "2023", "GL", "Premises", "Primary", "T-01", "Acme Re", "N/A", "TX",
			"2023-04-15", "2024-04-15", "125000", "2000000", "4000000", "0", "0.25"},
	})
	n := New(Options{Presence: RequireFull})

	once, err := n.Normalize(raw)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	twice, err := n.Normalize(once)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}

	c1, c2 := once.Columns(), twice.Columns()
	if len(c1) != len(c2) {
		t.Fatalf("column count changed: %d -> %d", len(c1), len(c2))
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("column order changed at %d: %q -> %q", i, c1[i], c2[i])
		}
	}
	for i := 0; i < once.Len(); i++ {
		for _, col := range c1 {
			if a, b := once.Cell(i, col).Key(), twice.Cell(i, col).Key(); a != b {
				t.Fatalf("cell %d/%s changed: %q -> %q", i, col, a, b)
			}
		}
	}
}

func TestNormalizePresencePolicies(t *testing.T) {
	missingCore := rawPolicies(t, []string{"Foo", "Bar"}, nil)

	if _, err := New(Options{Presence: RequireCore}).Normalize(missingCore); !perr.IsCode(err, perr.ErrorCodeMissingSchema) {
		t.Fatalf("RequireCore should fail without Policy_Number, got %v", err)
	}
	if _, err := New(Options{Presence: Lenient}).Normalize(missingCore); !perr.IsCode(err, perr.ErrorCodeMissingSchema) {
		t.Fatalf("Lenient should fail with zero schema overlap, got %v", err)
	}

	partial := rawPolicies(t, []string{ColPolicyNumber, ColLOB}, [][]string{{"P-1", "GL"}})
	if _, err := New(Options{Presence: RequireFull}).Normalize(partial); !perr.IsCode(err, perr.ErrorCodeMissingSchema) {
		t.Fatalf("RequireFull should fail on partial schema, got %v", err)
	}
	got, err := New(Options{Presence: RequireCore}).Normalize(partial)
	if err != nil {
		t.Fatalf("RequireCore should tolerate partial schema: %v", err)
	}
	// guarded derivations: no MGA column, no MGA_Flag
	if got.HasColumn(ColMGAFlag) || got.HasColumn(ColLimitBand) {
		t.Fatalf("derivations should be skipped for absent sources")
	}
}

func TestCoerceDateForms(t *testing.T) {
	tests := []struct {
		name string
		in   tabular.Cell
		want string // Key form, "" means null
	}{
		{"iso", tabular.StringCell("2023-04-15"), "2023-04-15"},
		{"us slash", tabular.StringCell("04/15/2023"), "2023-04-15"},
		{"datetime", tabular.StringCell("2023-04-15 00:00:00"), "2023-04-15"},
		{"excel serial number", tabular.NumberCell(45031), "2023-04-15"},
		{"excel serial text", tabular.StringCell("45031"), "2023-04-15"},
		{"garbage", tabular.StringCell("soon"), ""},
		{"null", tabular.NullCell(), ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := coerceDate(tc.in).Key(); got != tc.want {
				t.Fatalf("coerceDate = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCoerceNumberForms(t *testing.T) {
	tests := []struct {
		name string
		in   tabular.Cell
		want tabular.Cell
	}{
		{"plain", tabular.StringCell("1250000"), tabular.NumberCell(1250000)},
		{"currency", tabular.StringCell("$1,250,000"), tabular.NumberCell(1250000)},
		{"fraction", tabular.StringCell("0.25"), tabular.NumberCell(0.25)},
		{"accounting negative", tabular.StringCell("(500)"), tabular.NumberCell(-500)},
		{"na marker", tabular.StringCell("NA"), tabular.NullCell()},
		{"garbage", tabular.StringCell("a lot"), tabular.NullCell()},
		{"already numeric", tabular.NumberCell(7), tabular.NumberCell(7)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := coerceNumber(tc.in)
			if got.Kind() != tc.want.Kind() || got.Key() != tc.want.Key() {
				t.Fatalf("coerceNumber = %v/%q, want %v/%q", got.Kind(), got.Key(), tc.want.Kind(), tc.want.Key())
			}
		})
	}
}
