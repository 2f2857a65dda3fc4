package agg

import (
	"testing"

	"exposure/internal/core/policy"
	"exposure/internal/core/tabular"
)

func chartTable(t *testing.T) *tabular.Table {
	t.Helper()
	tb := tabular.New([]string{
		policy.ColUY, policy.ColLOB, policy.ColAnnualPremium, policy.ColCedingCompany,
		policy.ColVenue, policy.ColExposedLimit, policy.ColLimitBand,
	})
	rows := []struct {
		uy      float64
		lob     string
		premium float64
		cedent  string
		venue   string
		exposed float64
		lband   string
	}{
		{2022, "GL", 100, "Acme Re", "TX", 1000, "$1M"},
		{2022, "GL", 50, "Beta Ins", "TX", 500, "$2M"},
		{2023, "GL", 200, "Acme Re", "CA", 2000, "$1M"},
		{2023, "Auto", 300, "Gamma Mut", "CA", 3000, "$10M+"},
		{2023, "Auto", 25, "Beta Ins", "FL", 250, "$2M"},
	}
	for _, r := range rows {
		tb.AppendRow([]tabular.Cell{
			tabular.NumberCell(r.uy), tabular.StringCell(r.lob), tabular.NumberCell(r.premium),
			tabular.StringCell(r.cedent), tabular.StringCell(r.venue),
			tabular.NumberCell(r.exposed), tabular.StringCell(r.lband),
		})
	}
	return tb
}

func TestPremiumByUYLOB(t *testing.T) {
	got := PremiumByUYLOB(chartTable(t))
	want := []PremiumCell{
		{UY: "2022", LOB: "GL", Premium: 150},
		{UY: "2023", LOB: "Auto", Premium: 325},
		{UY: "2023", LOB: "GL", Premium: 200},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTopCedents(t *testing.T) {
	got := TopCedents(chartTable(t), 2)
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].CedingCompany != "Acme Re" || got[0].Premium != 300 {
		t.Fatalf("top cedent = %+v", got[0])
	}
	if got[1].CedingCompany != "Gamma Mut" || got[1].Premium != 300 {
		t.Fatalf("tie should break on name: %+v", got[1])
	}
}

func TestVenueExposure(t *testing.T) {
	risk := map[string]RiskEntry{"TX": {Tier: "High", Score: 8.5}}
	got := VenueExposure(chartTable(t), risk)
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	// sorted by venue: CA, FL, TX
	if got[0].Venue != "CA" || got[0].Policies != 2 || got[0].ExposedLimit != 5000 {
		t.Fatalf("CA row = %+v", got[0])
	}
	if got[0].Risk != nil {
		t.Fatalf("CA should have no risk entry")
	}
	tx := got[2]
	if tx.Venue != "TX" || tx.Premium != 150 {
		t.Fatalf("TX row = %+v", tx)
	}
	if tx.Risk == nil || tx.Risk.Tier != "High" || tx.Risk.Score != 8.5 {
		t.Fatalf("TX risk = %+v", tx.Risk)
	}
}

func TestLOBByLimitBand(t *testing.T) {
	ct := LOBByLimitBand(chartTable(t))
	if len(ct.Bands) != 5 || ct.Bands[0] != "$1M" || ct.Bands[4] != "$10M+" {
		t.Fatalf("band order = %v", ct.Bands)
	}
	if len(ct.LOBs) != 2 || ct.LOBs[0] != "Auto" {
		t.Fatalf("lobs = %v", ct.LOBs)
	}
	gl := ct.Cells["GL"]
	if gl[0] != 2 || gl[1] != 1 || gl[4] != 0 {
		t.Fatalf("GL counts = %v", gl)
	}
	auto := ct.Cells["Auto"]
	if auto[1] != 1 || auto[4] != 1 {
		t.Fatalf("Auto counts = %v", auto)
	}
}

func TestAggregatesOnEmptyTable(t *testing.T) {
	empty := tabular.New([]string{policy.ColLOB})
	if got := PremiumByUYLOB(empty); len(got) != 0 {
		t.Fatalf("premium agg on empty = %v", got)
	}
	if got := TopCedents(empty, 10); len(got) != 0 {
		t.Fatalf("cedents on empty = %v", got)
	}
	if got := VenueExposure(empty, nil); len(got) != 0 {
		t.Fatalf("venues on empty = %v", got)
	}
	if ct := LOBByLimitBand(empty); len(ct.LOBs) != 0 {
		t.Fatalf("crosstab on empty = %+v", ct)
	}
}
