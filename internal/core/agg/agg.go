// Package agg computes the chart-backing aggregates over a filtered policy
// table: premium by underwriting year and line, top cedents, venue exposure,
// and the LOB by limit-band cross-tab. All functions tolerate empty input
// and missing columns, returning empty results rather than failing.
package agg

import (
	"sort"

	"exposure/internal/core/band"
	"exposure/internal/core/policy"
	"exposure/internal/core/tabular"
)

// PremiumCell is one (UY, LOB) premium total
type PremiumCell struct {
	UY      string  `json:"uy"`
	LOB     string  `json:"lob"`
	Premium float64 `json:"premium"`
}

// PremiumByUYLOB sums Annual_Premium per underwriting year and line of
// business, ordered by UY then LOB
func PremiumByUYLOB(t *tabular.Table) []PremiumCell {
	if !t.HasColumn(policy.ColUY) || !t.HasColumn(policy.ColLOB) || !t.HasColumn(policy.ColAnnualPremium) {
		return []PremiumCell{}
	}
	type key struct{ uy, lob string }
	sums := map[key]float64{}
	for i := 0; i < t.Len(); i++ {
		k := key{uy: t.Cell(i, policy.ColUY).Key(), lob: t.Cell(i, policy.ColLOB).Key()}
		if k.uy == "" || k.lob == "" {
			continue
		}
		p, _ := t.Cell(i, policy.ColAnnualPremium).Number()
		sums[k] += p
	}
	out := make([]PremiumCell, 0, len(sums))
	for k, v := range sums {
		out = append(out, PremiumCell{UY: k.uy, LOB: k.lob, Premium: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UY != out[j].UY {
			return out[i].UY < out[j].UY
		}
		return out[i].LOB < out[j].LOB
	})
	return out
}

// CedentPremium is one ceding company's premium total
type CedentPremium struct {
	CedingCompany string  `json:"ceding_company"`
	Premium       float64 `json:"premium"`
}

// TopCedents returns the limit highest-premium ceding companies, descending
// by premium with company name breaking ties
func TopCedents(t *tabular.Table, limit int) []CedentPremium {
	if !t.HasColumn(policy.ColCedingCompany) || !t.HasColumn(policy.ColAnnualPremium) {
		return []CedentPremium{}
	}
	sums := map[string]float64{}
	for i := 0; i < t.Len(); i++ {
		name := t.Cell(i, policy.ColCedingCompany).Key()
		if name == "" {
			continue
		}
		p, _ := t.Cell(i, policy.ColAnnualPremium).Number()
		sums[name] += p
	}
	out := make([]CedentPremium, 0, len(sums))
	for name, p := range sums {
		out = append(out, CedentPremium{CedingCompany: name, Premium: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Premium != out[j].Premium {
			return out[i].Premium > out[j].Premium
		}
		return out[i].CedingCompany < out[j].CedingCompany
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RiskEntry is one venue's judicial risk rating from the lookup sheet
type RiskEntry struct {
	Tier  string  `json:"tier"`
	Score float64 `json:"score"`
}

// VenueRow is one venue's rolled-up exposure, optionally enriched with its
// judicial risk rating when a lookup is supplied
type VenueRow struct {
	Venue        string     `json:"venue"`
	Policies     int        `json:"policies"`
	Premium      float64    `json:"premium"`
	ExposedLimit float64    `json:"exposed_limit"`
	Risk         *RiskEntry `json:"risk,omitempty"`
}

// VenueExposure groups by Venue, summing premium and exposed limit and
// counting policies. Rows with a null venue are dropped. When risk is
// non-nil, venues present in the lookup carry their rating
func VenueExposure(t *tabular.Table, risk map[string]RiskEntry) []VenueRow {
	if !t.HasColumn(policy.ColVenue) {
		return []VenueRow{}
	}
	rows := map[string]*VenueRow{}
	for i := 0; i < t.Len(); i++ {
		venue := t.Cell(i, policy.ColVenue).Key()
		if venue == "" {
			continue
		}
		r, ok := rows[venue]
		if !ok {
			r = &VenueRow{Venue: venue}
			rows[venue] = r
		}
		r.Policies++
		if p, ok := t.Cell(i, policy.ColAnnualPremium).Number(); ok {
			r.Premium += p
		}
		if x, ok := t.Cell(i, policy.ColExposedLimit).Number(); ok {
			r.ExposedLimit += x
		}
	}
	out := make([]VenueRow, 0, len(rows))
	for _, r := range rows {
		if e, ok := risk[r.Venue]; ok {
			entry := e
			r.Risk = &entry
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Venue < out[j].Venue })
	return out
}

// CrossTab is the LOB by limit-band policy-count matrix. Bands always appear
// in threshold order regardless of which bands the data hits; LOBs sort
// lexically
type CrossTab struct {
	Bands []string         `json:"bands"`
	LOBs  []string         `json:"lobs"`
	Cells map[string][]int `json:"cells"` // LOB -> count per band, band order
}

// LOBByLimitBand counts policies per (LOB, Limit_Band) pair
func LOBByLimitBand(t *tabular.Table) CrossTab {
	ct := CrossTab{Bands: band.LimitBands(), LOBs: []string{}, Cells: map[string][]int{}}
	if !t.HasColumn(policy.ColLOB) || !t.HasColumn(policy.ColLimitBand) {
		return ct
	}
	bandIdx := make(map[string]int, len(ct.Bands))
	for i, b := range ct.Bands {
		bandIdx[b] = i
	}
	for i := 0; i < t.Len(); i++ {
		lob := t.Cell(i, policy.ColLOB).Key()
		bi, ok := bandIdx[t.Cell(i, policy.ColLimitBand).Key()]
		if lob == "" || !ok {
			continue
		}
		row, seen := ct.Cells[lob]
		if !seen {
			row = make([]int, len(ct.Bands))
			ct.LOBs = append(ct.LOBs, lob)
		}
		row[bi]++
		ct.Cells[lob] = row
	}
	sort.Strings(ct.LOBs)
	return ct
}
