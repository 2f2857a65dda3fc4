package filter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"exposure/internal/core/policy"
	"exposure/internal/core/tabular"
)

// Summary holds the headline aggregates for one filtered subset. Raw values
// carry the numbers; Display* fields carry the grouped, user-facing
// renderings ("$1,234,567", "12.3%")
type Summary struct {
	Policies       int     `json:"policies"`
	Premium        float64 `json:"premium"`
	ExposedLimit   float64 `json:"exposed_limit"`
	PctPrimary     float64 `json:"pct_primary"`
	Treaties       int     `json:"treaties"`
	DisplayPremium string  `json:"display_premium"`
	DisplayExposed string  `json:"display_exposed_limit"`
	DisplayPrimary string  `json:"display_pct_primary"`
}

var printer = message.NewPrinter(language.English)

// Summarize computes the KPI set over t. An empty table yields the zero
// summary without error; null cells contribute nothing to sums or counts
func Summarize(t *tabular.Table) Summary {
	s := Summary{Policies: t.Len()}

	s.Premium = sumColumn(t, policy.ColAnnualPremium)
	s.ExposedLimit = sumColumn(t, policy.ColExposedLimit)

	if t.HasColumn(policy.ColPolicyType) && t.Len() > 0 {
		primary := 0
		for i := 0; i < t.Len(); i++ {
			if t.Cell(i, policy.ColPolicyType).Key() == policy.PolicyTypePrimary {
				primary++
			}
		}
		s.PctPrimary = 100 * float64(primary) / float64(t.Len())
	}

	if t.HasColumn(policy.ColBusinessID) {
		s.Treaties = len(t.Distinct(policy.ColBusinessID))
	}

	s.DisplayPremium = printer.Sprintf("$%v", number.Decimal(s.Premium, number.MaxFractionDigits(0)))
	s.DisplayExposed = printer.Sprintf("$%v", number.Decimal(s.ExposedLimit, number.MaxFractionDigits(0)))
	s.DisplayPrimary = printer.Sprintf("%.1f%%", s.PctPrimary)
	return s
}

func sumColumn(t *tabular.Table, col string) float64 {
	if !t.HasColumn(col) {
		return 0
	}
	var sum float64
	for i := 0; i < t.Len(); i++ {
		if x, ok := t.Cell(i, col).Number(); ok {
			sum += x
		}
	}
	return sum
}
