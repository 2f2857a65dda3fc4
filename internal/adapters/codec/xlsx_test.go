package codec

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildRiskBook writes rows onto a JudicialRisk sheet and returns the
// workbook bytes
func buildRiskBook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), RiskSheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell address: %v", err)
		}
		r := row
		if err := f.SetSheetRow(RiskSheet, addr, &r); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return buf.Bytes()
}
