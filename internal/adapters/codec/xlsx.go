package codec

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"exposure/internal/core/agg"
	"exposure/internal/core/tabular"
	perr "exposure/internal/platform/errors"
)

// PolicySheet is the workbook sheet policies are read from and written to
const PolicySheet = "Policies"

// RiskSheet is the workbook sheet judicial risk lookups are read from
const RiskSheet = "JudicialRisk"

func decodeXLSX(data []byte) (*tabular.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, perr.UnsupportedEncodingf("not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(PolicySheet)
	if err != nil {
		return nil, perr.UnsupportedEncodingf("workbook has no %q sheet", PolicySheet)
	}
	return tableFromStrings(rows)
}

func encodeXLSX(t *tabular.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), PolicySheet); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "rename sheet")
	}

	cols := t.Columns()
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(PolicySheet, "A1", &header); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "write header")
	}
	for i := 0; i < t.Len(); i++ {
		row := make([]any, len(cols))
		for j, col := range cols {
			row[j] = exportValue(t.Cell(i, col))
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "cell address")
		}
		if err := f.SetSheetRow(PolicySheet, addr, &row); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "write row")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "serialize workbook")
	}
	return buf.Bytes(), nil
}

// exportValue renders a cell for a worksheet. Dates go out as ISO date
// strings rather than excel serials so round-trips stay layout-stable
func exportValue(c tabular.Cell) any {
	switch c.Kind() {
	case tabular.KindNumber:
		n, _ := c.Number()
		return n
	case tabular.KindNull:
		return nil
	default:
		return c.Key()
	}
}

// DecodeRiskLookup reads the judicial risk sheet into a venue-keyed lookup.
// The sheet carries State, RiskTier, and RiskScore columns; rows with an
// unreadable score are dropped
func DecodeRiskLookup(data []byte) (map[string]agg.RiskEntry, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, perr.UnsupportedEncodingf("not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(RiskSheet)
	if err != nil {
		return nil, perr.UnsupportedEncodingf("workbook has no %q sheet", RiskSheet)
	}
	if len(rows) == 0 {
		return map[string]agg.RiskEntry{}, nil
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}
	stateCol, okS := idx["State"]
	tierCol, okT := idx["RiskTier"]
	scoreCol, okC := idx["RiskScore"]
	if !okS || !okT || !okC {
		return nil, perr.MissingSchema([]string{"State", "RiskTier", "RiskScore"})
	}

	out := make(map[string]agg.RiskEntry, len(rows)-1)
	for _, row := range rows[1:] {
		at := func(i int) string {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		state := at(stateCol)
		if state == "" {
			continue
		}
		score, err := strconv.ParseFloat(at(scoreCol), 64)
		if err != nil {
			continue
		}
		out[state] = agg.RiskEntry{Tier: at(tierCol), Score: score}
	}
	return out, nil
}

// tableFromStrings builds a raw table from header-plus-rows string data
func tableFromStrings(rows [][]string) (*tabular.Table, error) {
	if len(rows) == 0 {
		return nil, perr.NoDataf("input has no header row")
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	t := tabular.New(header)
	for _, row := range rows[1:] {
		cells := make([]tabular.Cell, len(header))
		for i := range header {
			if i < len(row) {
				cells[i] = tabular.StringCell(strings.TrimSpace(row[i]))
			} else {
				cells[i] = tabular.NullCell()
			}
		}
		t.AppendRow(cells)
	}
	return t, nil
}
