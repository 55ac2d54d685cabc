package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lifeline/savings-calculator/internal/domain"
)

// CSVFormatter implements the yearly export: one row per simulated year with
// the start/end balances and the year's cash flows.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Starting Principal", "Annual Return %", "Annual Returns Amount", "Charity Amount", "Annual Expense", "Ending Year Principal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, snap := range report.Result.Snapshots {
		row := []string{
			strconv.Itoa(snap.Year),
			snap.StartPrincipal.StringFixed(2),
			snap.ReturnPercent.StringFixed(2),
			snap.TotalReturns.StringFixed(2),
			snap.CharityPaid.StringFixed(2),
			snap.TotalExpenses.StringFixed(2),
			snap.EndPrincipal.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
