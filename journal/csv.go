package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

// ExportCSV writes a full snapshot of the given open trades to path: one
// header row, then one row per trade in table order. Columns follow the
// open-table schema.
func ExportCSV(path string, trades []OpenTrade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(openColumns); err != nil {
		return err
	}

	for _, t := range trades {
		row := []string{
			strconv.FormatInt(t.ID, 10),
			t.Stock,
			f2(t.EntryPrice),
			f2(t.TargetPrice),
			f2(t.StopLoss),
			strconv.FormatInt(t.Volume, 10),
			strconv.Itoa(t.Confidence),
			t.TradeType,
			t.Notes,
			t.Tags,
			t.Reminder,
			t.Result,
			t.OpenedAt.Format(TimeLayout),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func f2(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
