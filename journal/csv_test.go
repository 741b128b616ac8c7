package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, ExportCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(data)))
	header, err := r.Read()
	require.NoError(t, err)

	want := []string{
		"id", "stock", "entry_price", "target_price", "stop_loss", "volume",
		"confidence", "trade_type", "notes", "tags", "reminder", "result", "opened_at",
	}
	assert.Equal(t, want, header)

	// header only, no trade rows
	_, err = r.Read()
	assert.Error(t, err)
}

func TestExportCSVRows(t *testing.T) {
	t.Parallel()

	opened := time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC)
	trades := []OpenTrade{
		{
			ID: 1, Stock: "TSLA", EntryPrice: 100, TargetPrice: 120,
			StopLoss: 92, Volume: 50, Confidence: 7, TradeType: "breakout",
			Notes: "earnings next week", Tags: "momentum, conservative",
			Reminder: "2026-03-01", OpenedAt: opened,
		},
		{
			ID: 2, Stock: "AAPL", EntryPrice: 180.5, TargetPrice: 200,
			StopLoss: 170, Volume: 10, OpenedAt: opened.Add(time.Hour),
		},
	}

	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, ExportCSV(path, trades))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(data)))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + one row per trade

	want := []string{
		"1", "TSLA", "100.00", "120.00", "92.00", "50", "7", "breakout",
		"earnings next week", "momentum, conservative", "2026-03-01", "",
		"2026-02-03 09:30",
	}
	assert.Equal(t, want, rows[1])

	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "AAPL", rows[2][1])
	assert.Equal(t, "180.50", rows[2][2])
}
