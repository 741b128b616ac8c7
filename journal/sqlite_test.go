package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/swingtrade/period"
)

var testPeriod = period.Period{Year: 2026, Half: period.H1}

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j
}

func sampleTrade() OpenTrade {
	return OpenTrade{
		Stock:       "TSLA",
		EntryPrice:  100,
		TargetPrice: 120,
		StopLoss:    92,
		Volume:      50,
		Confidence:  7,
		TradeType:   "breakout",
		Notes:       "earnings next week",
		Tags:        "momentum, conservative",
		Reminder:    "2026-03-01",
		OpenedAt:    time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC),
	}
}

func TestCreateAndListOpen(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	want := sampleTrade()
	id, err := j.CreateOpen(testPeriod, want)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	trades, err := j.ListOpen(testPeriod)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	got := trades[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, want.Stock, got.Stock)
	assert.InDelta(t, want.EntryPrice, got.EntryPrice, 1e-9)
	assert.InDelta(t, want.TargetPrice, got.TargetPrice, 1e-9)
	assert.InDelta(t, want.StopLoss, got.StopLoss, 1e-9)
	assert.Equal(t, want.Volume, got.Volume)
	assert.Equal(t, want.Confidence, got.Confidence)
	assert.Equal(t, want.TradeType, got.TradeType)
	assert.Equal(t, want.Notes, got.Notes)
	assert.Equal(t, want.Tags, got.Tags)
	assert.Equal(t, want.Reminder, got.Reminder)
	assert.Empty(t, got.Result)
	assert.True(t, got.OpenedAt.Equal(want.OpenedAt))
}

func TestListOpenCreationOrder(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	for _, stock := range []string{"AAA", "BBB", "CCC"} {
		trade := sampleTrade()
		trade.Stock = stock
		_, err := j.CreateOpen(testPeriod, trade)
		require.NoError(t, err)
	}

	trades, err := j.ListOpen(testPeriod)
	require.NoError(t, err)
	require.Len(t, trades, 3)
	assert.Equal(t, "AAA", trades[0].Stock)
	assert.Equal(t, "BBB", trades[1].Stock)
	assert.Equal(t, "CCC", trades[2].Stock)
}

func TestGetOpenNotFound(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	_, err := j.GetOpen(testPeriod, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOpen(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	id, err := j.CreateOpen(testPeriod, sampleTrade())
	require.NoError(t, err)

	assert.NoError(t, j.DeleteOpen(testPeriod, id))

	trades, err := j.ListOpen(testPeriod)
	require.NoError(t, err)
	assert.Empty(t, trades)

	assert.ErrorIs(t, j.DeleteOpen(testPeriod, id), ErrNotFound)
}

func TestCloseTrade(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	id, err := j.CreateOpen(testPeriod, sampleTrade())
	require.NoError(t, err)

	rec := CompletedTrade{
		Ref:          "01HTESTREF",
		Stock:        "TSLA",
		BuyPrice:     100,
		TargetPrice:  120,
		StopLoss:     92,
		Volume:       50,
		Result:       ResultGoal,
		OutcomePrice: 120,
		PnL:          1000,
		ClosedAt:     time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
	}

	recID, err := j.CloseTrade(testPeriod, id, rec)
	require.NoError(t, err)
	assert.Greater(t, recID, int64(0))

	// the trade moved: gone from open, present in completed
	trades, err := j.ListOpen(testPeriod)
	require.NoError(t, err)
	assert.Empty(t, trades)

	recs, err := j.ListCompleted()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, rec.Ref, recs[0].Ref)
	assert.InDelta(t, 120.0, recs[0].OutcomePrice, 1e-9)
	assert.InDelta(t, 1000.0, recs[0].PnL, 1e-9)
}

func TestCloseTradeNotFoundLeavesHistoryUntouched(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	_, err := j.CloseTrade(testPeriod, 99, CompletedTrade{
		Ref: "01HNOPE", Stock: "X", Result: ResultGoal,
		ClosedAt: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	recs, err := j.ListCompleted()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestListCompletedMostRecentFirst(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	for i, ref := range []string{"01HAAA", "01HBBB", "01HCCC"} {
		_, err := j.AppendCompleted(CompletedTrade{
			Ref: ref, Stock: "TSLA", BuyPrice: 100, TargetPrice: 110,
			StopLoss: 90, Volume: 10, Result: ResultStop, OutcomePrice: 90,
			PnL: -100, ClosedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	recs, err := j.ListCompleted()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "01HCCC", recs[0].Ref)
	assert.Equal(t, "01HAAA", recs[2].Ref)
}

func TestTableExists(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	ok, err := j.TableExists(testPeriod)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, j.EnsureTable(testPeriod))

	ok, err = j.TableExists(testPeriod)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBudget(t *testing.T) {
	t.Parallel()

	j := newTestStore(t)

	_, ok, err := j.Budget()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, j.SetBudget(50000))

	v, ok, err := j.Budget()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 50000.0, v, 1e-9)

	// reset overwrites
	require.NoError(t, j.SetBudget(25000))
	v, _, err = j.Budget()
	require.NoError(t, err)
	assert.InDelta(t, 25000.0, v, 1e-9)

	assert.Error(t, j.SetBudget(0))
	assert.Error(t, j.SetBudget(-10))
}
