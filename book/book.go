// Package book is the trade lifecycle controller: it validates submitted
// forms, computes metrics, and drives the journal through the open -> closed
// state machine.
package book

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/swingtrade/journal"
	"github.com/rustyeddy/swingtrade/metrics"
	"github.com/rustyeddy/swingtrade/period"
	"github.com/rustyeddy/swingtrade/pkg/id"
)

// Book owns one session: a store, the active period, and the session budget.
type Book struct {
	store  journal.Store
	cur    period.Period
	budget float64
	log    zerolog.Logger
}

func New(store journal.Store, cur period.Period, budget float64, log zerolog.Logger) *Book {
	return &Book{store: store, cur: cur, budget: budget, log: log}
}

// Period returns the active half-year.
func (b *Book) Period() period.Period { return b.cur }

// Budget returns the session budget (0 when unset).
func (b *Book) Budget() float64 { return b.budget }

// Form carries raw field values as entered by the user. Parsing and
// validation happen in Submit so a bad field never reaches the store.
type Form struct {
	Stock       string
	EntryPrice  string
	TargetPrice string
	StopLoss    string
	Volume      string
	Confidence  string
	TradeType   string
	Notes       string
	Tags        string
	Reminder    string
}

// Submit validates the form, computes metrics against the session budget,
// and persists the trade. Nothing is written when validation or the metrics
// calculation fails.
func (b *Book) Submit(form Form) (metrics.Result, journal.OpenTrade, error) {
	if err := b.requireBudget(); err != nil {
		return metrics.Result{}, journal.OpenTrade{}, err
	}

	stock := strings.ToUpper(strings.TrimSpace(form.Stock))
	if stock == "" {
		return metrics.Result{}, journal.OpenTrade{}, &ValidationError{Field: "stock", Value: form.Stock, Reason: "required"}
	}

	entry, err := parsePrice("entry_price", form.EntryPrice)
	if err != nil {
		return metrics.Result{}, journal.OpenTrade{}, err
	}
	target, err := parsePrice("target_price", form.TargetPrice)
	if err != nil {
		return metrics.Result{}, journal.OpenTrade{}, err
	}
	stop, err := parsePrice("stop_loss", form.StopLoss)
	if err != nil {
		return metrics.Result{}, journal.OpenTrade{}, err
	}
	volume, err := parseVolume(form.Volume)
	if err != nil {
		return metrics.Result{}, journal.OpenTrade{}, err
	}
	confidence, err := parseConfidence(form.Confidence)
	if err != nil {
		return metrics.Result{}, journal.OpenTrade{}, err
	}

	m, err := metrics.Calculate(metrics.Inputs{
		Entry:  entry,
		Target: target,
		Stop:   stop,
		Volume: volume,
		Budget: b.budget,
	})
	if err != nil {
		return metrics.Result{}, journal.OpenTrade{}, err
	}

	trade := journal.OpenTrade{
		Stock:       stock,
		EntryPrice:  entry,
		TargetPrice: target,
		StopLoss:    stop,
		Volume:      volume,
		Confidence:  confidence,
		TradeType:   strings.TrimSpace(form.TradeType),
		Notes:       form.Notes,
		Tags:        mergeTags(form.Tags, m.AutoTag),
		Reminder:    strings.TrimSpace(form.Reminder),
		OpenedAt:    time.Now().Truncate(time.Minute),
	}

	tradeID, err := b.store.CreateOpen(b.cur, trade)
	if err != nil {
		return metrics.Result{}, journal.OpenTrade{}, fmt.Errorf("persist trade: %w", err)
	}
	trade.ID = tradeID

	b.log.Info().
		Int64("id", tradeID).
		Str("stock", stock).
		Str("period", b.cur.String()).
		Float64("risk_reward", m.RiskReward).
		Str("auto_tag", m.AutoTag).
		Msg("trade submitted")

	return m, trade, nil
}

// CloseReport summarizes one close action.
type CloseReport struct {
	Trade journal.CompletedTrade
}

// Close resolves the open trade with the given id at its target (outcome
// "goal") or its stop (outcome "stop") and moves it to the history table.
func (b *Book) Close(tradeID int64, outcome string) (CloseReport, error) {
	if outcome != journal.ResultGoal && outcome != journal.ResultStop {
		return CloseReport{}, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}

	t, err := b.store.GetOpen(b.cur, tradeID)
	if err != nil {
		return CloseReport{}, err
	}

	exit := t.TargetPrice
	if outcome == journal.ResultStop {
		exit = t.StopLoss
	}

	rec := journal.CompletedTrade{
		Ref:          id.New(),
		Stock:        t.Stock,
		BuyPrice:     t.EntryPrice,
		TargetPrice:  t.TargetPrice,
		StopLoss:     t.StopLoss,
		Volume:       t.Volume,
		Result:       outcome,
		OutcomePrice: exit,
		PnL:          metrics.Round2((exit - t.EntryPrice) * float64(t.Volume)),
		ClosedAt:     time.Now().Truncate(time.Minute),
	}

	recID, err := b.store.CloseTrade(b.cur, tradeID, rec)
	if err != nil {
		return CloseReport{}, err
	}
	rec.ID = recID

	b.log.Info().
		Int64("id", tradeID).
		Str("ref", rec.Ref).
		Str("stock", rec.Stock).
		Str("result", outcome).
		Float64("pnl", rec.PnL).
		Msg("trade closed")

	return CloseReport{Trade: rec}, nil
}

// Summary aggregates the current period's open trades. Recomputed on demand;
// the row count is always small.
type Summary struct {
	Period         period.Period
	OpenTrades     int
	CapitalUsed    float64
	ExpectedReturn float64
	Budget         float64
	BudgetUsedPct  float64 // 0 when no budget is set
}

func (b *Book) Summary() (Summary, error) {
	trades, err := b.store.ListOpen(b.cur)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{Period: b.cur, OpenTrades: len(trades), Budget: b.budget}
	for _, t := range trades {
		s.CapitalUsed += t.EntryPrice * float64(t.Volume)
		s.ExpectedReturn += (t.TargetPrice - t.EntryPrice) * float64(t.Volume)
	}
	s.CapitalUsed = metrics.Round2(s.CapitalUsed)
	s.ExpectedReturn = metrics.Round2(s.ExpectedReturn)
	if b.budget > 0 {
		s.BudgetUsedPct = metrics.Round2(s.CapitalUsed / b.budget * 100)
	}
	return s, nil
}

// Export writes the current period's open trades to a CSV snapshot at path.
func (b *Book) Export(path string) (int, error) {
	trades, err := b.store.ListOpen(b.cur)
	if err != nil {
		return 0, err
	}
	if err := journal.ExportCSV(path, trades); err != nil {
		return 0, err
	}

	b.log.Info().Str("path", path).Int("trades", len(trades)).Msg("csv exported")
	return len(trades), nil
}

func (b *Book) requireBudget() error {
	if b.budget <= 0 {
		return ErrNoBudget
	}
	return nil
}

// mergeTags appends the computed auto tag to the user's tags. No leading
// separator when the user entered none.
func mergeTags(user, auto string) string {
	user = strings.TrimSpace(user)
	if user == "" {
		return auto
	}
	return user + ", " + auto
}

func parsePrice(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "not a number"}
	}
	if v <= 0 {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "must be positive"}
	}
	return v, nil
}

func parseVolume(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: "volume", Value: raw, Reason: "not an integer"}
	}
	if v <= 0 {
		return 0, &ValidationError{Field: "volume", Value: raw, Reason: "must be positive"}
	}
	return v, nil
}

// parseConfidence is lenient: the 0-10 range is advisory, only the type is
// enforced. Empty means 0.
func parseConfidence(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Field: "confidence", Value: raw, Reason: "not an integer"}
	}
	return v, nil
}
