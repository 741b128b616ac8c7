// Package journal persists planned swing trades to a local SQLite database.
// Open trades live in one table per calendar half-year; closed trades go to a
// single append-only history table.
package journal

import (
	"errors"
	"time"

	"github.com/rustyeddy/swingtrade/period"
)

// TimeLayout is the minute-precision layout trades are displayed and
// exported with.
const TimeLayout = "2006-01-02 15:04"

// Close outcomes.
const (
	ResultGoal = "goal"
	ResultStop = "stop"
)

// ErrNotFound is returned when a trade id is absent from the open table.
var ErrNotFound = errors.New("trade not found")

// OpenTrade is one pending position in a period's open-trades table.
type OpenTrade struct {
	ID          int64
	Stock       string // uppercased symbol
	EntryPrice  float64
	TargetPrice float64
	StopLoss    float64
	Volume      int64
	Confidence  int // 0-10, advisory
	TradeType   string
	Notes       string
	Tags        string // user tags plus the computed auto tag
	Reminder    string
	Result      string // empty while open
	OpenedAt    time.Time
}

// CompletedTrade is the append-only record written when an open trade closes.
type CompletedTrade struct {
	ID           int64
	Ref          string // ULID, assigned at close, never reused
	Stock        string
	BuyPrice     float64 // original entry price
	TargetPrice  float64
	StopLoss     float64
	Volume       int64
	Result       string // ResultGoal or ResultStop
	OutcomePrice float64
	PnL          float64
	ClosedAt     time.Time
}

// Store is the persistence contract the lifecycle controller works against.
type Store interface {
	CreateOpen(p period.Period, t OpenTrade) (int64, error)
	ListOpen(p period.Period) ([]OpenTrade, error)
	GetOpen(p period.Period, id int64) (OpenTrade, error)
	DeleteOpen(p period.Period, id int64) error

	// CloseTrade appends rec and deletes the open row in one transaction.
	CloseTrade(p period.Period, id int64, rec CompletedTrade) (int64, error)
	AppendCompleted(rec CompletedTrade) (int64, error)
	ListCompleted() ([]CompletedTrade, error)

	TableExists(p period.Period) (bool, error)
	RollForward(prev, cur period.Period) (int, error)

	Budget() (float64, bool, error)
	SetBudget(v float64) error

	Close() error
}
