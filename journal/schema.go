package journal

import (
	"fmt"

	"github.com/rustyeddy/swingtrade/period"
)

// Schema covers the period-independent tables. Open-trades tables are created
// per period, see openTableSQL.
const Schema = `
CREATE TABLE IF NOT EXISTS completed_trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	ref TEXT NOT NULL UNIQUE,
	stock TEXT NOT NULL,
	buy_price REAL NOT NULL,
	target_price REAL NOT NULL,
	stop_loss REAL NOT NULL,
	volume INTEGER NOT NULL,
	result TEXT NOT NULL,
	outcome_price REAL NOT NULL,
	pnl REAL NOT NULL,
	closed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_completed_closed_at ON completed_trades(closed_at);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// openColumns is the canonical column order of an open-trades table; the CSV
// export header mirrors it.
var openColumns = []string{
	"id", "stock", "entry_price", "target_price", "stop_loss", "volume",
	"confidence", "trade_type", "notes", "tags", "reminder", "result", "opened_at",
}

func openTableSQL(p period.Period) string {
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	stock TEXT NOT NULL,
	entry_price REAL NOT NULL,
	target_price REAL NOT NULL,
	stop_loss REAL NOT NULL,
	volume INTEGER NOT NULL,
	confidence INTEGER NOT NULL DEFAULT 0,
	trade_type TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	reminder TEXT NOT NULL DEFAULT '',
	result TEXT NOT NULL DEFAULT '',
	opened_at DATETIME NOT NULL
);`, p.TableName())
}
