package journal

import (
	"fmt"

	"github.com/rustyeddy/swingtrade/period"
)

// RollForward copies still-open trades from the previous period's table into
// the current one so they are not orphaned when a new half-year starts.
// Closed rows stay behind as history. It is a no-op when the previous table
// does not exist (first ever run) or the current table already has rows
// (migration already happened, or trading already started this period).
// Returns the number of trades carried over.
func (j *SQLite) RollForward(prev, cur period.Period) (int, error) {
	exists, err := j.TableExists(prev)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	if err := j.EnsureTable(cur); err != nil {
		return 0, err
	}

	var n int
	if err := j.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, cur.TableName())).Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	// New ids are assigned by the target table; everything else carries over.
	tx, err := j.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(fmt.Sprintf(`
		INSERT INTO %s
		(stock, entry_price, target_price, stop_loss, volume, confidence, trade_type, notes, tags, reminder, result, opened_at)
		SELECT stock, entry_price, target_price, stop_loss, volume, confidence, trade_type, notes, tags, reminder, result, opened_at
		FROM %s
		WHERE result = ''
		ORDER BY id ASC`, cur.TableName(), prev.TableName()))
	if err != nil {
		return 0, err
	}

	moved, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(moved), nil
}
