package journal

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/swingtrade/period"
)

const budgetKey = "budget"

type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and applies the
// period-independent schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// EnsureTable creates the open-trades table for p if it does not exist yet.
func (j *SQLite) EnsureTable(p period.Period) error {
	_, err := j.db.Exec(openTableSQL(p))
	return err
}

func (j *SQLite) CreateOpen(p period.Period, t OpenTrade) (int64, error) {
	if err := j.EnsureTable(p); err != nil {
		return 0, err
	}

	res, err := j.db.Exec(fmt.Sprintf(`
		INSERT INTO %s
		(stock, entry_price, target_price, stop_loss, volume, confidence, trade_type, notes, tags, reminder, result, opened_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, p.TableName()),
		t.Stock, t.EntryPrice, t.TargetPrice, t.StopLoss, t.Volume,
		t.Confidence, t.TradeType, t.Notes, t.Tags, t.Reminder, t.Result, t.OpenedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListOpen returns the period's open trades in creation order.
func (j *SQLite) ListOpen(p period.Period) ([]OpenTrade, error) {
	if err := j.EnsureTable(p); err != nil {
		return nil, err
	}

	rows, err := j.db.Query(fmt.Sprintf(`
		SELECT id, stock, entry_price, target_price, stop_loss, volume, confidence, trade_type, notes, tags, reminder, result, opened_at
		FROM %s
		ORDER BY id ASC`, p.TableName()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OpenTrade
	for rows.Next() {
		t, err := scanOpen(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) GetOpen(p period.Period, id int64) (OpenTrade, error) {
	if err := j.EnsureTable(p); err != nil {
		return OpenTrade{}, err
	}

	row := j.db.QueryRow(fmt.Sprintf(`
		SELECT id, stock, entry_price, target_price, stop_loss, volume, confidence, trade_type, notes, tags, reminder, result, opened_at
		FROM %s
		WHERE id = ?`, p.TableName()), id)

	t, err := scanOpen(row)
	if err == sql.ErrNoRows {
		return OpenTrade{}, fmt.Errorf("open trade %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return OpenTrade{}, err
	}
	return t, nil
}

func (j *SQLite) DeleteOpen(p period.Period, id int64) error {
	if err := j.EnsureTable(p); err != nil {
		return err
	}

	res, err := j.db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, p.TableName()), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("open trade %d: %w", id, ErrNotFound)
	}
	return nil
}

func (j *SQLite) AppendCompleted(rec CompletedTrade) (int64, error) {
	res, err := j.db.Exec(`
		INSERT INTO completed_trades
		(ref, stock, buy_price, target_price, stop_loss, volume, result, outcome_price, pnl, closed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Ref, rec.Stock, rec.BuyPrice, rec.TargetPrice, rec.StopLoss,
		rec.Volume, rec.Result, rec.OutcomePrice, rec.PnL, rec.ClosedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CloseTrade moves the open trade with the given id into the completed table.
// Both writes happen in one transaction so a trade is never in both tables or
// neither.
func (j *SQLite) CloseTrade(p period.Period, id int64, rec CompletedTrade) (int64, error) {
	if err := j.EnsureTable(p); err != nil {
		return 0, err
	}

	tx, err := j.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, p.TableName()), id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("open trade %d: %w", id, ErrNotFound)
	}

	res, err = tx.Exec(`
		INSERT INTO completed_trades
		(ref, stock, buy_price, target_price, stop_loss, volume, result, outcome_price, pnl, closed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Ref, rec.Stock, rec.BuyPrice, rec.TargetPrice, rec.StopLoss,
		rec.Volume, rec.Result, rec.OutcomePrice, rec.PnL, rec.ClosedAt,
	)
	if err != nil {
		return 0, err
	}
	recID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return recID, nil
}

// ListCompleted returns the full close history, most recent first.
func (j *SQLite) ListCompleted() ([]CompletedTrade, error) {
	rows, err := j.db.Query(`
		SELECT id, ref, stock, buy_price, target_price, stop_loss, volume, result, outcome_price, pnl, closed_at
		FROM completed_trades
		ORDER BY closed_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CompletedTrade
	for rows.Next() {
		var rec CompletedTrade
		if err := rows.Scan(
			&rec.ID, &rec.Ref, &rec.Stock, &rec.BuyPrice, &rec.TargetPrice,
			&rec.StopLoss, &rec.Volume, &rec.Result, &rec.OutcomePrice,
			&rec.PnL, &rec.ClosedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) TableExists(p period.Period) (bool, error) {
	var name string
	err := j.db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type='table' AND name = ?`,
		p.TableName(),
	).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Budget returns the persisted session budget, with ok=false when it was
// never set.
func (j *SQLite) Budget() (float64, bool, error) {
	var raw string
	err := j.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, budgetKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("stored budget %q: %w", raw, err)
	}
	return v, true, nil
}

func (j *SQLite) SetBudget(v float64) error {
	if v <= 0 {
		return fmt.Errorf("budget must be positive, got %v", v)
	}
	_, err := j.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		budgetKey, strconv.FormatFloat(v, 'f', -1, 64),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOpen(s scanner) (OpenTrade, error) {
	var t OpenTrade
	err := s.Scan(
		&t.ID, &t.Stock, &t.EntryPrice, &t.TargetPrice, &t.StopLoss,
		&t.Volume, &t.Confidence, &t.TradeType, &t.Notes, &t.Tags,
		&t.Reminder, &t.Result, &t.OpenedAt,
	)
	return t, err
}
