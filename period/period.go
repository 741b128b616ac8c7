// Package period maps wall-clock dates onto calendar half-year buckets, the
// unit the open-trades table is partitioned by.
package period

import (
	"fmt"
	"time"
)

// Half is a calendar half-year. H1 covers January through June.
type Half int

const (
	H1 Half = 1
	H2 Half = 2
)

// Period identifies one half-year bucket. The zero value is not a valid
// period; build them with Current or Parse.
type Period struct {
	Year int
	Half Half
}

// Current returns the period the given time falls in.
func Current(now time.Time) Period {
	h := H1
	if now.Month() > time.June {
		h = H2
	}
	return Period{Year: now.Year(), Half: h}
}

// Previous returns the chronologically preceding half-year.
func (p Period) Previous() Period {
	if p.Half == H2 {
		return Period{Year: p.Year, Half: H1}
	}
	return Period{Year: p.Year - 1, Half: H2}
}

// Next returns the chronologically following half-year.
func (p Period) Next() Period {
	if p.Half == H1 {
		return Period{Year: p.Year, Half: H2}
	}
	return Period{Year: p.Year + 1, Half: H1}
}

// TableName is the single place a period becomes a table identifier.
func (p Period) TableName() string {
	return fmt.Sprintf("trades_%d_h%d", p.Year, p.Half)
}

func (p Period) String() string {
	return fmt.Sprintf("%dH%d", p.Year, p.Half)
}

// Parse accepts the String form, e.g. "2026H1".
func Parse(s string) (Period, error) {
	var year, half int
	if _, err := fmt.Sscanf(s, "%dH%d", &year, &half); err != nil {
		return Period{}, fmt.Errorf("invalid period %q (want e.g. 2026H1)", s)
	}
	if half != 1 && half != 2 {
		return Period{}, fmt.Errorf("invalid period %q: half must be 1 or 2", s)
	}
	if year < 1970 || year > 9999 {
		return Period{}, fmt.Errorf("invalid period %q: year out of range", s)
	}
	return Period{Year: year, Half: Half(half)}, nil
}
