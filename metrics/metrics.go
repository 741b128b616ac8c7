package metrics

import (
	"errors"
	"fmt"
	"math"
)

// Fractions of the session budget used for position sizing and risk alerts.
const (
	RiskBudgetFraction  = 0.01 // a full stop-out should cost at most 1% of budget
	AlertBudgetFraction = 0.02
)

// Auto tags assigned from the risk/reward ratio.
const (
	TagHighRisk     = "high-risk"
	TagNeutral      = "neutral"
	TagConservative = "conservative"
)

// ErrInvalidInput is returned when a planned trade cannot be evaluated at all.
// A degenerate stop (entry == stop) is NOT invalid input; those metrics fall
// back to zero instead.
var ErrInvalidInput = errors.New("metrics: invalid input")

// Inputs describes a planned long swing trade.
type Inputs struct {
	Entry  float64
	Target float64
	Stop   float64
	Volume int64
	Budget float64 // account-wide session budget
}

// Result holds every computed figure for one planned trade. Currency amounts
// and percentages are rounded to 2 decimals.
type Result struct {
	RiskPerShare   float64
	RewardPerShare float64
	RiskReward     float64 // reward per share / risk per share, 0 when risk is 0
	TotalRisk      float64
	TotalReward    float64
	BreakEven      float64 // (entry + stop) / 2
	TotalCost      float64
	ExpectedReturn float64
	StopPct        float64
	RewardPct      float64

	// Position sizing against the budget.
	RecommendedVolume int64 // volume whose stop-out costs RiskBudgetFraction of budget
	MaxShares         int64

	AutoTag string
	Alert   string // non-empty when TotalRisk exceeds AlertBudgetFraction of budget
}

// Calculate evaluates the planned trade. Unlike a spreadsheet it never returns
// an all-zero result for bad input; callers can rely on err == nil meaning
// every field was actually computed.
func Calculate(in Inputs) (Result, error) {
	if err := in.validate(); err != nil {
		return Result{}, err
	}

	riskPerShare := in.Entry - in.Stop
	rewardPerShare := in.Target - in.Entry
	vol := float64(in.Volume)

	r := Result{
		RiskPerShare:   Round2(riskPerShare),
		RewardPerShare: Round2(rewardPerShare),
		TotalRisk:      Round2(riskPerShare * vol),
		TotalReward:    Round2(rewardPerShare * vol),
		BreakEven:      Round2((in.Entry + in.Stop) / 2),
		TotalCost:      Round2(in.Entry * vol),
		ExpectedReturn: Round2(rewardPerShare * vol),
		StopPct:        Round2(riskPerShare / in.Entry * 100),
		RewardPct:      Round2(rewardPerShare / in.Entry * 100),
		MaxShares:      int64(in.Budget / in.Entry),
	}

	if riskPerShare != 0 {
		r.RiskReward = Round2(rewardPerShare / riskPerShare)
		r.RecommendedVolume = int64(RiskBudgetFraction * in.Budget / riskPerShare)
		if r.RecommendedVolume < 0 {
			r.RecommendedVolume = 0
		}
	}

	r.AutoTag = autoTag(r.RiskReward)
	if r.TotalRisk > AlertBudgetFraction*in.Budget {
		r.Alert = fmt.Sprintf("risk %.2f exceeds %.0f%% of budget", r.TotalRisk, AlertBudgetFraction*100)
	}

	return r, nil
}

func (in Inputs) validate() error {
	switch {
	case in.Entry <= 0:
		return fmt.Errorf("%w: entry must be positive", ErrInvalidInput)
	case in.Target <= 0:
		return fmt.Errorf("%w: target must be positive", ErrInvalidInput)
	case in.Stop <= 0:
		return fmt.Errorf("%w: stop must be positive", ErrInvalidInput)
	case in.Volume <= 0:
		return fmt.Errorf("%w: volume must be positive", ErrInvalidInput)
	case in.Budget <= 0:
		return fmt.Errorf("%w: budget must be positive", ErrInvalidInput)
	}
	return nil
}

func autoTag(rr float64) string {
	switch {
	case rr < 1:
		return TagHighRisk
	case rr >= 2:
		return TagConservative
	default:
		return TagNeutral
	}
}

// Round2 rounds to 2 decimal places, the precision every currency amount is
// stored and displayed with.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
