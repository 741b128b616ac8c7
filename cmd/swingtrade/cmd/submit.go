package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/swingtrade/book"
	"github.com/rustyeddy/swingtrade/metrics"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a planned trade",
	Long: `Validate a planned trade, compute its risk/reward metrics against the
session budget, and persist it to the current half-year's open book.

Example:
  swingtrade submit --stock tsla --entry 100 --target 120 --stop 92 --volume 50 \
      --confidence 7 --tags "momentum, earnings"`,
	Args: cobra.NoArgs,
	RunE: runSubmit,
}

var submitForm book.Form

func init() {
	rootCmd.AddCommand(submitCmd)

	// Raw string values; parsing and validation are the controller's job.
	submitCmd.Flags().StringVar(&submitForm.Stock, "stock", "", "stock symbol (required)")
	submitCmd.Flags().StringVar(&submitForm.EntryPrice, "entry", "", "entry price (required)")
	submitCmd.Flags().StringVar(&submitForm.TargetPrice, "target", "", "target price (required)")
	submitCmd.Flags().StringVar(&submitForm.StopLoss, "stop", "", "stop-loss price (required)")
	submitCmd.Flags().StringVar(&submitForm.Volume, "volume", "", "share count (required)")
	submitCmd.Flags().StringVar(&submitForm.Confidence, "confidence", "", "confidence 0-10")
	submitCmd.Flags().StringVar(&submitForm.TradeType, "type", "", "trade type, e.g. breakout")
	submitCmd.Flags().StringVar(&submitForm.Notes, "notes", "", "free-form notes")
	submitCmd.Flags().StringVar(&submitForm.Tags, "tags", "", "comma-separated tags")
	submitCmd.Flags().StringVar(&submitForm.Reminder, "reminder", "", "reminder date (YYYY-MM-DD)")
	submitCmd.MarkFlagRequired("stock")
	submitCmd.MarkFlagRequired("entry")
	submitCmd.MarkFlagRequired("target")
	submitCmd.MarkFlagRequired("stop")
	submitCmd.MarkFlagRequired("volume")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	m, trade, err := s.book.Submit(submitForm)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Trade #%d submitted: %s (%s)\n\n", trade.ID, trade.Stock, s.book.Period())
	printMetrics(m)
	return nil
}

func printMetrics(m metrics.Result) {
	fmt.Printf("  Risk/Share:      %.2f\n", m.RiskPerShare)
	fmt.Printf("  Reward/Share:    %.2f\n", m.RewardPerShare)
	fmt.Printf("  Risk/Reward:     %.2f\n", m.RiskReward)
	fmt.Printf("  Total Risk:      %.2f\n", m.TotalRisk)
	fmt.Printf("  Total Reward:    %.2f\n", m.TotalReward)
	fmt.Printf("  Break-Even:      %.2f\n", m.BreakEven)
	fmt.Printf("  Total Cost:      %.2f\n", m.TotalCost)
	fmt.Printf("  Expected Return: %.2f\n", m.ExpectedReturn)
	fmt.Printf("  Stop %%:          %.2f\n", m.StopPct)
	fmt.Printf("  Reward %%:        %.2f\n", m.RewardPct)
	fmt.Printf("  1%% Risk Volume:  %d\n", m.RecommendedVolume)
	fmt.Printf("  Max Shares:      %d\n", m.MaxShares)
	fmt.Printf("  Auto Tag:        %s\n", m.AutoTag)
	if m.Alert != "" {
		fmt.Printf("  ⚠ %s\n", m.Alert)
	}
}
