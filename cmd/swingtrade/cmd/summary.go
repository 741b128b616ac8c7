package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the open book",
	Long:  `Aggregate committed capital and expected return across the current period's open trades.`,
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	sum, err := s.book.Summary()
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	fmt.Printf("Period:          %s\n", sum.Period)
	fmt.Printf("Open trades:     %d\n", sum.OpenTrades)
	fmt.Printf("Capital used:    %.2f\n", sum.CapitalUsed)
	fmt.Printf("Expected return: %.2f\n", sum.ExpectedReturn)
	if sum.Budget > 0 {
		fmt.Printf("Budget:          %.2f (%.2f%% committed)\n", sum.Budget, sum.BudgetUsedPct)
	} else {
		fmt.Println("Budget:          not set")
	}
	return nil
}
