package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Set or show the session budget",
	Long: `Manage the budget that position sizing and risk alerts are computed
against. The budget persists in the database until explicitly reset.

Examples:
  swingtrade budget set 50000
  swingtrade budget show`,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the session budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSet,
}

var budgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective session budget",
	Args:  cobra.NoArgs,
	RunE:  runBudgetShow,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetShowCmd)
}

func runBudgetSet(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid budget %q", args[0])
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.store.SetBudget(v); err != nil {
		return err
	}

	fmt.Printf("✓ Budget set to %.2f\n", v)
	return nil
}

func runBudgetShow(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if b := s.book.Budget(); b > 0 {
		fmt.Printf("Budget: %.2f\n", b)
	} else {
		fmt.Println("Budget: not set")
	}
	return nil
}
