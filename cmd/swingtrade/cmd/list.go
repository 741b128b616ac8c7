package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/swingtrade/journal"
	"github.com/rustyeddy/swingtrade/period"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "List open trades",
	Long: `List the open trades of the current half-year (or another period).

Examples:
  swingtrade open
  swingtrade open --period 2025H2`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

var closedCmd = &cobra.Command{
	Use:   "closed",
	Short: "List closed trades",
	Long:  `List the full close history, most recent first, with realized P/L.`,
	Args:  cobra.NoArgs,
	RunE:  runClosed,
}

var openPeriod string

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(closedCmd)

	openCmd.Flags().StringVar(&openPeriod, "period", "", "period to list, e.g. 2025H2 (default: current)")
}

func runOpen(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	p := s.book.Period()
	if openPeriod != "" {
		if p, err = period.Parse(openPeriod); err != nil {
			return err
		}
	}

	trades, err := s.store.ListOpen(p)
	if err != nil {
		return fmt.Errorf("list open trades: %w", err)
	}
	if len(trades) == 0 {
		fmt.Printf("No open trades in %s.\n", p)
		return nil
	}

	fmt.Printf("* Open trades %s\n\n", p)
	fmt.Println(journal.FormatOpenTradesOrg(trades))
	return nil
}

func runClosed(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	recs, err := s.store.ListCompleted()
	if err != nil {
		return fmt.Errorf("list closed trades: %w", err)
	}
	if len(recs) == 0 {
		fmt.Println("No closed trades.")
		return nil
	}

	fmt.Println("* Closed trades")
	fmt.Println()
	fmt.Println(journal.FormatCompletedTradesOrg(recs))
	return nil
}
