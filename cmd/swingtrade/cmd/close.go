package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var closeCmd = &cobra.Command{
	Use:   "close <id> <goal|stop>",
	Short: "Close an open trade at its target or stop",
	Long: `Close the open trade with the given id. Outcome "goal" exits at the
target price, "stop" exits at the stop-loss. The trade moves to the close
history with its realized P/L.

Examples:
  swingtrade close 3 goal
  swingtrade close 7 stop`,
	Args: cobra.ExactArgs(2),
	RunE: runClose,
}

func init() {
	rootCmd.AddCommand(closeCmd)
}

func runClose(cmd *cobra.Command, args []string) error {
	tradeID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid trade id %q", args[0])
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	rep, err := s.book.Close(tradeID, args[1])
	if err != nil {
		return err
	}

	t := rep.Trade
	fmt.Printf("✓ Trade #%d closed: %s %s at %.2f, P/L %+.2f (ref %s)\n",
		tradeID, t.Stock, t.Result, t.OutcomePrice, t.PnL, t.Ref)
	return nil
}
