package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/swingtrade/book"
	"github.com/rustyeddy/swingtrade/config"
	"github.com/rustyeddy/swingtrade/journal"
	"github.com/rustyeddy/swingtrade/period"
)

var rootCmd = &cobra.Command{
	Use:   "swingtrade",
	Short: "A personal swing-trade planner and tracker",
	Long: `Swingtrade tracks discretionary stock swing trades in a local SQLite
database.

It provides tools for:
  - Planning trades with risk/reward metrics against a session budget
  - Tracking open positions per calendar half-year
  - Closing trades at target or stop with realized P/L history
  - Rolling open trades forward when a new half-year starts
  - Exporting the open book to CSV`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgPath    string
	dbPath     string
	budgetFlag float64
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "./swingtrade.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&budgetFlag, "budget", 0, "session budget for this invocation (overrides stored budget)")
}

// session bundles everything a command needs for one invocation.
type session struct {
	cfg   *config.Config
	store *journal.SQLite
	book  *book.Book
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		log.Error().Err(err).Msg("close db")
	}
}

// openSession loads config, sets up logging, opens the store, rolls open
// trades forward into the current half-year, and resolves the session budget.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(logLevel(cfg.Logging.Level))

	path := cfg.Database.Path
	if dbPath != "" {
		path = dbPath
	}

	store, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	cur := period.Current(time.Now())
	if n, err := store.RollForward(cur.Previous(), cur); err != nil {
		store.Close()
		return nil, fmt.Errorf("roll forward: %w", err)
	} else if n > 0 {
		log.Info().Int("trades", n).Str("period", cur.String()).Msg("open trades rolled forward")
	}
	if err := store.EnsureTable(cur); err != nil {
		store.Close()
		return nil, fmt.Errorf("ensure period table: %w", err)
	}

	budget, err := resolveBudget(store, cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &session{
		cfg:   cfg,
		store: store,
		book:  book.New(store, cur, budget, log.Logger),
	}, nil
}

// loadConfig falls back to defaults when the default config file is absent;
// an explicitly named file must exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if !rootCmd.PersistentFlags().Changed("config") {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("config file %s does not exist", cfgPath)
	}
	return config.LoadFromFile(cfgPath)
}

// resolveBudget: --budget flag wins, then the stored budget, then the config
// default. Zero means no budget is set.
func resolveBudget(store *journal.SQLite, cfg *config.Config) (float64, error) {
	if budgetFlag > 0 {
		return budgetFlag, nil
	}
	if v, ok, err := store.Budget(); err != nil {
		return 0, fmt.Errorf("load budget: %w", err)
	} else if ok {
		return v, nil
	}
	return cfg.Budget.Default, nil
}

func logLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
