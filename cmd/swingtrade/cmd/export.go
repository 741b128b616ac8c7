package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export open trades to CSV",
	Long: `Write a CSV snapshot of the current period's open trades to the
configured export file.

Example:
  swingtrade export -o /tmp/trades.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: export.file from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	path := s.cfg.Export.File
	if exportOutput != "" {
		path = exportOutput
	}

	n, err := s.book.Export(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("✓ Exported %d trades to %s\n", n, path)
	return nil
}
