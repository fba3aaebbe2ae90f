package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daetec/vendas-cli/internal/adapters/driven/config/file"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Produce the sales report grouped by seller",
	Long: `Generates a plain-text report of all registered sales: per seller,
products sold with quantities, totals per payment method and the seller
total, followed by the grand total.

Without --output the report is printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportService == nil {
			return errors.New("report service not configured")
		}
		report, err := reportService.Generate(cmd.Context())
		if err != nil {
			return err
		}
		if reportOutput == "" {
			cmd.Print(report)
			return nil
		}
		path := reportOutput
		if filepath.Ext(path) == "" {
			path += ".txt"
		}
		if !filepath.IsAbs(path) && configStore != nil {
			if dir := configStore.GetString(file.KeyReportDir); dir != "" {
				path = filepath.Join(dir, path)
			}
		}
		if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		cmd.Printf("Report written to %s\n", path)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}
