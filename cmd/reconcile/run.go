package reconcile

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TFMV/reconcile/internal/match"
)

var (
	runReferenceFile string
	runOutputFile    string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [input file]",
	Short: "Reconcile a CSV of company names against the reference database",
	Long: `Run a full reconciliation: read input records (country, company_name,
id, short_code) from a CSV file, match every record against the reference
database, and write a report CSV with the match, score and traffic-light
status for each record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService(runReferenceFile)
		if err != nil {
			return err
		}

		records, err := loadRecords(args[0])
		if err != nil {
			return fmt.Errorf("failed to load input file: %w", err)
		}

		runID := uuid.NewString()
		logger.Info("reconciliation run started",
			zap.String("run_id", runID),
			zap.String("input", args[0]),
			zap.Int("records", len(records)))

		results, err := service.MatchAll(cmd.Context(), records)
		if err != nil {
			return fmt.Errorf("reconciliation failed: %w", err)
		}

		if err := writeReport(runOutputFile, records, results); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		tiers := make(map[match.Tier]int)
		for _, result := range results {
			tiers[result.Tier]++
		}
		logger.Info("reconciliation run finished",
			zap.String("run_id", runID),
			zap.String("report", runOutputFile),
			zap.Int("green", tiers[match.TierGreen]),
			zap.Int("purple", tiers[match.TierPurple]),
			zap.Int("red", tiers[match.TierRed]))

		fmt.Printf("Report written to %s (%d records: %d green, %d purple, %d red)\n",
			runOutputFile, len(results),
			tiers[match.TierGreen], tiers[match.TierPurple], tiers[match.TierRed])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runReferenceFile, "reference", "", "Reference database CSV (overrides config)")
	runCmd.Flags().StringVar(&runOutputFile, "output", "report.csv", "Report output file")
}
