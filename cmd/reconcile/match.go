package reconcile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TFMV/reconcile/internal/match"
)

var (
	matchCountry       string
	matchReferenceFile string
	matchOutputFormat  string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match [company name]",
	Short: "Find the best reference match for a single company name",
	Long: `Match one company name against the reference database and print the
best match, its confidence score and its traffic-light classification.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService(matchReferenceFile)
		if err != nil {
			return err
		}

		result := service.Match(match.Record{
			CompanyName: args[0],
			Country:     matchCountry,
		})

		if matchOutputFormat == "json" {
			return outputJSON(result)
		}
		return outputText(result, args[0])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchCountry, "country", "", "Country of the company (scopes the reference pool)")
	matchCmd.Flags().StringVar(&matchReferenceFile, "reference", "", "Reference database CSV (overrides config)")
	matchCmd.Flags().StringVar(&matchOutputFormat, "format", "text", "Output format (text or json)")
}

func outputJSON(result match.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result match.Result, query string) error {
	fmt.Printf("Query:   %s\n", query)
	fmt.Printf("Match:   %s\n", result.MatchedName)
	fmt.Printf("Score:   %d\n", result.Score)
	fmt.Printf("Status:  %s\n", result.Tier)
	if result.MatchedID != "" {
		fmt.Printf("ID:      %s\n", result.MatchedID)
	}
	if result.MatchedCountry != "" {
		fmt.Printf("Country: %s\n", result.MatchedCountry)
	}
	return nil
}
