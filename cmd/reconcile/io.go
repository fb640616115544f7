package reconcile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/TFMV/reconcile/internal/match"
)

// Input record column headers
const (
	recordCountryColumn   = "country"
	recordNameColumn      = "company_name"
	recordIDColumn        = "id"
	recordShortCodeColumn = "short_code"
)

// loadReference reads the reference customer database from a CSV file.
// Column names come from the reference configuration. Rows without a
// client identifier degrade to an empty identifier, not an error.
func loadReference(path string) ([]match.ReferenceEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	nameIdx := findColumn(header, cfg.Reference.NameColumn)
	countryIdx := findColumn(header, cfg.Reference.CountryColumn)
	idIdx := findColumn(header, cfg.Reference.IDColumn)
	if nameIdx == -1 {
		return nil, fmt.Errorf("column %q not found in reference header", cfg.Reference.NameColumn)
	}

	var entries []match.ReferenceEntry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		entries = append(entries, match.ReferenceEntry{
			ClientName:  field(row, nameIdx),
			CountryCode: field(row, countryIdx),
			ClientID:    field(row, idIdx),
		})
	}

	return entries, nil
}

// loadRecords reads the input records to reconcile from a CSV file
func loadRecords(path string) ([]match.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	nameIdx := findColumn(header, recordNameColumn)
	countryIdx := findColumn(header, recordCountryColumn)
	idIdx := findColumn(header, recordIDColumn)
	shortCodeIdx := findColumn(header, recordShortCodeColumn)
	if nameIdx == -1 {
		return nil, fmt.Errorf("column %q not found in input header", recordNameColumn)
	}

	var records []match.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		records = append(records, match.Record{
			CompanyName: field(row, nameIdx),
			Country:     field(row, countryIdx),
			ID:          field(row, idIdx),
			ShortCode:   field(row, shortCodeIdx),
		})
	}

	return records, nil
}

// writeReport writes the reconciliation report. The id column carries
// the matched client identifier for auto-accepted rows and the original
// input identifier otherwise; service_rendered derives from the tier
// (GREEN yes, RED no, PURPLE left for manual review).
func writeReport(path string, records []match.Record, results []match.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"country", "company_name", "id", "short_code", "service_rendered",
		"matched_name", "score", "status", "matched_country",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, record := range records {
		result := results[i]

		id := record.ID
		if result.Tier == match.TierGreen && result.MatchedID != "" {
			id = result.MatchedID
		}

		row := []string{
			record.Country,
			record.CompanyName,
			id,
			record.ShortCode,
			serviceRendered(result.Tier),
			result.MatchedName,
			strconv.Itoa(result.Score),
			string(result.Tier),
			result.MatchedCountry,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// serviceRendered derives the "service previously rendered?" column
func serviceRendered(tier match.Tier) string {
	switch tier {
	case match.TierGreen:
		return "YES"
	case match.TierRed:
		return "NO"
	default:
		return ""
	}
}

func findColumn(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
