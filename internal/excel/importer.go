package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/srsqueue/pkg/models"
)

const (
	DefaultSheet = "Sheet1"
	importBatch  = 500
)

// Columns in import and export files, in order
var header = []string{"id", "lang", "part", "style", "last", "next", "interval", "reviews", "successes", "vocab_ids"}

// ItemSaverI persists imported items
type ItemSaverI interface {
	SaveItems(ctx context.Context, items []models.StudyItem) error
}

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath  string // Path to the Excel or CSV file
	SheetName string // Sheet to import, Excel only
	StartRow  int    // First data row, 1-based. Row 1 is the header by default.
	Lang      string // Used when the lang column is empty
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName: DefaultSheet,
		StartRow:  2,
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportItems reads study items from an Excel or CSV file and saves them.
// Bad rows are skipped and reported in the result.
func ImportItems(ctx context.Context, store ItemSaverI, config ImportConfig) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, err
	}

	startRow := config.StartRow
	if startRow <= 0 {
		startRow = 2
	}

	result := &ImportResult{Errors: make([]string, 0)}
	batch := make([]models.StudyItem, 0, importBatch)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := store.SaveItems(ctx, batch); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}
		result.Imported += len(batch)
		batch = batch[:0]
		return nil
	}

	for i, row := range rows {
		if i < startRow-1 {
			continue
		}
		if isBlank(row) {
			continue
		}
		result.TotalProcessed++

		item, err := parseRow(row, config.Lang)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		batch = append(batch, item)
		if len(batch) == importBatch {
			if err := flush(); err != nil {
				return result, err
			}
		}
	}
	if err := flush(); err != nil {
		return result, err
	}
	return result, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(row []string, defaultLang string) (models.StudyItem, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	item := models.StudyItem{
		ID:    cell(0),
		Lang:  cell(1),
		Part:  models.Part(cell(2)),
		Style: cell(3),
	}
	if item.ID == "" {
		return item, fmt.Errorf("missing id")
	}
	if !item.Part.Valid() {
		return item, fmt.Errorf("invalid part %q", item.Part)
	}
	if item.Lang == "" {
		item.Lang = defaultLang
	}
	if item.Lang == "" {
		return item, fmt.Errorf("missing lang")
	}

	var err error
	if item.Last, err = parseInt64(cell(4)); err != nil {
		return item, fmt.Errorf("last: %w", err)
	}
	if item.Next, err = parseInt64(cell(5)); err != nil {
		return item, fmt.Errorf("next: %w", err)
	}
	if item.Last != 0 && item.Next < item.Last {
		return item, fmt.Errorf("next %d is before last %d", item.Next, item.Last)
	}
	if item.Interval, err = parseInt64(cell(6)); err != nil {
		return item, fmt.Errorf("interval: %w", err)
	}
	reviews, err := parseInt64(cell(7))
	if err != nil {
		return item, fmt.Errorf("reviews: %w", err)
	}
	successes, err := parseInt64(cell(8))
	if err != nil {
		return item, fmt.Errorf("successes: %w", err)
	}
	if successes > reviews {
		return item, fmt.Errorf("successes %d exceed reviews %d", successes, reviews)
	}
	item.Reviews, item.Successes = int(reviews), int(successes)

	if ids := cell(9); ids != "" {
		item.VocabIDs = strings.Split(ids, "|")
	}
	return item, nil
}

// parseInt64 treats an empty cell as zero
func parseInt64(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
