package excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/srsqueue/pkg/models"
)

// ItemLoaderI lists every persisted item
type ItemLoaderI interface {
	AllItems(ctx context.Context) ([]models.StudyItem, error)
}

// ExportItems writes every stored item to an Excel file in the import layout.
// It returns the number of items written.
func ExportItems(ctx context.Context, store ItemLoaderI, path, sheet string) (int, error) {
	items, err := store.AllItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load items: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	if sheet != DefaultSheet {
		index, err := f.NewSheet(sheet)
		if err != nil {
			return 0, fmt.Errorf("failed to create sheet: %w", err)
		}
		f.SetActiveSheet(index)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, err
		}
		row := []interface{}{
			item.ID,
			item.Lang,
			string(item.Part),
			item.Style,
			item.Last,
			item.Next,
			item.Interval,
			item.Reviews,
			item.Successes,
			strings.Join(item.VocabIDs, "|"),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return 0, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("failed to save %s: %w", path, err)
	}
	return len(items), nil
}
