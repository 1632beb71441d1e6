package sheet

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Format applies the presentation styling for an imported tree: the sentinel
// column in italics, the top-level folder column in bold. Styling is a
// presentation concern only - it does not affect what Decode reads back.
func (w *Worksheet) Format(ctx context.Context) error {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          w.sheetID,
						StartColumnIndex: 0,
						EndColumnIndex:   1,
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							TextFormat: &sheets.TextFormat{
								Italic: true,
							},
						},
					},
					Fields: "userEnteredFormat.textFormat.italic",
				},
			},
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          w.sheetID,
						StartColumnIndex: 1,
						EndColumnIndex:   2,
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							TextFormat: &sheets.TextFormat{
								Bold: true,
							},
						},
					},
					Fields: "userEnteredFormat.textFormat.bold",
				},
			},
		},
	}

	if _, err := w.service.Spreadsheets.BatchUpdate(w.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error formatting worksheet '%s' (%w)", w.title, err)
	}

	return nil
}
