// Package sheet adapts a Google Sheets worksheet to the tabular store
// contract. The worksheet is the durable, human-editable representation of
// the folder tree between runs.
package sheet

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/jonaslundjonas/foldersheets/sync"
)

// Verify the tabular store contract at compile time.
var _ sync.Tabular = (*Worksheet)(nil)

type Worksheet struct {
	service       *sheets.Service
	spreadsheetID string
	sheetID       int64
	title         string
}

// NewWorksheet binds to the named worksheet of a spreadsheet, looking up the
// sheet ID needed for formatting requests.
func NewWorksheet(service *sheets.Service, spreadsheetID, title string) (*Worksheet, error) {
	spreadsheet, err := service.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return nil, fmt.Errorf("error fetching spreadsheet (%w)", err)
	}

	for _, s := range spreadsheet.Sheets {
		if s.Properties.Title == title {
			return &Worksheet{
				service:       service,
				spreadsheetID: spreadsheetID,
				sheetID:       s.Properties.SheetId,
				title:         title,
			}, nil
		}
	}

	return nil, fmt.Errorf("no worksheet '%s' in spreadsheet", title)
}

// ReadAllRows returns the full worksheet contents as strings. The Sheets API
// trims trailing empty cells, so rows may be ragged.
func (w *Worksheet) ReadAllRows(ctx context.Context) ([][]string, error) {
	response, err := w.service.Spreadsheets.Values.Get(w.spreadsheetID, w.title).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error reading worksheet '%s' (%w)", w.title, err)
	}

	rows := make([][]string, len(response.Values))
	for i, row := range response.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprintf("%v", cell)
		}
		rows[i] = cells
	}

	return rows, nil
}

// WriteBlock overwrites a rectangular region starting at the zero-based row
// and column.
func (w *Worksheet) WriteBlock(ctx context.Context, row, col int, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	values := make([][]interface{}, len(rows))
	for i, r := range rows {
		cells := make([]interface{}, width)
		for j := range cells {
			cells[j] = ""
		}
		for j, cell := range r {
			cells[j] = cell
		}
		values[i] = cells
	}

	area := fmt.Sprintf("%s!%s%d:%s%d",
		w.title,
		columnName(col), row+1,
		columnName(col+width-1), row+len(rows))

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data: []*sheets.ValueRange{
			{
				Range:  area,
				Values: values,
			},
		},
	}

	if _, err := w.service.Spreadsheets.Values.BatchUpdate(w.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error writing to worksheet '%s' (%w)", w.title, err)
	}

	return nil
}

// Clear removes all content from the worksheet.
func (w *Worksheet) Clear(ctx context.Context) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{w.title},
	}

	if _, err := w.service.Spreadsheets.Values.BatchClear(w.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error clearing worksheet '%s' (%w)", w.title, err)
	}

	return nil
}

// columnName converts a zero-based column index to its A1 notation letters
// (0 -> A, 25 -> Z, 26 -> AA).
func columnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}
