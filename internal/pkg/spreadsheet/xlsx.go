package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook reads every sheet of an Excel workbook. Sheets without a
// header row are dropped.
func readWorkbook(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s of %s: %w", name, path, err)
		}
		if len(rows) == 0 {
			continue
		}

		sheets = append(sheets, Sheet{
			File:   path,
			Name:   name,
			Header: rows[0],
			Rows:   rows[1:],
		})
	}

	return sheets, nil
}
