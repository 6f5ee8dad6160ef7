package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// readCSV reads a CSV file as a single sheet named after the file.
func readCSV(path string) (Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Source sheets are ragged more often than not
	reader.FieldsPerRecord = -1

	var (
		header []string
		rows   [][]string
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Sheet{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if header == nil {
			header = record
			continue
		}
		rows = append(rows, record)
	}

	name := filepath.Base(path)
	return Sheet{File: path, Name: name, Header: header, Rows: rows}, nil
}
