// Package spreadsheet discovers tabular files and iterates their rows. It
// knows nothing about applicants: it only turns files into named sheets of
// header + data rows for the ingestion engine to consume.
package spreadsheet

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Sheet is one ordered sequence of rows from a tabular file. Header holds the
// raw column labels from the first row; Rows hold the data rows beneath it.
// Trailing cells a source format drops are simply absent from a row.
type Sheet struct {
	File   string
	Name   string
	Header []string
	Rows   [][]string
}

// tabularExtensions is the fixed set of file extensions the recursive scan
// accepts.
var tabularExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".csv":  true,
}

// Discover walks root recursively and returns the tabular files beneath it,
// sorted for a deterministic run order.
func Discover(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if tabularExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Open reads every sheet of a tabular file, dispatching on extension.
func Open(path string) ([]Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(path)
	case ".csv":
		sheet, err := readCSV(path)
		if err != nil {
			return nil, err
		}
		return []Sheet{sheet}, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}
