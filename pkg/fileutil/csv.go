package fileutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVReader provides a helper/utility to read CSV file(s)
type CSVReader struct {
	FilePath string
}

// NewCSVReader returns a CSVReader instance for a specified CSV file
func NewCSVReader(fp string) *CSVReader {
	return &CSVReader{
		FilePath: fp,
	}
}

// RowProcessor handles one data row; line is the 1-based file line the record
// starts on, so quoted fields spanning lines do not shift later rows
type RowProcessor func(line int, row []string) error

// ReadAndProcessByRow streams the file row by row. The header row is passed to
// headerFn first, then every data row to processorFn.
func (r *CSVReader) ReadAndProcessByRow(headerFn func([]string) error, processorFn RowProcessor) error {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return fmt.Errorf("opening a csv file: %w", err)
	}
	defer f.Close()

	return ProcessCSV(f, headerFn, processorFn)
}

// ProcessCSV is ReadAndProcessByRow over any reader
func ProcessCSV(src io.Reader, headerFn func([]string) error, processorFn RowProcessor) error {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // row width is checked by the caller

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}
	if err := headerFn(header); err != nil {
		return err
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError already carries the line
			return fmt.Errorf("reading CSV row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if err = processorFn(line, row); err != nil {
			return err
		}
	}

	return nil
}
