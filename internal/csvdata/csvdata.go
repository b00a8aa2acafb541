// Package csvdata loads CSV files into the tabular chart input shape.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/carlislejd/analystkit/chart"
)

// ReadTable parses a CSV file with a header row into a table. A column whose
// every value parses as a number becomes numeric; anything else stays
// categorical.
func ReadTable(path string) (*chart.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV data with a header row into a table.
func Read(r io.Reader) (*chart.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, err
	}

	columns := make([][]string, len(header))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i, v := range record {
			columns[i] = append(columns[i], v)
		}
	}

	t := chart.NewTable()
	for i, name := range header {
		if numbers, ok := asNumbers(columns[i]); ok {
			t.AddFloats(name, numbers)
			continue
		}
		t.AddStrings(name, columns[i])
	}
	return t, nil
}

// asNumbers converts a column to floats when every value parses. An empty
// column stays categorical.
func asNumbers(values []string) ([]float64, bool) {
	if len(values) == 0 {
		return nil, false
	}
	numbers := make([]float64, len(values))
	for i, v := range values {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		numbers[i] = n
	}
	return numbers, true
}
