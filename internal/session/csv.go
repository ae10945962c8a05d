package session

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadRows parses the whole CSV file. The first row is the header and the
// last row is the newest session. Rows may have differing field counts and
// stray quotes inside unquoted fields are kept as text.
func ReadRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open csv file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to parse csv file %s: %w", path, err)
	}
	return rows, nil
}
