// Package parser turns the on-disk insurance CSV into validated in-memory
// records.
package parser

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// numFields is the fixed column count: age,sex,bmi,children,smoker,region,charges.
const numFields = 7

// LoadFirstN reads up to n valid records from the CSV at path, preserving
// source order and skipping the header line. Blank lines and lines with
// fewer than seven comma-separated fields are skipped without counting
// toward n. A numeric field that fails conversion in an otherwise
// well-formed line is fatal, not skipped.
func LoadFirstN(path string, n int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, &DataSourceError{Path: path, Err: err}
		}
		return nil, &DataSourceError{Path: path}
	}

	var out []Record
	lineNo := 1
	for len(out) < n && sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		// strings.Split keeps empty trailing fields, so a missing final
		// column still reaches numeric conversion and fails there.
		fields := strings.Split(line, ",")
		if len(fields) < numFields {
			continue
		}
		rec, err := parseRecord(fields, lineNo)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	return out, nil
}

func parseRecord(fields []string, line int) (Record, error) {
	age, err := parseInt(fields[0], "age", line)
	if err != nil {
		return Record{}, err
	}
	bmi, err := parseFloat(fields[2], "bmi", line)
	if err != nil {
		return Record{}, err
	}
	children, err := parseInt(fields[3], "children", line)
	if err != nil {
		return Record{}, err
	}
	charges, err := parseFloat(fields[6], "charges", line)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Age:      age,
		Sex:      strings.TrimSpace(fields[1]),
		BMI:      bmi,
		Children: children,
		Smoker:   strings.TrimSpace(fields[4]),
		Region:   strings.TrimSpace(fields[5]),
		Charges:  charges,
	}, nil
}

func parseInt(raw, column string, line int) (int, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FieldFormatError{Line: line, Column: column, Value: s, Err: err}
	}
	return v, nil
}

func parseFloat(raw, column string, line int) (float64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldFormatError{Line: line, Column: column, Value: s, Err: err}
	}
	return v, nil
}
