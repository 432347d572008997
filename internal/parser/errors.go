package parser

import "fmt"

// DataSourceError indicates the dataset could not be opened or carries no
// header line. It aborts the whole run.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("data source %s: empty (no header line)", e.Path)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// FieldFormatError indicates a structurally valid row carries a value that
// does not parse as its column's numeric type. Unlike wrong-arity rows,
// which are skipped, this aborts the load.
type FieldFormatError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("line %d: field %q: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *FieldFormatError) Unwrap() error { return e.Err }
