package routefile

import (
	"fmt"
	"strconv"
)

// number decodes the distance and fuel columns. Cells are parsed as written:
// no trimming, no decimal comma and no zero for an empty cell.
type number float64

// NumberError reports a numeric column that does not hold a number
type NumberError struct {
	Value string
}

func (e *NumberError) Error() string {
	if e.Value == "" {
		return "empty cell, expected a number"
	}
	return fmt.Sprintf("invalid number %q", e.Value)
}

// UnmarshalCSV is called by gocsv for every numeric cell
func (n *number) UnmarshalCSV(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &NumberError{Value: s}
	}
	*n = number(v)
	return nil
}
