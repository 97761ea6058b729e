package routefile

import "fmt"

// yesNo decodes the literal "Yes"/"No" flag columns
type yesNo bool

// FlagError reports a flag column holding something other than Yes or No
type FlagError struct {
	Value string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("unknown flag value %q, expected one of \"Yes\", \"No\"", e.Value)
}

// UnmarshalCSV is called by gocsv for every flag cell
func (b *yesNo) UnmarshalCSV(s string) error {
	switch s {
	case "Yes":
		*b = true
	case "No":
		*b = false
	default:
		return &FlagError{Value: s}
	}
	return nil
}
