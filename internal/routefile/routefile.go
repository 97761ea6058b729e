package routefile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"jimmyclipboard/internal/log"
	"jimmyclipboard/internal/route"
)

// Column names as written by the spansh neutron plotter export
const (
	ColSystemName        = "System Name"
	ColDistance          = "Distance"
	ColDistanceRemaining = "Distance Remaining"
	ColFuelLeft          = "Fuel Left"
	ColFuelUsed          = "Fuel Used"
	ColRefuel            = "Refuel"
	ColNeutronStar       = "Neutron Star"
)

// RequiredColumns lists every header the loader insists on
var RequiredColumns = []string{
	ColSystemName,
	ColDistance,
	ColDistanceRemaining,
	ColFuelLeft,
	ColFuelUsed,
	ColRefuel,
	ColNeutronStar,
}

// InputError reports a route file that could not be turned into a route
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("route file: %v", e.Err)
	}
	return fmt.Sprintf("route file %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// row mirrors one CSV record
type row struct {
	SystemName        string `csv:"System Name"`
	Distance          number `csv:"Distance"`
	DistanceRemaining number `csv:"Distance Remaining"`
	FuelLeft          number `csv:"Fuel Left"`
	FuelUsed          number `csv:"Fuel Used"`
	Refuel            yesNo  `csv:"Refuel"`
	NeutronStar       yesNo  `csv:"Neutron Star"`
}

func (r row) waypoint() route.Waypoint {
	return route.Waypoint{
		SystemName:        r.SystemName,
		Distance:          float64(r.Distance),
		DistanceRemaining: float64(r.DistanceRemaining),
		FuelLeft:          float64(r.FuelLeft),
		FuelUsed:          float64(r.FuelUsed),
		Refuel:            bool(r.Refuel),
		NeutronStar:       bool(r.NeutronStar),
	}
}

// Load reads and validates the route file at path
func Load(path string) (route.Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	r, err := Read(f)
	if err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			inputErr.Path = path
		}
		return nil, err
	}

	log.Info("Route loaded", "path", path, "waypoints", len(r))
	return r, nil
}

// Read decodes a route from CSV data. A leading UTF-8 byte order mark is
// dropped before parsing.
func Read(in io.Reader) (route.Route, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, &InputError{Err: err}
	}

	data, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, &InputError{Err: fmt.Errorf("decode: %w", err)}
	}

	header, err := checkHeader(data)
	if err != nil {
		return nil, &InputError{Err: err}
	}

	var rows []row
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			err = route.ErrEmptyRoute
		}
		return nil, &InputError{Err: cellError(err, header)}
	}

	r := make(route.Route, 0, len(rows))
	for _, rec := range rows {
		r = append(r, rec.waypoint())
	}

	if err := r.Validate(); err != nil {
		return nil, &InputError{Err: err}
	}
	return r, nil
}

// checkHeader makes sure every required column is present and returns the
// header row. An empty file counts as an empty route.
func checkHeader(data []byte) ([]string, error) {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return nil, route.ErrEmptyRoute
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	for _, name := range RequiredColumns {
		if !present[name] {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return header, nil
}

// cellError rewrites a gocsv cell error as "line N, column NAME: cause".
// gocsv reports the cell through csv.ParseError without a start line, which
// would otherwise print as "record on line 0".
func cellError(err error, header []string) error {
	var pe *csv.ParseError
	if !errors.As(err, &pe) || pe.Err == nil {
		return err
	}

	column := fmt.Sprintf("%d", pe.Column)
	if pe.Column >= 1 && pe.Column <= len(header) {
		column = fmt.Sprintf("%q", header[pe.Column-1])
	}
	return fmt.Errorf("line %d, column %s: %w", pe.Line, column, pe.Err)
}
