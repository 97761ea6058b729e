package route

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrEmptyRoute is returned when a route has no waypoints at all
	ErrEmptyRoute = errors.New("no systems in route file")

	// ErrInvalidWaypoint is returned when a waypoint breaks the data model
	ErrInvalidWaypoint = errors.New("invalid waypoint")
)

// Waypoint is one system along a plotted route. Values are created once at
// load time and never modified afterwards.
type Waypoint struct {
	SystemName        string
	Distance          float64 // light years for this hop
	DistanceRemaining float64 // light years left to the destination
	FuelLeft          float64 // tons
	FuelUsed          float64 // tons
	Refuel            bool
	NeutronStar       bool
}

// Category classifies the waypoint, see Classify
func (w Waypoint) Category() Category {
	return Classify(w)
}

// Route is the ordered list of waypoints. Index 0 is the system the pilot
// starts in, the last entry is the destination.
type Route []Waypoint

// Validate checks every waypoint against the data model. It does not check
// that DistanceRemaining is monotonic; routes are trusted to arrive in order.
func (r Route) Validate() error {
	if len(r) == 0 {
		return ErrEmptyRoute
	}

	for i, w := range r {
		if strings.TrimSpace(w.SystemName) == "" {
			return fmt.Errorf("%w: row %d has an empty system name", ErrInvalidWaypoint, i+1)
		}
		for _, v := range []float64{w.Distance, w.DistanceRemaining, w.FuelLeft, w.FuelUsed} {
			if !nonNegativeReal(v) {
				return fmt.Errorf("%w: row %d (%s) has a distance or fuel value of %v", ErrInvalidWaypoint, i+1, w.SystemName, v)
			}
		}
	}
	return nil
}

func nonNegativeReal(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// First returns the origin system
func (r Route) First() (Waypoint, bool) {
	if len(r) == 0 {
		return Waypoint{}, false
	}
	return r[0], true
}

// Last returns the destination system
func (r Route) Last() (Waypoint, bool) {
	if len(r) == 0 {
		return Waypoint{}, false
	}
	return r[len(r)-1], true
}
