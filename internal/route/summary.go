package route

// Summary holds trip statistics for a whole route
type Summary struct {
	From         string
	To           string
	TripDistance float64 // light years remaining at departure
	Hops         int
	NeutronStars int
	FuelStops    int
}

// TripKly returns the trip distance in kilolight-years
func (s Summary) TripKly() float64 {
	return s.TripDistance / 1000
}

// Summarize aggregates the route. The trip distance is the first waypoint's
// remaining distance, not a sum of hops. Neutron and refuel counts come from
// the raw flags, so a waypoint flagged as both is counted in both totals.
func Summarize(r Route) (Summary, error) {
	first, ok := r.First()
	if !ok {
		return Summary{}, ErrEmptyRoute
	}
	last, _ := r.Last()

	s := Summary{
		From:         first.SystemName,
		To:           last.SystemName,
		TripDistance: first.DistanceRemaining,
		Hops:         len(r) - 1,
	}

	for _, w := range r {
		if w.NeutronStar {
			s.NeutronStars++
		}
		if w.Refuel {
			s.FuelStops++
		}
	}

	return s, nil
}
