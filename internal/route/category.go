package route

// Category is the display class of a waypoint
type Category int

const (
	Plain Category = iota
	Refuel
	Neutron
)

func (c Category) String() string {
	switch c {
	case Refuel:
		return "Refuel"
	case Neutron:
		return "Neutron"
	default:
		return "Plain"
	}
}

// Classify maps a waypoint to exactly one category. A refuel stop wins over a
// neutron boost when both flags are set.
func Classify(w Waypoint) Category {
	switch {
	case w.Refuel:
		return Refuel
	case w.NeutronStar:
		return Neutron
	default:
		return Plain
	}
}
