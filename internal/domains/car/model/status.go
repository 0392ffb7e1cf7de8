package model

// Status is the stored car status. busy, maintenance and sold are set by staff
// and are never overridden by reservations.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusBusy        Status = "busy"
	StatusMaintenance Status = "maintenance"
	StatusSold        Status = "sold"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusBusy, StatusMaintenance, StatusSold:
		return true
	default:
		return false
	}
}

// IsStaffControlled reports whether the status is authoritative ground truth.
func (s Status) IsStaffControlled() bool {
	return s == StatusBusy || s == StatusMaintenance || s == StatusSold
}

// IsBookable reports whether new future reservations may be taken at the raw
// status layer. A reserved car still accepts non-overlapping bookings.
func (s Status) IsBookable() bool {
	return s == StatusAvailable || s == StatusReserved
}

func (s Status) String() string {
	return string(s)
}
