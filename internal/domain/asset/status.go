package asset

// Status is the lifecycle state of a single asset unit.
//
// available and assigned are driven by the assignment lifecycle; maintenance
// and retired are only ever set by an explicit admin update. The historical
// "expended" wording in the API refers to ending an assignment, which returns
// the asset to available rather than introducing a distinct state.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusAssigned    Status = "assigned"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusMaintenance, StatusRetired:
		return true
	}
	return false
}
