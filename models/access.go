package models

type AccessStatus int

const (
	AccessGranted AccessStatus = iota
	AccessDenied
	AccessUnresolved
)

func (s AccessStatus) String() string {
	switch s {
	case AccessGranted:
		return "granted"
	case AccessDenied:
		return "denied"
	default:
		return "unresolved"
	}
}

// AccessResult is the outcome of a permission lookup for one owner. Err is
// only set when Status is AccessUnresolved.
type AccessResult struct {
	Owner      Owner
	Status     AccessStatus
	Permission string
	Err        error
}

// HasWrite reports write-equivalent access. Unresolved lookups count as no
// access.
func (r AccessResult) HasWrite() bool {
	return r.Status == AccessGranted
}
