package launch

import "time"

// Record is a single launch as published by the data service. Records are
// treated as immutable once received.
type Record struct {
	FlightNumber int
	MissionName  string
	LaunchDate   time.Time // launch-site local time, offset preserved
	Success      *bool     // nil when no outcome has been recorded
	RocketName   string
	SiteNameLong string
	Details      *string
}

// Outcome is the display classification of a launch result.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeUnknown Outcome = "unknown"
)

// Succeeded reports whether the launch has a recorded, successful outcome.
// An unknown outcome is not a success.
func (r Record) Succeeded() bool {
	return r.Success != nil && *r.Success
}

func (r Record) Outcome() Outcome {
	switch {
	case r.Success == nil:
		return OutcomeUnknown
	case *r.Success:
		return OutcomeSuccess
	default:
		return OutcomeFailure
	}
}

// DetailsText returns the free-text details or "" when absent.
func (r Record) DetailsText() string {
	if r.Details == nil {
		return ""
	}
	return *r.Details
}

// Contains reports whether records holds a launch with the given flight number.
func Contains(records []Record, flightNumber int) bool {
	for _, r := range records {
		if r.FlightNumber == flightNumber {
			return true
		}
	}
	return false
}
