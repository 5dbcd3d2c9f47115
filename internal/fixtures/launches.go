// Package fixtures builds launch records and fetchers for tests.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/jask/launchdeck/internal/launch"
)

// Bool returns a pointer to b, for Record.Success.
func Bool(b bool) *bool { return &b }

// Text returns a pointer to s, for Record.Details.
func Text(s string) *string { return &s }

// Launch builds a record with plausible rocket and site names.
func Launch(flight int, mission string, date time.Time, success *bool) launch.Record {
	return launch.Record{
		FlightNumber: flight,
		MissionName:  mission,
		LaunchDate:   date,
		Success:      success,
		RocketName:   "Falcon 9",
		SiteNameLong: "Cape Canaveral Air Force Station Space Launch Complex 40",
	}
}

// Catalog returns a mixed set relative to now: past successes and failures,
// a past launch with no outcome, and upcoming launches. Flight numbers are
// 1..n in source order and no launch falls exactly on now.
func Catalog(now time.Time) []launch.Record {
	day := 24 * time.Hour
	recs := []launch.Record{
		Launch(1, "FalconSat", now.Add(-400*day), Bool(false)),
		Launch(2, "DemoSat", now.Add(-300*day), Bool(true)),
		Launch(3, "Trailblazer", now.Add(-200*day), nil),
		Launch(4, "RatSat", now.Add(-100*day), Bool(true)),
		Launch(5, "Starlink-12", now.Add(-2*time.Hour), Bool(true)),
		Launch(6, "Starlink-13", now.Add(3*time.Hour), nil),
		Launch(7, "Crew-9", now.Add(10*day), nil),
		Launch(8, "Transporter-5", now.Add(30*day), Bool(false)),
	}
	recs[0].RocketName = "Falcon 1"
	recs[0].SiteNameLong = "Kwajalein Atoll Omelek Island"
	recs[0].Details = Text("Engine failure at 33 seconds and loss of vehicle")
	return recs
}

// Many returns n distinct launches, alternating past and future around now.
func Many(now time.Time, n int) []launch.Record {
	out := make([]launch.Record, 0, n)
	for i := 0; i < n; i++ {
		offset := time.Duration(i+1) * time.Hour
		if i%2 == 0 {
			offset = -offset
		}
		var success *bool
		switch i % 3 {
		case 0:
			success = Bool(true)
		case 1:
			success = Bool(false)
		}
		out = append(out, Launch(i+1, fmt.Sprintf("Mission %03d", i+1), now.Add(offset), success))
	}
	return out
}

// Fetcher is a store.Fetcher returning fixed results and counting calls.
type Fetcher struct {
	Records []launch.Record
	Err     error
	Calls   int
}

func (f *Fetcher) FetchLaunches(ctx context.Context) ([]launch.Record, error) {
	f.Calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Records, nil
}
