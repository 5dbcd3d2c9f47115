package spacex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jask/launchdeck/internal/launch"
)

// wireLaunch mirrors the subset of the v3 launch object the catalog uses.
type wireLaunch struct {
	FlightNumber    *int    `json:"flight_number"`
	MissionName     string  `json:"mission_name"`
	LaunchDateLocal string  `json:"launch_date_local"`
	LaunchSuccess   *bool   `json:"launch_success"`
	Details         *string `json:"details"`
	Rocket          struct {
		RocketName string `json:"rocket_name"`
	} `json:"rocket"`
	LaunchSite struct {
		SiteNameLong string `json:"site_name_long"`
	} `json:"launch_site"`
}

// localLayouts are tried in order; the first carries the site offset, the
// second covers payloads that drop it.
var localLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05"}

// DecodeLaunches parses a JSON array of launch objects, keeping source order.
// The array must be the only value in r. Any problem, including a failed
// read of r, is reported as a *ParseError; FetchLaunches reads the body
// before decoding so transport failures surface as *FetchError instead.
func DecodeLaunches(r io.Reader) ([]launch.Record, error) {
	dec := json.NewDecoder(r)
	var payload *[]wireLaunch
	if err := dec.Decode(&payload); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Err: errors.New("trailing data after launch array")}
	}
	if payload == nil {
		return nil, &ParseError{Err: errors.New("payload is null")}
	}
	out := make([]launch.Record, 0, len(*payload))
	for i, w := range *payload {
		rec, err := w.record()
		if err != nil {
			return nil, &ParseError{Err: fmt.Errorf("launch %d: %w", i, err)}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (w wireLaunch) record() (launch.Record, error) {
	if w.FlightNumber == nil {
		return launch.Record{}, errors.New("missing flight_number")
	}
	date, err := parseLocalDate(w.LaunchDateLocal)
	if err != nil {
		return launch.Record{}, fmt.Errorf("flight %d: %w", *w.FlightNumber, err)
	}
	return launch.Record{
		FlightNumber: *w.FlightNumber,
		MissionName:  w.MissionName,
		LaunchDate:   date,
		Success:      w.LaunchSuccess,
		RocketName:   w.Rocket.RocketName,
		SiteNameLong: w.LaunchSite.SiteNameLong,
		Details:      w.Details,
	}, nil
}

func parseLocalDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("missing launch_date_local")
	}
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid launch_date_local %q", s)
}
