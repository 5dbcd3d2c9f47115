package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/launchdeck/internal/fixtures"
	"github.com/jask/launchdeck/internal/launch"
)

func TestBestMatch(t *testing.T) {
	recs := fixtures.Catalog(time.Now())

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "substring", query: "trail", want: 2},
		{name: "case insensitive", query: "RATSAT", want: 3},
		{name: "substring tie goes to earliest", query: "starlink", want: 4},
		{name: "typo", query: "demosta", want: 1},
		{name: "closest edit distance", query: "crew-8", want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := bestMatch(recs, tt.query)
			require.True(t, ok)
			require.Equal(t, tt.want, got, "matched %q", recs[got].MissionName)
		})
	}
}

func TestBestMatchNoCandidates(t *testing.T) {
	_, ok := bestMatch(nil, "crew")
	require.False(t, ok)

	_, ok = bestMatch([]launch.Record{fixtures.Launch(1, "FalconSat", time.Now(), nil)}, "   ")
	require.False(t, ok)
}
