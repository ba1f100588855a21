package geo

import "testing"

func TestFromDegreesDegreesRoundTrip(t *testing.T) {
	cases := []struct{ lon, lat float64 }{
		{-122.4194, 37.7749},
		{0, 0},
		{139.6917, 35.6895},
		{-179.9999999, -89.9999999},
	}
	for _, c := range cases {
		coord := FromDegrees(c.lon, c.lat)
		lon, lat := coord.Degrees()
		if diff := lon - c.lon; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("lon round trip: got %v, want %v", lon, c.lon)
		}
		if diff := lat - c.lat; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("lat round trip: got %v, want %v", lat, c.lat)
		}
	}
}

func TestFromDegreesScale(t *testing.T) {
	c := FromDegrees(1.0, 1.0)
	if c.LonE7 != 1e7 || c.LatE7 != 1e7 {
		t.Errorf("expected e7 scaling, got %+v", c)
	}
}
