package wikidate

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []Date{
		{Year: 1969, Month: 7, Day: 20},
		{Year: 1, Month: 1, Day: 1},
		{Year: -44, Month: 3, Day: 15},
		{Year: 2024, Month: 12, Day: 31},
		{Year: -1, Month: 12, Day: 31},
	}
	for _, d := range cases {
		packed := d.Pack()
		got, err := Unpack(packed)
		if err != nil {
			t.Fatalf("Unpack(%d) for %v: %v", packed, d, err)
		}
		if got != d {
			t.Errorf("round trip %v -> %d -> %v, want original", d, packed, got)
		}
	}
}

func TestPackOrdering(t *testing.T) {
	earlier := Date{Year: -44, Month: 3, Day: 1}
	later := Date{Year: -44, Month: 3, Day: 15}
	if earlier.Pack() >= later.Pack() {
		t.Errorf("BCE dates within a year must pack monotonically increasing: %d >= %d",
			earlier.Pack(), later.Pack())
	}

	bce := Date{Year: -1, Month: 1, Day: 1}
	ce := Date{Year: 1, Month: 1, Day: 1}
	if bce.Pack() >= ce.Pack() {
		t.Errorf("expected BCE year to pack below CE year: %d >= %d", bce.Pack(), ce.Pack())
	}
}

func TestUnpackInvalid(t *testing.T) {
	if _, err := Unpack(0); err == nil {
		t.Error("expected error unpacking zero")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Date
	}{
		{"+1969-07-20T00:00:00Z", Date{1969, 7, 20}},
		{"1969-07-20T00:00:00Z", Date{1969, 7, 20}},
		{"-0044-03-15T00:00:00Z", Date{-44, 3, 15}},
		{"+1900-01-01T00:00:00Z", Date{1900, 1, 1}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "+0000-01-01T00:00:00Z", "1969", "1969-13-01T00:00:00Z"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	d := Date{Year: 1969, Month: 7, Day: 20}
	got, err := Parse(d.String())
	if err != nil {
		t.Fatalf("Parse(%q): %v", d.String(), err)
	}
	if got != d {
		t.Errorf("round trip through String/Parse: got %v, want %v", got, d)
	}
}

func TestJDNRoundTrip(t *testing.T) {
	cases := []Date{
		{Year: 1969, Month: 7, Day: 20},
		{Year: 2000, Month: 1, Day: 1},
		{Year: 1582, Month: 10, Day: 4},  // last Julian day
		{Year: 1582, Month: 10, Day: 15}, // first Gregorian day
		{Year: -44, Month: 3, Day: 15},
		{Year: 1, Month: 1, Day: 1},
	}
	for _, d := range cases {
		jdn, err := d.ToJDN()
		if err != nil {
			t.Fatalf("ToJDN(%v): %v", d, err)
		}
		back, err := FromJDN(float64(jdn))
		if err != nil {
			t.Fatalf("FromJDN(%d): %v", jdn, err)
		}
		if back != d {
			t.Errorf("JDN round trip %v -> %d -> %v", d, jdn, back)
		}
	}
}

func TestJDNMonotonic(t *testing.T) {
	d1 := Date{Year: 2020, Month: 1, Day: 1}
	d2 := Date{Year: 2020, Month: 6, Day: 15}
	j1, err := d1.ToJDN()
	if err != nil {
		t.Fatal(err)
	}
	j2, err := d2.ToJDN()
	if err != nil {
		t.Fatal(err)
	}
	if j1 >= j2 {
		t.Errorf("expected JDN to increase with date: %d >= %d", j1, j2)
	}
}
