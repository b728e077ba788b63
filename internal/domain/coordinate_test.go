package domain

import "testing"

func TestCoordinateRoundTrip(t *testing.T) {
	inputs := []string{
		"2.3522;48.8566",
		"2.33261;48.872096",
		"-0.5;51",
		"0;0",
	}

	for _, in := range inputs {
		c, err := ParseCoordinate(in)
		if err != nil {
			t.Fatalf("ParseCoordinate(%q): unexpected error: %v", in, err)
		}
		if got := c.String(); got != in {
			t.Fatalf("round trip of %q = %q", in, got)
		}
	}
}

func TestCoordinateStringOrder(t *testing.T) {
	c := Coordinate{Lon: 2.3522, Lat: 48.8566}
	if got := c.String(); got != "2.3522;48.8566" {
		t.Fatalf("String() = %q, want longitude first", got)
	}
}

func TestParseCoordinateMalformed(t *testing.T) {
	inputs := []string{
		"",
		"2.3522",
		"2.3522;48.8566;0",
		"lon;lat",
		"2.3522;",
	}

	for _, in := range inputs {
		if _, err := ParseCoordinate(in); err == nil {
			t.Fatalf("ParseCoordinate(%q): expected error", in)
		}
	}
}
