package domain

import (
	"errors"
	"math"
	"testing"
)

func TestCoordinatesValid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinates
		want bool
	}{
		{name: "origin", c: Coordinates{Lon: 0, Lat: 0}, want: true},
		{name: "corners", c: Coordinates{Lon: 180, Lat: -90}, want: true},
		{name: "other corners", c: Coordinates{Lon: -180, Lat: 90}, want: true},
		{name: "lat too high", c: Coordinates{Lon: 0, Lat: 95}, want: false},
		{name: "lat too low", c: Coordinates{Lon: 0, Lat: -90.0001}, want: false},
		{name: "lon too low", c: Coordinates{Lon: -200, Lat: 0}, want: false},
		{name: "lon too high", c: Coordinates{Lon: 180.5, Lat: 0}, want: false},
		{name: "nan lat", c: Coordinates{Lon: 0, Lat: math.NaN()}, want: false},
		{name: "inf lon", c: Coordinates{Lon: math.Inf(1), Lat: 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Fatalf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGreatCircleKm(t *testing.T) {
	tests := []struct {
		name             string
		a, b             Coordinates
		wantKm           float64
		tolerancePercent float64
	}{
		{
			name:             "London to Paris",
			a:                Coordinates{Lat: 51.5074, Lon: -0.1278},
			b:                Coordinates{Lat: 48.8566, Lon: 2.3522},
			wantKm:           343.5,
			tolerancePercent: 1,
		},
		{
			name:             "Singapore CBD to Changi Airport",
			a:                Coordinates{Lat: 1.2830, Lon: 103.8513},
			b:                Coordinates{Lat: 1.3644, Lon: 103.9915},
			wantKm:           18.02,
			tolerancePercent: 1,
		},
		{
			name:             "one degree of latitude",
			a:                Coordinates{Lat: 0, Lon: 0},
			b:                Coordinates{Lat: 1, Lon: 0},
			wantKm:           111.32,
			tolerancePercent: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GreatCircleKm(tt.a, tt.b)
			diff := math.Abs(got-tt.wantKm) / tt.wantKm * 100
			if diff > tt.tolerancePercent {
				t.Fatalf("GreatCircleKm = %f km, want ~%f km (diff %.2f%%)", got, tt.wantKm, diff)
			}
		})
	}
}

func TestGreatCircleKmSymmetricAndZero(t *testing.T) {
	a := Coordinates{Lat: 40.0, Lon: -75.0}
	b := Coordinates{Lat: -33.8688, Lon: 151.2093}

	if GreatCircleKm(a, a) != 0 {
		t.Fatalf("distance to self = %f, want 0", GreatCircleKm(a, a))
	}
	if ab, ba := GreatCircleKm(a, b), GreatCircleKm(b, a); ab != ba {
		t.Fatalf("asymmetric distance: %f != %f", ab, ba)
	}
	if GreatCircleKm(a, b) <= 0 {
		t.Fatalf("distance between distinct points must be positive")
	}
}

func TestNewWarehouse(t *testing.T) {
	w, err := NewWarehouse("  W1  ", 40.0, -75.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Name != "W1" {
		t.Fatalf("name = %q, want W1", w.Name)
	}
	if w.Coordinates.Lat != 40.0 || w.Coordinates.Lon != -75.0 {
		t.Fatalf("coordinates = %+v", w.Coordinates)
	}

	_, err = NewWarehouse("north", 95, 0)
	if !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("err = %v, want ErrInvalidCoordinate", err)
	}

	var ce *CoordinateError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %T, want *CoordinateError", err)
	}
	if ce.Name != "north" || ce.Lat != 95 || ce.Index != -1 {
		t.Fatalf("coordinate error = %+v", ce)
	}
}

func TestWarehouseValidateReportsIndex(t *testing.T) {
	w := Warehouse{Name: "west", Coordinates: Coordinates{Lon: -200, Lat: 10}}

	err := w.Validate(3)
	var ce *CoordinateError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *CoordinateError", err)
	}
	if ce.Index != 3 {
		t.Fatalf("index = %d, want 3", ce.Index)
	}
}

func TestGreatCircleKmAntipodes(t *testing.T) {
	halfCircumference := math.Pi * 6378.137

	tests := []struct {
		name string
		a, b Coordinates
	}{
		{name: "equator", a: Coordinates{Lat: 0, Lon: 0}, b: Coordinates{Lat: 0, Lon: 180}},
		{name: "near poles across dateline", a: Coordinates{Lat: -88.5, Lon: -180}, b: Coordinates{Lat: 88.5, Lon: 0}},
		{name: "poles", a: Coordinates{Lat: 90, Lon: 0}, b: Coordinates{Lat: -90, Lon: 0}},
		{name: "mid latitude", a: Coordinates{Lat: 40, Lon: -75}, b: Coordinates{Lat: -40, Lon: 105}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GreatCircleKm(tt.a, tt.b)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("GreatCircleKm = %f, want finite", got)
			}
			if math.Abs(got-halfCircumference) > 1e-3 {
				t.Fatalf("GreatCircleKm = %f km, want ~%f km", got, halfCircumference)
			}
		})
	}
}

func TestGreatCircleKmAntipodeSweepIsFinite(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 1.5 {
		for lon := -180.0; lon <= 0; lon += 2.5 {
			a := Coordinates{Lat: lat, Lon: lon}
			b := Coordinates{Lat: -lat, Lon: lon + 180}

			got := GreatCircleKm(a, b)
			if math.IsNaN(got) || got <= 0 {
				t.Fatalf("GreatCircleKm(%+v, %+v) = %f", a, b, got)
			}
		}
	}
}
