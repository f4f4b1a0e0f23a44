package sand

import (
	"errors"
	"testing"
)

func TestDisplacementTable(t *testing.T) {
	cases := []struct {
		cell, mover Material
		want        bool
	}{
		{Air, Sand, true},
		{Air, Water, true},
		{Air, Air, false},
		{Water, Sand, true},
		{Water, Water, false},
		{Water, Air, false},
		{Sand, Sand, false},
		{Sand, Water, false},
		{Sand, Air, false},
	}
	for _, tc := range cases {
		if got := tc.cell.IsDisplaceableBy(tc.mover); got != tc.want {
			t.Errorf("%v.IsDisplaceableBy(%v) = %v, expected %v", tc.cell, tc.mover, got, tc.want)
		}
	}
}

func TestParseMaterial(t *testing.T) {
	for _, m := range Materials() {
		got, err := ParseMaterial(" " + m.String() + " ")
		if err != nil || got != m {
			t.Fatalf("ParseMaterial(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseMaterial("WATER"); err != nil || got != Water {
		t.Fatalf("ParseMaterial is case sensitive: %v, %v", got, err)
	}
	if _, err := ParseMaterial("lava"); !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial, got %v", err)
	}
}

func TestMaterialColors(t *testing.T) {
	if c := Air.Color(); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("air should be black, got %+v", c)
	}
	if c := Sand.Color(); c.R < 200 || c.G < 200 || c.B > 50 {
		t.Fatalf("sand should be yellow, got %+v", c)
	}
	if c := Water.Color(); c.B < 200 || c.R > 50 {
		t.Fatalf("water should be blue, got %+v", c)
	}
	if Material(42).Color() != Air.Color() {
		t.Fatal("unknown materials should render as air")
	}
	if Material(42).String() != "material(42)" {
		t.Fatalf("unexpected name %q", Material(42).String())
	}
}
