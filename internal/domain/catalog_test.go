package domain

import "testing"

func TestTransportTypeOf(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		name string
		want TransportType
		ok   bool
	}{
		{"Andheri", TransportMetro, true},
		{"Andheri West", TransportRailway, true},
		{"Andheri Bus Depot", TransportBus, true},
		{"Amboli Naka", TransportSignal, true},
		{"Nowhere Junction", "", false},
		{"andheri", "", false}, // lookup is case-sensitive
	}
	for _, tc := range cases {
		got, ok := c.TransportTypeOf(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("TransportTypeOf(%q) = (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMultiplierOfDefaultsToOne(t *testing.T) {
	c := NewCatalog()
	if m := c.MultiplierOf("Andheri"); m != 1.5 {
		t.Errorf("MultiplierOf(Andheri) = %v, want 1.5", m)
	}
	if m := c.MultiplierOf("Unlisted Stop"); m != 1.0 {
		t.Errorf("MultiplierOf(Unlisted Stop) = %v, want 1.0", m)
	}
}

func TestLocationsOf(t *testing.T) {
	c := NewCatalog()
	for _, transportType := range TransportTypes {
		locations := c.LocationsOf(transportType)
		if len(locations) != 10 {
			t.Fatalf("LocationsOf(%s) returned %d locations, want 10", transportType, len(locations))
		}
		for _, loc := range locations {
			if loc.Type != transportType {
				t.Errorf("%s tagged %s, want %s", loc.Name, loc.Type, transportType)
			}
			if loc.BaseFootfall != c.BaseFootfallOf(transportType) {
				t.Errorf("%s base footfall = %d, want %d", loc.Name, loc.BaseFootfall, c.BaseFootfallOf(transportType))
			}
		}
	}

	// Catalog order is the reference order, not sorted.
	metro := c.LocationsOf(TransportMetro)
	if metro[0].Name != "Ghatkopar" || metro[1].Name != "Andheri" {
		t.Errorf("unexpected metro ordering: %s, %s", metro[0].Name, metro[1].Name)
	}
}

func TestAreas(t *testing.T) {
	c := NewCatalog()
	areas := c.Areas()
	if len(areas) != 7 {
		t.Fatalf("Areas() returned %d areas, want 7", len(areas))
	}
	if areas[0].Name != "Andheri" || areas[6].Name != "Borivali" {
		t.Errorf("unexpected area ordering: first %s, last %s", areas[0].Name, areas[6].Name)
	}

	andheri, ok := c.AreaByName("Andheri")
	if !ok {
		t.Fatal("AreaByName(Andheri) not found")
	}
	members := andheri.MemberList()
	if len(members) != 5 {
		t.Fatalf("Andheri has %d members, want 5", len(members))
	}
	// Members flatten in transport-type order.
	if members[0] != (AreaMember{Name: "Andheri", Type: TransportMetro}) {
		t.Errorf("first member = %+v", members[0])
	}
	if members[4] != (AreaMember{Name: "Amboli Naka", Type: TransportSignal}) {
		t.Errorf("last member = %+v", members[4])
	}

	if _, ok := c.AreaByName("Atlantis"); ok {
		t.Error("AreaByName(Atlantis) unexpectedly found")
	}
}

func TestHourMultiplier(t *testing.T) {
	c := NewCatalog()
	cases := []struct {
		hour int
		want float64
	}{
		{2, 0.2},  // overnight trough
		{9, 1.5},  // morning rush peak
		{18, 1.5}, // evening rush peak
		{-1, 0.8}, // fallback
		{24, 0.8}, // fallback
	}
	for _, tc := range cases {
		if got := c.HourMultiplier(tc.hour); got != tc.want {
			t.Errorf("HourMultiplier(%d) = %v, want %v", tc.hour, got, tc.want)
		}
	}
}

func TestTransportFactor(t *testing.T) {
	c := NewCatalog()
	if f := c.TransportFactor(TransportRailway); f != 1.3 {
		t.Errorf("TransportFactor(railway) = %v, want 1.3", f)
	}
	if f := c.TransportFactor(TransportType("tram")); f != 1.0 {
		t.Errorf("TransportFactor(tram) = %v, want 1.0 fallback", f)
	}
}

func TestParseTransportType(t *testing.T) {
	if _, err := ParseTransportType("railway"); err != nil {
		t.Errorf("ParseTransportType(railway) failed: %v", err)
	}
	if _, err := ParseTransportType("tram"); err == nil {
		t.Error("ParseTransportType(tram) unexpectedly succeeded")
	}
}
